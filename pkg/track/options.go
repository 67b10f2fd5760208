package track

import "context"

type optionKey string

const linesOptionKey optionKey = "lines"

// WithLines stores the number of parallel lines a Turnout should run.
func WithLines(ctx context.Context, lines int) context.Context {
	return context.WithValue(ctx, linesOptionKey, lines)
}

// Lines returns the stored line count, or def when none is set or the
// stored count is not positive.
func Lines(ctx context.Context, def int) int {
	if lines, ok := ctx.Value(linesOptionKey).(int); ok && lines > 0 {
		return lines
	}
	return def
}
