package almanac

import "fmt"

// ParseError reports malformed input. Line is 1-based and zero when unknown.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error: line %d: %s", e.Line, e.Msg)
	}
	return "parse error: " + e.Msg
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
