package track

import (
	"context"
	"sync"
)

// Turnout runs lines Locomotives over inputCh and merges their output. The
// returned channel closes once every line has stopped.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan Result[In],
	engine Engine[In, Out], lines int) <-chan Result[Out] {
	return TurnoutWithCancel(ctx, inputCh, engine, lines, nil)
}

// TurnoutWithCancel is Turnout with onCancel handed to every line. Each line
// calls it at most once, with the result it held when ctx was done.
func TurnoutWithCancel[In, Out any](ctx context.Context, inputCh <-chan Result[In],
	engine Engine[In, Out], lines int, onCancel func(ctx context.Context, in Result[In])) <-chan Result[Out] {

	out := make(chan Result[Out])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, onCancel, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Lift turns a pure step into an Engine. Failed and cancelled inputs are
// passed along without running step.
func Lift[In, Out any](step func(ctx context.Context, v In) Out) Engine[In, Out] {
	return func(ctx context.Context, input Result[In]) <-chan Result[Out] {
		out := make(chan Result[Out], 1)
		defer close(out)

		if ctx.Err() != nil {
			return out
		}
		if !input.IsSuccess() {
			out <- derail[In, Out](input)
			return out
		}
		out <- carry(input, step(ctx, input.Value()))
		return out
	}
}
