package track

import (
	"context"
	"errors"
)

// Chain wraps a Result with the context its steps run under.
type Chain[T any] struct {
	ctx    context.Context
	result Result[T]
}

func Start[T any](ctx context.Context, result Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, v T) *Chain[T] {
	return Start(ctx, Success(v))
}

func (c *Chain[T]) Result() Result[T] {
	return c.result
}

// Then runs a step that returns its own Result.
func Then[T, U any](c *Chain[T], step func(context.Context, T) Result[U]) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{ctx: c.ctx, result: derail[T, U](c.result)}
	}
	if err := c.ctx.Err(); err != nil {
		return &Chain[U]{ctx: c.ctx, result: Cancel[U](err)}
	}
	return &Chain[U]{ctx: c.ctx, result: step(c.ctx, c.result.Value())}
}

// ThenTry runs a step returning (U, error). Context errors become cancellations.
func ThenTry[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) Result[U] {
		out, err := step(ctx, v)
		switch {
		case err == nil:
			return carry(c.result, out)
		case IsCancellation(err):
			return Cancel[U](err)
		default:
			return Fail[U](err)
		}
	})
}

// Map runs a step that cannot fail.
func Map[T, U any](c *Chain[T], step func(context.Context, T) U) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) Result[U] {
		return carry(c.result, step(ctx, v))
	})
}

// Ensure runs a side effect on success and leaves the result as is.
func (c *Chain[T]) Ensure(effect func(context.Context, T)) *Chain[T] {
	if c.result.IsSuccess() {
		effect(c.ctx, c.result.Value())
	}
	return c
}

// Finally collapses the chain into a plain value.
func Finally[T, U any](c *Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U,
	onCancel func(context.Context, error) U) U {

	switch {
	case c.result.IsSuccess():
		return onSuccess(c.ctx, c.result.Value())
	case c.result.IsCancel():
		return onCancel(c.ctx, c.result.Err())
	default:
		return onFailure(c.ctx, c.result.Err())
	}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
