package track

import "context"

// Feed sends every value as a Success and closes the channel. It stops early
// when ctx is done.
func Feed[T any](ctx context.Context, values []T) <-chan Result[T] {
	in := make(chan Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}
			select {
			case in <- Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Drain collects everything from out until it closes or ctx is done.
func Drain[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
