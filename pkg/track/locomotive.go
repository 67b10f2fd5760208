package track

import (
	"context"
	"sync"
)

// Engine turns one input Result into at most one output Result.
type Engine[In, Out any] func(ctx context.Context, input Result[In]) <-chan Result[Out]

// Locomotive pulls from inputCh, runs engine on each result and pushes the
// outcome to outCh until inputCh closes or ctx is done. onCancel, when set,
// receives the result that was in flight at cancellation.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan Result[In], outCh chan<- Result[Out],
	engine Engine[In, Out], onCancel func(ctx context.Context, in Result[In]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if onCancel != nil {
					onCancel(ctx, in)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					if onCancel != nil {
						onCancel(ctx, in)
					}
					return
				}

				select {
				case <-ctx.Done():
					if onCancel != nil {
						onCancel(ctx, in)
					}
					return
				case outCh <- pr:
				}
			}
		}
	}
}
