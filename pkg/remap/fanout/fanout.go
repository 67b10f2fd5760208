// Package fanout evaluates a remap.Pipeline concurrently. Seeds are folded on
// a track.Turnout, intervals are split stage by stage on an errgroup. Both
// modes recombine only through the final minimum, so their answers match the
// sequential Pipeline methods.
package fanout

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rangemap/pkg/remap"
	"github.com/ib-77/rangemap/pkg/track"
)

// LowestLocation folds every seed through p on track.Lines(ctx, NumCPU) lines
// and returns the smallest location.
func LowestLocation(ctx context.Context, p *remap.Pipeline, seeds []int64) (int64, error) {
	lines := track.Lines(ctx, runtime.NumCPU())
	logger := zerolog.Ctx(ctx)

	fold := track.Lift(func(_ context.Context, seed int64) int64 {
		return p.Apply(seed)
	})

	dropped := func(_ context.Context, in track.Result[int64]) {
		logger.Debug().Str("lot", in.ID().String()).Int64("seed", in.Value()).Msg("seed dropped on cancel")
	}

	var (
		found  bool
		lowest int64
	)
	for r := range track.TurnoutWithCancel(ctx, track.Feed(ctx, seeds), fold, lines, dropped) {
		if !r.IsSuccess() {
			return 0, fmt.Errorf("lot %s: %w", r.ID(), r.Err())
		}
		logger.Trace().Str("lot", r.ID().String()).Int64("location", r.Value()).Msg("seed folded")
		if !found || r.Value() < lowest {
			lowest, found = r.Value(), true
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, remap.ErrNoSolution
	}
	return lowest, nil
}

// LowestStart propagates ranges through p, running ApplyRange on up to
// track.Lines(ctx, NumCPU) intervals at a time within each stage.
func LowestStart(ctx context.Context, p *remap.Pipeline, ranges []remap.Interval) (int64, error) {
	current, err := ApplyRanges(ctx, p, ranges)
	if err != nil {
		return 0, err
	}
	return remap.MinStart(current)
}

// ApplyRanges is the concurrent form of Pipeline.ApplyRanges. Fragments keep
// the order the sequential form produces.
func ApplyRanges(ctx context.Context, p *remap.Pipeline, ranges []remap.Interval) ([]remap.Interval, error) {
	lines := track.Lines(ctx, runtime.NumCPU())
	logger := zerolog.Ctx(ctx)

	current := ranges
	for _, stage := range p.Stages() {
		next, err := applyStage(ctx, stage, current, lines)
		if err != nil {
			return nil, fmt.Errorf("map %s: %w", stage.Name(), err)
		}
		logger.Debug().Str("stage", stage.Name()).Int("in", len(current)).Int("out", len(next)).Msg("stage applied")
		current = next
	}
	return current, nil
}

func applyStage(ctx context.Context, stage *remap.Stage, ranges []remap.Interval, lines int) ([]remap.Interval, error) {
	parts := make([][]remap.Interval, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(lines, 1))
	for i, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = stage.ApplyRange(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 0
	for _, part := range parts {
		size += len(part)
	}
	next := make([]remap.Interval, 0, size)
	for _, part := range parts {
		next = append(next, part...)
	}
	return next, nil
}
