package remap

import "slices"

// Pipeline applies its stages in the order given. Stage names are not used
// to link stages; the order is trusted.
type Pipeline struct {
	stages []*Stage
}

func NewPipeline(stages ...*Stage) *Pipeline {
	return &Pipeline{stages: slices.Clone(stages)}
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*Stage {
	return slices.Clone(p.stages)
}

// Apply folds value through every stage.
func (p *Pipeline) Apply(value int64) int64 {
	for _, stage := range p.stages {
		value = stage.Apply(value)
	}
	return value
}

// Trace returns the value after each stage. The last element equals Apply(value).
func (p *Pipeline) Trace(value int64) []int64 {
	steps := make([]int64, 0, len(p.stages))
	for _, stage := range p.stages {
		value = stage.Apply(value)
		steps = append(steps, value)
	}
	return steps
}

// ApplyStage maps every interval through stage and concatenates the
// fragments into a new slice.
func ApplyStage(stage *Stage, ranges []Interval) []Interval {
	next := make([]Interval, 0, len(ranges))
	for _, r := range ranges {
		next = append(next, stage.ApplyRange(r)...)
	}
	return next
}

// ApplyRanges fans ranges out through every stage. The input slice is not modified.
func (p *Pipeline) ApplyRanges(ranges []Interval) []Interval {
	current := slices.Clone(ranges)
	for _, stage := range p.stages {
		current = ApplyStage(stage, current)
	}
	return current
}

// LowestLocation folds every seed and returns the smallest result.
func (p *Pipeline) LowestLocation(seeds []int64) (int64, error) {
	finals := make([]int64, 0, len(seeds))
	for _, seed := range seeds {
		finals = append(finals, p.Apply(seed))
	}
	return Min(finals)
}

// LowestStart propagates ranges and returns the smallest surviving start.
func (p *Pipeline) LowestStart(ranges []Interval) (int64, error) {
	return MinStart(p.ApplyRanges(ranges))
}

// Min returns the smallest value, or ErrNoSolution when values is empty.
func Min(values []int64) (int64, error) {
	if len(values) == 0 {
		return 0, ErrNoSolution
	}
	return slices.Min(values), nil
}

// MinStart returns the smallest Start, or ErrNoSolution when ranges is empty.
func MinStart(ranges []Interval) (int64, error) {
	if len(ranges) == 0 {
		return 0, ErrNoSolution
	}
	lowest := ranges[0].Start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}
