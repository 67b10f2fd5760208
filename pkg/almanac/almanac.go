package almanac

import (
	"fmt"
	"strings"

	"github.com/ib-77/rangemap/pkg/remap"
)

// Almanac is a parsed input: the seed values and the stages in declared order.
type Almanac struct {
	Seeds  []int64
	Stages []*remap.Stage

	seedsLine int
}

// Pipeline chains the stages in the order they were declared.
func (a *Almanac) Pipeline() *remap.Pipeline {
	return remap.NewPipeline(a.Stages...)
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]remap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, parseErrorf(a.seedsLine, "wrong seed range chunk size: %d values", len(a.Seeds))
	}

	ranges := make([]remap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		ranges = append(ranges, remap.Interval{Start: a.Seeds[i], Length: a.Seeds[i+1]})
	}
	return ranges, nil
}

// ChainBreak marks two adjacent stages whose names do not link, such as
// "seed-to-soil" followed by "water-to-light".
type ChainBreak struct {
	From string
	To   string
}

func (b ChainBreak) String() string {
	return fmt.Sprintf("%s does not feed %s", b.From, b.To)
}

// ChainBreaks lists adjacent stages named "<a>-to-<b>" where the first
// stage's target is not the next stage's source. Names without "-to-" are
// skipped. This is advisory only; stage order is always taken as given.
func ChainBreaks(stages []*remap.Stage) []ChainBreak {
	var breaks []ChainBreak
	for i := 1; i < len(stages); i++ {
		prev, next := stages[i-1].Name(), stages[i].Name()
		_, target, ok1 := strings.Cut(prev, "-to-")
		source, _, ok2 := strings.Cut(next, "-to-")
		if ok1 && ok2 && target != source {
			breaks = append(breaks, ChainBreak{From: prev, To: next})
		}
	}
	return breaks
}
