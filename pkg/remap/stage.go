package remap

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Stage is a named set of entries sorted by SourceStart.
type Stage struct {
	name    string
	entries []Entry
}

// NewStage sorts a copy of entries and checks every adjacent overlapping pair
// at the start of the later entry. Pairs that agree there are accepted.
// Pairs that disagree fail with *AmbiguityError. Entries must have a
// positive length and both ends must fit in an int64.
func NewStage(name string, entries ...Entry) (*Stage, error) {
	for _, entry := range entries {
		if entry.Length <= 0 {
			return nil, fmt.Errorf("map %s: entry %q: %w", name, entry, ErrEmptyEntry)
		}
		if entry.SourceStart > math.MaxInt64-entry.Length || entry.DestinationStart > math.MaxInt64-entry.Length {
			return nil, fmt.Errorf("map %s: entry %q: %w", name, entry, ErrEntryOverflow)
		}
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, compareEntries)

	for i := 1; i < len(sorted); i++ {
		left, right := sorted[i-1], sorted[i]
		if left.SourceEnd() <= right.SourceStart {
			continue
		}
		input := right.SourceStart
		output1, output2 := left.Apply(input), right.Apply(input)
		if output1 == output2 {
			continue
		}
		return nil, &AmbiguityError{
			Stage:   name,
			Input:   input,
			Output1: output1,
			Output2: output2,
		}
	}

	return &Stage{name: name, entries: sorted}, nil
}

// compareEntries orders by SourceStart, breaking ties on the remaining fields
// so that every permutation of the same entries sorts identically.
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(a.SourceStart, b.SourceStart); c != 0 {
		return c
	}
	if c := cmp.Compare(a.DestinationStart, b.DestinationStart); c != 0 {
		return c
	}
	return cmp.Compare(a.Length, b.Length)
}

func (s *Stage) Name() string {
	return s.name
}

// Entries returns a copy of the sorted entries.
func (s *Stage) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Apply maps value through the first entry that contains it.
func (s *Stage) Apply(value int64) int64 {
	for _, entry := range s.entries {
		if entry.Contains(value) {
			return entry.Apply(value)
		}
	}
	return value
}

// ApplyRange splits r against the stage's entries. Covered fragments are
// shifted by their entry's delta, uncovered fragments pass through. The
// result is never empty and its total length equals r.Length.
func (s *Stage) ApplyRange(r Interval) []Interval {
	if r.IsEmpty() {
		return []Interval{r}
	}

	out := make([]Interval, 0, 3)
	remaining := r

	for _, entry := range s.entries {
		if entry.SourceEnd() <= remaining.Start {
			continue
		}
		if entry.SourceStart >= remaining.End() {
			break
		}

		if entry.SourceStart > remaining.Start {
			left, right, _ := remaining.SplitAt(entry.SourceStart)
			out = append(out, left)
			remaining = right
		}

		if entry.SourceEnd() < remaining.End() {
			left, right, _ := remaining.SplitAt(entry.SourceEnd())
			out = append(out, left.Shift(entry.Delta()))
			remaining = right
			continue
		}

		out = append(out, remaining.Shift(entry.Delta()))
		remaining.Length = 0
		break
	}

	if !remaining.IsEmpty() {
		out = append(out, remaining)
	}
	return out
}
