package remap

import "fmt"

// Interval is the half-open range [Start, Start+Length).
type Interval struct {
	Start  int64
	Length int64
}

func (r Interval) End() int64 {
	return r.Start + r.Length
}

func (r Interval) Contains(value int64) bool {
	return r.Start <= value && value < r.End()
}

func (r Interval) IsEmpty() bool {
	return r.Length <= 0
}

// Shift moves the interval by delta, keeping its length.
func (r Interval) Shift(delta int64) Interval {
	return Interval{Start: r.Start + delta, Length: r.Length}
}

// SplitAt cuts r at point. left keeps r's start and right starts at point;
// their lengths sum to r.Length. ok is false unless point lies strictly
// inside r, so neither half is ever empty.
func (r Interval) SplitAt(point int64) (left, right Interval, ok bool) {
	if point <= r.Start || point >= r.End() {
		return Interval{}, Interval{}, false
	}
	left = Interval{Start: r.Start, Length: point - r.Start}
	right = Interval{Start: point, Length: r.End() - point}
	return left, right, true
}

func (r Interval) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}

// TotalLength sums the lengths of ranges.
func TotalLength(ranges []Interval) int64 {
	var total int64
	for _, r := range ranges {
		total += r.Length
	}
	return total
}
