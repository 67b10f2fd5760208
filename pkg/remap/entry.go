package remap

import "fmt"

// Entry maps [SourceStart, SourceStart+Length) onto [DestinationStart, DestinationStart+Length).
type Entry struct {
	DestinationStart int64
	SourceStart      int64
	Length           int64
}

func (e Entry) SourceEnd() int64 {
	return e.SourceStart + e.Length
}

func (e Entry) DestinationEnd() int64 {
	return e.DestinationStart + e.Length
}

// Delta is the offset added to every covered input.
func (e Entry) Delta() int64 {
	return e.DestinationStart - e.SourceStart
}

func (e Entry) Contains(value int64) bool {
	return e.SourceStart <= value && value < e.SourceEnd()
}

// Apply returns value shifted by Delta when the entry covers it, value otherwise.
func (e Entry) Apply(value int64) int64 {
	if e.Contains(value) {
		return value + e.Delta()
	}
	return value
}

// String renders the entry in input order: destination, source, length.
func (e Entry) String() string {
	return fmt.Sprintf("%d %d %d", e.DestinationStart, e.SourceStart, e.Length)
}
