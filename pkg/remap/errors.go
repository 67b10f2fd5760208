package remap

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned when a minimum is requested over no values.
var ErrNoSolution = errors.New("no solution found")

// ErrEmptyEntry is returned by NewStage for an entry whose length is not positive.
var ErrEmptyEntry = errors.New("entry length must be positive")

// ErrEntryOverflow is returned by NewStage for an entry whose source or
// destination end does not fit in an int64.
var ErrEntryOverflow = errors.New("entry end overflows int64")

// AmbiguityError reports two overlapping entries of one stage that map the
// same input to different outputs.
type AmbiguityError struct {
	Stage   string
	Input   int64
	Output1 int64
	Output2 int64
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("overlaps in map %s: input %d ambiguous between %d and %d",
		e.Stage, e.Input, e.Output1, e.Output2)
}
