package expand

import (
	"errors"
	"fmt"
)

// MalformedRowError describes an input row that cannot be expanded.  The
// row is logged and skipped; the run continues with the remaining rows.
type MalformedRowError struct {
	Line   int // 1-based input line number
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row at line %d: %s", e.Line, e.Reason)
}

// EmptySampleTokenError describes an empty element of a collapsed
// sample-name list, e.g. from a doubled or trailing comma.  The token is
// logged and dropped; the rest of the row is still used.
type EmptySampleTokenError struct {
	Line  int
	Token int // 0-based position within the collapsed list
}

func (e *EmptySampleTokenError) Error() string {
	return fmt.Sprintf("empty sample token %d at line %d", e.Token, e.Line)
}

// ErrNoSurvivingRecords is returned when every input interval was either
// malformed or filtered out.  No output files are written in that case.
var ErrNoSurvivingRecords = errors.New("no merged intervals pass the replicate filter")
