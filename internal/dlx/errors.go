package dlx

import "fmt"

// ErrorKind classifies the fatal, precondition-violation errors the engine
// can raise. OutOfRangeColumn and DuplicateColumn are programmer errors
// caught at construction time; NoColumnChosen marks an internal search bug
// and is unreachable, so a well-formed matrix never fails during search.
type ErrorKind int

const (
	// OutOfRangeColumn is raised by Build when a row references a column
	// index outside [0, num_cols).
	OutOfRangeColumn ErrorKind = iota
	// DuplicateColumn is raised by Build when a single row lists the same
	// column index more than once.
	DuplicateColumn
	// NoColumnChosen is raised by chooseColumn if it is ever invoked with
	// an empty active header list. Reaching it is a bug in search, since
	// the base case must intercept an empty list first.
	NoColumnChosen
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRangeColumn:
		return "OutOfRangeColumn"
	case DuplicateColumn:
		return "DuplicateColumn"
	case NoColumnChosen:
		return "NoColumnChosen"
	default:
		return "Unknown"
	}
}

// Error is the value panicked by this package on a fatal precondition
// violation. Callers that want a diagnostic string rather than a crashed
// process should recover and inspect it.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func fatal(kind ErrorKind, msg string) {
	panic(&Error{Kind: kind, Msg: msg})
}
