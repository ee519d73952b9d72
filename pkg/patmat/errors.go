package patmat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Definition errors, reported by Validate and Compile before any value
// is matched. Test for them with errors.Is.
var (
	ErrInconsistentAlternation = errors.New("alternatives bind different names")
	ErrDuplicateBinding        = errors.New("name bound more than once")
	ErrRangeKindMismatch       = errors.New("range endpoints differ in kind")
	ErrRangeEndpoint           = errors.New("range endpoint must be an integer or character")
	ErrEmptyRange              = errors.New("range lower bound exceeds upper bound")
	ErrEmptyAlternation        = errors.New("alternation has no alternatives")
	ErrRestPosition            = errors.New("rest marker out of bounds")
	ErrDuplicateField          = errors.New("field named more than once")
	ErrNilPattern              = errors.New("missing pattern")
)

// ErrNoMatch is returned by Evaluate when no arm accepts the value.
var ErrNoMatch = errors.New("no arm matched")

// ErrNotExhaustive is returned by Compile when the arms have no
// catch-all and the configuration asks for exhaustiveness errors.
var ErrNotExhaustive = errors.New("arms are not exhaustive")

// PatternError locates a definition error within a pattern.
type PatternError struct {
	Inner error
	// Arm is the index of the arm the pattern belongs to, or -1 when the
	// pattern was validated on its own.
	Arm int
	// Path leads from the root pattern to the offending sub-pattern.
	Path []string
	// Pattern is the root pattern.
	Pattern Pattern
}

func (e *PatternError) Unwrap() error {
	return e.Inner
}

func (e *PatternError) Error() string {
	var sb strings.Builder
	if e.Arm >= 0 {
		fmt.Fprintf(&sb, "arm %d: ", e.Arm)
	}
	sb.WriteString(patternString(e.Pattern))
	if len(e.Path) > 0 {
		sb.WriteString(" at ")
		sb.WriteString(strings.Join(e.Path, "/"))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Inner.Error())
	return sb.String()
}
