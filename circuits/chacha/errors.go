package chacha

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when a state or input vector has the wrong
// length. It is raised before any constraint is emitted. A field element
// that cannot be read as a 32-bit word has no define-time surface: it shows
// up as an unsatisfied decomposition constraint when the witness is solved.
var ErrShapeMismatch = errors.New("shape mismatch")

// GadgetError pins a failure to the gadget and the 32-bit lane it occurred
// at. A failed gadget invalidates the whole step; nothing is recovered
// locally.
type GadgetError struct {
	Gadget string
	Word   int // -1 when the failure is not tied to a single lane
	Err    error
}

func (e *GadgetError) Error() string {
	if e.Word < 0 {
		return fmt.Sprintf("%s: %v", e.Gadget, e.Err)
	}
	return fmt.Sprintf("%s: word %d: %v", e.Gadget, e.Word, e.Err)
}

func (e *GadgetError) Unwrap() error {
	return e.Err
}
