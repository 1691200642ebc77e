package breath

import "fmt"

// A PersistStore durably records the toll remainder left over at the end of
// each completed cycle. It is invoked exactly once per cycle, at entry to
// the return-to-zero phase.
type PersistStore interface {
	Save(remainder uint8) error
}

// An ErrorIndicator surfaces a constitutional violation to an operator. It
// is invoked exactly once per detected violation. No acknowledgement or
// clearing protocol is defined.
type ErrorIndicator interface {
	Signal(v ViolationError)
}

// ViolationError describes one detected constitutional violation: the
// safety interlock was found asserted while the machine was exhaling.
type ViolationError struct {
	// DiscardedToll is the torque toll value that the emergency reset
	// threw away. The reset is lossy: the cost is discarded, not banked.
	DiscardedToll uint8
}

func (v ViolationError) Error() string {
	return fmt.Sprintf(
		"constitutional violation, discarding torque toll %d",
		v.DiscardedToll)
}
