// Package hal abstracts discrete digital I/O behind logical line roles, so
// that the breath cycle can be exercised against an in-memory backend as
// well as against a register image.
package hal

// Line identifies a digital line by its logical role, independent of any
// physical pin assignment.
type Line int

// The line roles of the breath-cycle actuator.
const (
	// LineInhale is driven high while the actuator is engaged during the
	// intake phase.
	LineInhale Line = iota

	// LineExhale is driven high while the actuator is engaged during the
	// release phase.
	LineExhale

	// LineReturn is driven high while the actuator returns to the zero
	// position.
	LineReturn

	// LinePhaseClock is toggled once per hold-torque tick, producing a
	// square wave at half the tick frequency during that state.
	LinePhaseClock

	// LineViolation is the safety interlock input. It is sampled once per
	// cycle, during the exhale phase only.
	LineViolation

	// LineFault is driven by an error indicator when a violation is
	// detected. The state machine itself never touches it.
	LineFault

	numLines
)

// NumLines is the number of logical lines a bank must provide.
const NumLines = int(numLines)

var lineNames = map[Line]string{
	LineInhale:     "Inhale",
	LineExhale:     "Exhale",
	LineReturn:     "Return",
	LinePhaseClock: "PhaseClock",
	LineViolation:  "Violation",
	LineFault:      "Fault",
}

func (l Line) String() string {
	name, found := lineNames[l]
	if !found {
		return "Unknown"
	}

	return name
}
