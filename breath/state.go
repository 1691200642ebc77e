// Package breath implements the breath-cycle state machine that sequences a
// periodic mechanical actuation over four output lines, guarded by one
// safety-interlock input.
package breath

// State enumerates the phases of the breath cycle. Exactly one state is
// current at any time and it is the sole control variable of the machine.
type State int

// The five states of the breath cycle.
const (
	// StateIdle is the rest state. The machine starts here and returns
	// here at the end of every cycle, disturbed or not.
	StateIdle State = iota

	// StateInhale engages the actuator for the intake phase.
	StateInhale

	// StateHoldTorque advances the rotational phase tick by tick. Eight
	// phase increments make one full rotation.
	StateHoldTorque

	// StateExhale engages the actuator for the release phase and samples
	// the safety interlock.
	StateExhale

	// StateReturnZero brings the actuator back to the zero position and
	// hands the toll remainder to the persistence store.
	StateReturnZero
)

var stateNames = map[State]string{
	StateIdle:       "Idle",
	StateInhale:     "Inhale",
	StateHoldTorque: "HoldTorque",
	StateExhale:     "Exhale",
	StateReturnZero: "ReturnZero",
}

func (s State) String() string {
	name, found := stateNames[s]
	if !found {
		return "Unknown"
	}

	return name
}
