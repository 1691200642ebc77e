package breath

import "github.com/ventlab/breath/hooking"

// A list of hook positions the breath cycle triggers.
var (
	// HookPosTransition triggers after every state change. The Item is a
	// Transition.
	HookPosTransition = &hooking.HookPos{Name: "BreathTransition"}

	// HookPosViolation triggers when the interlock is found asserted. The
	// Item is a ViolationError.
	HookPosViolation = &hooking.HookPos{Name: "BreathViolation"}

	// HookPosCycleComplete triggers on the return-to-zero tick of an
	// undisturbed cycle. The Item is a CycleEnd.
	HookPosCycleComplete = &hooking.HookPos{Name: "BreathCycleComplete"}
)

// Transition is the hook payload that describes one state change.
type Transition struct {
	From State
	To   State
}

// CycleEnd is the hook payload that describes one completed cycle.
type CycleEnd struct {
	// Cycle is the 1-based index of the cycle that just completed.
	Cycle uint64

	// Remainder is the toll value handed to the persistence store.
	Remainder uint8
}
