package timing

import "github.com/ventlab/breath/hooking"

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// An Engine is a unit that keeps the tick-driven control loop running.
type Engine interface {
	hooking.Hookable
	TimeTeller
	EventScheduler

	// Run processes all the scheduled events until none is left.
	Run() error

	// Pause prevents the engine from triggering more events until Continue
	// is called.
	Pause()

	// Continue resumes a paused engine.
	Continue()
}

// HookPosBeforeEvent is a hook position that triggers before handling an
// event.
var HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent is a hook position that triggers after handling an event.
var HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}
