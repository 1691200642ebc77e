package breath

import (
	"log"

	"github.com/ventlab/breath/hal"
	"github.com/ventlab/breath/hooking"
	"github.com/ventlab/breath/timing"
)

// phasesPerRotation is the number of phase increments that make one full
// rotation during the hold-torque state.
const phasesPerRotation = 8

// A Cycle is the breath-cycle state machine. It owns the current state, the
// phase counter, and the torque toll, and mutates them only from its tick
// function.
//
// Precondition: Tick has exactly one caller and must return before the next
// tick fires. Running the cycle on a timing.SerialEngine satisfies this by
// construction. Cycle adds no locking of its own; a port that drives Tick
// from concurrent contexts must serialize the calls itself.
type Cycle struct {
	*timing.TickingComponent
	hooking.HookableBase

	bank      hal.Bank
	store     PersistStore
	indicator ErrorIndicator

	state        State
	phaseCounter uint8
	torqueToll   uint8

	maxCycles       uint64
	completedCycles uint64
	violations      uint64
}

// Tick advances the machine by one state transition. It returns false only
// when a configured cycle budget has been exhausted, which stops the
// scheduler from re-arming.
func (c *Cycle) Tick() bool {
	if c.maxCycles > 0 && c.completedCycles >= c.maxCycles {
		return false
	}

	switch c.state {
	case StateIdle:
		c.bank.Clear(hal.LineInhale)
		c.bank.Clear(hal.LineExhale)
		c.bank.Clear(hal.LineReturn)
		c.moveTo(StateInhale)

	case StateInhale:
		c.bank.Set(hal.LineInhale)
		c.phaseCounter = 0
		c.moveTo(StateHoldTorque)

	case StateHoldTorque:
		c.holdTorque()

	case StateExhale:
		c.exhale()

	case StateReturnZero:
		c.returnZero()
	}

	return true
}

func (c *Cycle) holdTorque() {
	c.bank.Toggle(hal.LinePhaseClock)
	c.phaseCounter++

	// Radial opposition on every other phase costs friction. The toll
	// wraps modulo 256; the hardware carried no overflow guard and this
	// port keeps that behavior.
	if c.phaseCounter&0x01 == 1 {
		c.torqueToll++
	}

	if c.phaseCounter >= phasesPerRotation {
		c.bank.Clear(hal.LineInhale)
		c.moveTo(StateExhale)
	}
}

func (c *Cycle) exhale() {
	c.bank.Set(hal.LineExhale)

	// The interlock is level-sampled exactly once per cycle, here. A
	// pulse outside this window is never observed.
	if c.bank.Read(hal.LineViolation) {
		c.violate()
		return
	}

	c.moveTo(StateReturnZero)
}

func (c *Cycle) violate() {
	v := ViolationError{DiscardedToll: c.torqueToll}

	c.torqueToll = 0
	c.violations++

	if c.indicator != nil {
		c.indicator.Signal(v)
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosViolation,
		Item:   v,
	})

	c.moveTo(StateIdle)
}

func (c *Cycle) returnZero() {
	c.bank.Set(hal.LineReturn)
	c.bank.Clear(hal.LineExhale)

	remainder := c.torqueToll
	c.completedCycles++

	if c.store != nil {
		if err := c.store.Save(remainder); err != nil {
			log.Printf("%s: saving toll remainder: %v", c.Name(), err)
		}
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosCycleComplete,
		Item:   CycleEnd{Cycle: c.completedCycles, Remainder: remainder},
	})

	c.moveTo(StateIdle)
}

func (c *Cycle) moveTo(next State) {
	from := c.state
	c.state = next

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosTransition,
		Item:   Transition{From: from, To: next},
	})
}

// State returns the current state of the machine.
func (c *Cycle) State() State {
	return c.state
}

// PhaseCounter returns the current phase counter. It is meaningful only
// while the machine holds torque.
func (c *Cycle) PhaseCounter() uint8 {
	return c.phaseCounter
}

// TorqueToll returns the accumulated friction cost.
func (c *Cycle) TorqueToll() uint8 {
	return c.torqueToll
}

// CompletedCycles returns the number of undisturbed cycles finished so far.
func (c *Cycle) CompletedCycles() uint64 {
	return c.completedCycles
}

// Violations returns the number of violations detected so far.
func (c *Cycle) Violations() uint64 {
	return c.violations
}
