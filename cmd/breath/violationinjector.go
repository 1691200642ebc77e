package main

import (
	"github.com/ventlab/breath/breath"
	"github.com/ventlab/breath/hal"
	"github.com/ventlab/breath/hooking"
)

// violationInjector asserts the violation interlock right before the exhale
// of the configured cycle samples it, and releases the line once the
// violation has been taken.
type violationInjector struct {
	bank    hal.Bank
	atCycle uint64
	exhales uint64
}

func (i *violationInjector) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case breath.HookPosTransition:
		t := ctx.Item.(breath.Transition)
		if t.To != breath.StateExhale {
			return
		}

		i.exhales++
		if i.exhales == i.atCycle {
			i.bank.Set(hal.LineViolation)
		}

	case breath.HookPosViolation:
		i.bank.Clear(hal.LineViolation)
	}
}
