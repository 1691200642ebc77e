package persist

import (
	"github.com/ventlab/breath/breath"
	"github.com/ventlab/breath/hooking"
	"github.com/ventlab/breath/timing"
)

// TransitionTableName is the table that keeps one row per state transition.
const TransitionTableName = "breath_transition"

// A TransitionRecord is one persisted state transition.
type TransitionRecord struct {
	Time      float64
	FromState string
	ToState   string
}

// A TransitionRecorder is a hook that records every state transition of a
// breath cycle through a DataRecorder.
type TransitionRecorder struct {
	recorder   DataRecorder
	timeTeller timing.TimeTeller
}

// NewTransitionRecorder creates a TransitionRecorder and its backing table.
func NewTransitionRecorder(
	recorder DataRecorder,
	timeTeller timing.TimeTeller,
) *TransitionRecorder {
	r := &TransitionRecorder{
		recorder:   recorder,
		timeTeller: timeTeller,
	}

	r.recorder.CreateTable(TransitionTableName, TransitionRecord{})

	return r
}

// Func records transitions and ignores every other hook position.
func (r *TransitionRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != breath.HookPosTransition {
		return
	}

	t := ctx.Item.(breath.Transition)

	r.recorder.InsertData(TransitionTableName, TransitionRecord{
		Time:      float64(r.timeTeller.CurrentTime()),
		FromState: t.From.String(),
		ToState:   t.To.String(),
	})
}
