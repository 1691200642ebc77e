package breath

import (
	"log"

	"github.com/ventlab/breath/hooking"
)

// TransitionLogger is a hook that logs every state transition of a cycle.
type TransitionLogger struct {
	*log.Logger
}

// NewTransitionLogger returns a new TransitionLogger which will write into
// the logger.
func NewTransitionLogger(logger *log.Logger) *TransitionLogger {
	l := new(TransitionLogger)
	l.Logger = logger

	return l
}

// Func writes the transition information into the logger.
func (l *TransitionLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case HookPosTransition:
		t := ctx.Item.(Transition)
		l.Printf("%s -> %s", t.From, t.To)
	case HookPosViolation:
		v := ctx.Item.(ViolationError)
		l.Printf("violation, toll %d discarded", v.DiscardedToll)
	case HookPosCycleComplete:
		e := ctx.Item.(CycleEnd)
		l.Printf("cycle %d complete, remainder %d", e.Cycle, e.Remainder)
	}
}
