// Package indicator provides error indicators that surface constitutional
// violations to an operator. The hardware source reserved a "flash error"
// path for this; these implementations fill it in without touching the
// state machine.
package indicator

import (
	"log"

	"github.com/ventlab/breath/breath"
	"github.com/ventlab/breath/hal"
)

// A LogIndicator writes every violation into a logger.
type LogIndicator struct {
	*log.Logger
}

// NewLogIndicator returns a LogIndicator which will write into the logger.
func NewLogIndicator(logger *log.Logger) *LogIndicator {
	i := new(LogIndicator)
	i.Logger = logger

	return i
}

// Signal logs the violation.
func (i *LogIndicator) Signal(v breath.ViolationError) {
	i.Printf("%v", v)
}

// A LineIndicator latches the fault line of a bank high on violation. No
// clearing protocol is defined, so the line stays high once set.
type LineIndicator struct {
	bank hal.Bank
}

// NewLineIndicator creates a LineIndicator driving the given bank.
func NewLineIndicator(bank hal.Bank) *LineIndicator {
	return &LineIndicator{bank: bank}
}

// Signal latches the fault line.
func (i *LineIndicator) Signal(_ breath.ViolationError) {
	i.bank.Set(hal.LineFault)
}

// Multi fans a violation out to several indicators.
type Multi []breath.ErrorIndicator

// Signal forwards the violation to every indicator, in order.
func (m Multi) Signal(v breath.ViolationError) {
	for _, i := range m {
		i.Signal(v)
	}
}
