package breath

import (
	"github.com/ventlab/breath/hal"
	"github.com/ventlab/breath/timing"
)

// DefaultFreq is the tick frequency the original rhythm timer was tuned to,
// one tick every 100 ms.
const DefaultFreq = 10 * timing.Hz

// A Builder builds breath cycles.
type Builder struct {
	engine    timing.Engine
	freq      timing.Freq
	bank      hal.Bank
	store     PersistStore
	indicator ErrorIndicator
	maxCycles uint64
}

// WithEngine sets the engine that provides the ticks.
func (b Builder) WithEngine(engine timing.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the tick frequency.
func (b Builder) WithFreq(freq timing.Freq) Builder {
	b.freq = freq
	return b
}

// WithBank sets the line bank the cycle drives.
func (b Builder) WithBank(bank hal.Bank) Builder {
	b.bank = bank
	return b
}

// WithStore sets the persistence store that receives the toll remainder at
// the end of every cycle.
func (b Builder) WithStore(store PersistStore) Builder {
	b.store = store
	return b
}

// WithIndicator sets the error indicator to fire on violations.
func (b Builder) WithIndicator(indicator ErrorIndicator) Builder {
	b.indicator = indicator
	return b
}

// WithMaxCycles bounds the run to the given number of completed cycles.
// Zero means the cycle runs forever, as the firmware did.
func (b Builder) WithMaxCycles(n uint64) Builder {
	b.maxCycles = n
	return b
}

// Build creates a breath cycle.
func (b Builder) Build(name string) *Cycle {
	if b.engine == nil {
		panic("a breath cycle requires an engine")
	}

	if b.bank == nil {
		panic("a breath cycle requires a line bank")
	}

	freq := b.freq
	if freq == 0 {
		freq = DefaultFreq
	}

	c := &Cycle{
		bank:      b.bank,
		store:     b.store,
		indicator: b.indicator,
		maxCycles: b.maxCycles,
		state:     StateIdle,
	}
	c.TickingComponent = timing.NewTickingComponent(name, b.engine, freq, c)

	return c
}
