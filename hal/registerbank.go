package hal

import (
	"log"
	"sync"
)

// A RegisterBank maps lines onto bits of a single 8-bit port image, the way
// register-level GPIO banks lay them out. Output lines mutate the output
// latch; input lines are sampled from a separate input image that an
// external driver sets through Drive.
type RegisterBank struct {
	mu sync.Mutex

	bits      [numLines]uint8
	isInput   [numLines]bool
	outputReg uint8
	inputReg  uint8
}

// NewRegisterBank creates a RegisterBank with the default pinout: line i on
// bit i, with the violation interlock as the only input.
func NewRegisterBank() *RegisterBank {
	b := new(RegisterBank)

	for i := 0; i < NumLines; i++ {
		b.bits[i] = uint8(i)
	}
	b.isInput[LineViolation] = true

	return b
}

// Set drives an output line high.
func (b *RegisterBank) Set(l Line) {
	b.mu.Lock()
	b.outputReg |= b.mask(l)
	b.mu.Unlock()
}

// Clear drives an output line low.
func (b *RegisterBank) Clear(l Line) {
	b.mu.Lock()
	b.outputReg &^= b.mask(l)
	b.mu.Unlock()
}

// Toggle inverts an output line.
func (b *RegisterBank) Toggle(l Line) {
	b.mu.Lock()
	b.outputReg ^= b.mask(l)
	b.mu.Unlock()
}

// Read samples a line. Input lines read the input image; output lines read
// back the output latch.
func (b *RegisterBank) Read(l Line) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.isInput[b.index(l)] {
		return b.inputReg&b.mask(l) != 0
	}

	return b.outputReg&b.mask(l) != 0
}

// Drive sets the level of an input line, standing in for the external
// signal source.
func (b *RegisterBank) Drive(l Line, level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isInput[b.index(l)] {
		log.Panicf("line %s is not an input", l)
	}

	if level {
		b.inputReg |= b.mask(l)
	} else {
		b.inputReg &^= b.mask(l)
	}
}

// Port returns a snapshot of the output latch.
func (b *RegisterBank) Port() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.outputReg
}

func (b *RegisterBank) mask(l Line) uint8 {
	return 1 << b.bits[b.index(l)]
}

func (b *RegisterBank) index(l Line) int {
	if l < 0 || l >= numLines {
		log.Panicf("line %d is not available on this bank", l)
	}

	return int(l)
}
