package hal

import (
	"log"
	"sync"

	"github.com/ventlab/breath/hooking"
)

// HookPosLineChange is triggered by a MemBank after the level of a line
// changes.
var HookPosLineChange = &hooking.HookPos{Name: "LineChange"}

// LineChange is the hook payload that describes one line-level change.
type LineChange struct {
	Line  Line
	Level bool
}

// A MemBank is an in-memory line bank. It backs tests and simulated runs,
// and lets hooks observe every line change.
type MemBank struct {
	hooking.HookableBase

	mu     sync.Mutex
	levels [numLines]bool
}

// NewMemBank creates a MemBank with all lines low.
func NewMemBank() *MemBank {
	return new(MemBank)
}

// Set drives a line high.
func (b *MemBank) Set(l Line) {
	b.write(l, true)
}

// Clear drives a line low.
func (b *MemBank) Clear(l Line) {
	b.write(l, false)
}

// Toggle inverts the level of a line.
func (b *MemBank) Toggle(l Line) {
	b.mu.Lock()
	level := !b.levels[b.index(l)]
	b.levels[b.index(l)] = level
	b.mu.Unlock()

	b.InvokeHook(hooking.HookCtx{
		Domain: b,
		Pos:    HookPosLineChange,
		Item:   LineChange{Line: l, Level: level},
	})
}

// Read samples the current level of a line.
func (b *MemBank) Read(l Line) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.levels[b.index(l)]
}

func (b *MemBank) write(l Line, level bool) {
	b.mu.Lock()
	changed := b.levels[b.index(l)] != level
	b.levels[b.index(l)] = level
	b.mu.Unlock()

	if !changed {
		return
	}

	b.InvokeHook(hooking.HookCtx{
		Domain: b,
		Pos:    HookPosLineChange,
		Item:   LineChange{Line: l, Level: level},
	})
}

func (b *MemBank) index(l Line) int {
	if l < 0 || l >= numLines {
		log.Panicf("line %d is not available on this bank", l)
	}

	return int(l)
}
