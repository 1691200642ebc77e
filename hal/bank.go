package hal

// A Bank provides discrete digital I/O addressed by logical line role.
//
// Set, Clear, and Toggle drive output lines. Read samples the current level
// of a line. The breath cycle treats all its outputs as open loop: it writes
// them but never reads them back.
type Bank interface {
	Set(l Line)
	Clear(l Line)
	Toggle(l Line)
	Read(l Line) bool
}
