//go:build !windows

package console

// newAPI reports the adapter absent: the terminal emulator interprets ANSI
// sequences itself, so conversion is never needed.
func newAPI() (API, bool) { return nil, false }

// EnableVirtualTerminal is a no-op where the terminal is already a VT.
func EnableVirtualTerminal(d Device) bool { return true }
