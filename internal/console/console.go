// Package console exposes the native console capabilities the stream
// translator needs on platforms whose terminal does not interpret ANSI
// escape sequences itself. On every other platform the adapter is absent
// and conversion is never attempted.
package console

// Device selects which standard stream's console handle a call targets.
// Handles are obtained once at adapter construction and reused for the
// process lifetime.
type Device int

const (
	Stdout Device = iota
	Stderr
)

// Coord is a 0-based screen buffer position.
type Coord struct {
	X, Y int16
}

// ScreenInfo is a snapshot of a console screen buffer.
type ScreenInfo struct {
	Size       Coord
	Cursor     Coord
	Attributes uint16
}

// API is the capability surface over the native console. Implementations
// exist only where such an API exists; callers must treat absence as
// "conversion impossible", not probe per call.
type API interface {
	ScreenInfo(d Device) (ScreenInfo, error)
	SetAttributes(d Device, attrs uint16) error
	SetCursor(d Device, pos Coord) error
	FillRegion(d Device, ch rune, count uint32, start Coord, attrs uint16) error
	SetTitle(title string) error
}

// New returns the platform's console adapter. ok is false when the platform
// has no native console API or the process is not attached to a console;
// ANSI is assumed to be handled by the terminal there.
func New() (API, bool) { return newAPI() }
