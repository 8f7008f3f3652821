//go:build windows

package console

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The screen-buffer and mode calls have typed wrappers in x/sys/windows;
// the remaining kernel32 entry points are loaded dynamically.
var (
	kernel32                        = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleTextAttribute     = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleCursorPosition    = kernel32.NewProc("SetConsoleCursorPosition")
	procFillConsoleOutputCharacterW = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute  = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleTitleW            = kernel32.NewProc("SetConsoleTitleW")
)

type winConsole struct {
	handles [2]windows.Handle
}

// newAPI obtains the stdout/stderr console handles and probes that the
// console actually answers; redirected or detached processes fail the
// screen buffer info call and report the adapter as absent.
func newAPI() (API, bool) {
	out, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return nil, false
	}
	errh, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE)
	if err != nil {
		return nil, false
	}
	c := &winConsole{handles: [2]windows.Handle{out, errh}}
	if _, err := c.ScreenInfo(Stdout); err != nil {
		return nil, false
	}
	return c, true
}

func (c *winConsole) handle(d Device) windows.Handle {
	if d == Stderr {
		return c.handles[1]
	}
	return c.handles[0]
}

func (c *winConsole) ScreenInfo(d Device) (ScreenInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(c.handle(d), &info); err != nil {
		return ScreenInfo{}, fmt.Errorf("GetConsoleScreenBufferInfo: %w", err)
	}
	return ScreenInfo{
		Size:       Coord{X: info.Size.X, Y: info.Size.Y},
		Cursor:     Coord{X: info.CursorPosition.X, Y: info.CursorPosition.Y},
		Attributes: info.Attributes,
	}, nil
}

func (c *winConsole) SetAttributes(d Device, attrs uint16) error {
	ret, _, err := procSetConsoleTextAttribute.Call(uintptr(c.handle(d)), uintptr(attrs))
	if ret == 0 {
		return fmt.Errorf("SetConsoleTextAttribute: %w", err)
	}
	return nil
}

// packCoord packs a COORD into the single uintptr the console API expects
// when the structure is passed by value.
func packCoord(pos Coord) uintptr {
	return uintptr(uint32(uint16(pos.X)) | uint32(uint16(pos.Y))<<16)
}

func (c *winConsole) SetCursor(d Device, pos Coord) error {
	ret, _, err := procSetConsoleCursorPosition.Call(uintptr(c.handle(d)), packCoord(pos))
	if ret == 0 {
		return fmt.Errorf("SetConsoleCursorPosition: %w", err)
	}
	return nil
}

func (c *winConsole) FillRegion(d Device, ch rune, count uint32, start Coord, attrs uint16) error {
	var written uint32
	ret, _, err := procFillConsoleOutputCharacterW.Call(
		uintptr(c.handle(d)), uintptr(uint16(ch)), uintptr(count),
		packCoord(start), uintptr(unsafe.Pointer(&written)))
	if ret == 0 {
		return fmt.Errorf("FillConsoleOutputCharacterW: %w", err)
	}
	ret, _, err = procFillConsoleOutputAttribute.Call(
		uintptr(c.handle(d)), uintptr(attrs), uintptr(count),
		packCoord(start), uintptr(unsafe.Pointer(&written)))
	if ret == 0 {
		return fmt.Errorf("FillConsoleOutputAttribute: %w", err)
	}
	return nil
}

func (c *winConsole) SetTitle(title string) error {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return fmt.Errorf("SetConsoleTitleW: %w", err)
	}
	ret, _, callErr := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(p)))
	if ret == 0 {
		return fmt.Errorf("SetConsoleTitleW: %w", callErr)
	}
	return nil
}

// EnableVirtualTerminal switches the console to native VT100/ANSI
// processing. When it succeeds no conversion is necessary at all; callers
// fall back to converting only when the console predates VT support.
func EnableVirtualTerminal(d Device) bool {
	std := uint32(windows.STD_OUTPUT_HANDLE)
	if d == Stderr {
		std = windows.STD_ERROR_HANDLE
	}
	h, err := windows.GetStdHandle(std)
	if err != nil {
		return false
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
}
