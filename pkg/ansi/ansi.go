// Package ansi generates ANSI escape sequences for terminal text styling,
// cursor movement, and screen/line clearing, and provides string helpers
// that are aware of embedded escape sequences.
//
// The catalog is a static table of numeric SGR parameters rendered through
// Sequence; nothing here touches the terminal.
package ansi

import (
	"fmt"
	"strings"
)

// Escape sequence introducers and terminators.
const (
	ESC = "\x1b"
	CSI = "\x1b[" // Control Sequence Introducer
	OSC = "\x1b]" // Operating System Command
	BEL = "\a"    // terminates OSC sequences
)

// Sequence renders numeric SGR parameters into a single escape sequence,
// e.g. Sequence(1, 31) == "\x1b[1;31m".
func Sequence(params ...int) string {
	if len(params) == 0 {
		return CSI + "m"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return CSI + strings.Join(parts, ";") + "m"
}

// Style is a text style SGR parameter.
type Style int

const (
	Reset  Style = 0 // reset all attributes to default
	Bright Style = 1
	Dim    Style = 2
	Normal Style = 22 // neither bright nor dim
)

// String returns the escape sequence for the style.
func (s Style) String() string { return Sequence(int(s)) }

// ForeColor is a foreground color SGR parameter.
type ForeColor int

const (
	ForeBlack ForeColor = iota + 30
	ForeRed
	ForeGreen
	ForeYellow
	ForeBlue
	ForeMagenta
	ForeCyan
	ForeWhite
)

// ForeDefault resets only the foreground to the terminal default.
const ForeDefault ForeColor = 39

const (
	ForeBrightBlack ForeColor = iota + 90
	ForeBrightRed
	ForeBrightGreen
	ForeBrightYellow
	ForeBrightBlue
	ForeBrightMagenta
	ForeBrightCyan
	ForeBrightWhite
)

// String returns the escape sequence for the color.
func (c ForeColor) String() string { return Sequence(int(c)) }

// BackColor is a background color SGR parameter.
type BackColor int

const (
	BackBlack BackColor = iota + 40
	BackRed
	BackGreen
	BackYellow
	BackBlue
	BackMagenta
	BackCyan
	BackWhite
)

// BackDefault resets only the background to the terminal default.
const BackDefault BackColor = 49

const (
	BackBrightBlack BackColor = iota + 100
	BackBrightRed
	BackBrightGreen
	BackBrightYellow
	BackBrightBlue
	BackBrightMagenta
	BackBrightCyan
	BackBrightWhite
)

// String returns the escape sequence for the color.
func (c BackColor) String() string { return Sequence(int(c)) }

// ClearMode selects how much of the screen or line a clear sequence erases.
type ClearMode int

const (
	ClearToEnd   ClearMode = 0 // cursor to end of screen/line
	ClearToStart ClearMode = 1 // cursor to beginning of screen/line
	ClearAll     ClearMode = 2 // entire screen/line
)

// ClearScreen returns the erase-display sequence for the given mode.
// Out-of-range modes fall back to clearing the entire screen.
func ClearScreen(mode ClearMode) string {
	if mode < ClearToEnd || mode > ClearAll {
		mode = ClearAll
	}
	return fmt.Sprintf("%s%dJ", CSI, mode)
}

// ClearLine returns the erase-line sequence for the given mode.
// Out-of-range modes fall back to clearing the entire line.
func ClearLine(mode ClearMode) string {
	if mode < ClearToEnd || mode > ClearAll {
		mode = ClearAll
	}
	return fmt.Sprintf("%s%dK", CSI, mode)
}

// CursorUp moves the cursor n rows up.
func CursorUp(n int) string { return fmt.Sprintf("%s%dA", CSI, n) }

// CursorDown moves the cursor n rows down.
func CursorDown(n int) string { return fmt.Sprintf("%s%dB", CSI, n) }

// CursorForward moves the cursor n columns right.
func CursorForward(n int) string { return fmt.Sprintf("%s%dC", CSI, n) }

// CursorBack moves the cursor n columns left.
func CursorBack(n int) string { return fmt.Sprintf("%s%dD", CSI, n) }

// CursorPosition moves the cursor to the 1-based column x, row y.
func CursorPosition(x, y int) string { return fmt.Sprintf("%s%d;%dH", CSI, y, x) }

// Title returns the OSC sequence that sets the terminal window title.
func Title(title string) string { return OSC + "2;" + title + BEL }
