package ansi

import (
	"strings"
)

// matchSequence reports whether an ANSI sequence recognized by this package
// starts at s[i] (which must be ESC), returning the index just past it.
// Recognized forms are CSI with decimal parameters and a letter final byte,
// and OSC terminated by BEL. Anything else, including a dangling introducer,
// is not a match and is treated as visible text by the callers.
func matchSequence(s string, i int) (int, bool) {
	if i+1 >= len(s) {
		return 0, false
	}
	switch s[i+1] {
	case '[':
		j := i + 2
		for j < len(s) && j-i <= maxSequenceLen {
			c := s[j]
			if c == ';' || (c >= '0' && c <= '9') {
				j++
				continue
			}
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				return j + 1, true
			}
			return 0, false
		}
		return 0, false
	case ']':
		for j := i + 2; j < len(s); j++ {
			switch s[j] {
			case '\a':
				return j + 1, true
			case '\n', '\x1b':
				return 0, false
			}
		}
		return 0, false
	}
	return 0, false
}

// maxSequenceLen bounds how far a CSI parameter scan may run before the
// candidate is abandoned as plain text.
const maxSequenceLen = 64

// Strip removes all recognized ANSI escape sequences from s. Unterminated
// or unrecognized sequences are kept verbatim, so stripping is idempotent.
func Strip(s string) string {
	if !strings.Contains(s, ESC) {
		return s
	}
	var result strings.Builder
	result.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			if end, ok := matchSequence(s, i); ok {
				i = end
				continue
			}
		}
		result.WriteByte(s[i])
		i++
	}
	return result.String()
}

// VisibleLength returns the display width of a string, ignoring ANSI escape
// sequences. This counts only the characters that would be visible on screen.
func VisibleLength(s string) int {
	visCount := 0
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' {
			if end, ok := matchSequence(s, i); ok {
				i = end
				continue
			}
		}
		visCount++
		i++
	}
	return visCount
}

// TruncateVisible truncates a string to maxVisible characters while preserving
// ANSI codes. Escape sequences are kept intact and do not count toward the
// visible character limit. If the string is truncated while a style run is
// open, the last seen reset sequence is appended so the run terminates.
func TruncateVisible(s string, maxVisible int) string {
	if maxVisible <= 0 {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	visCount := 0
	i := 0
	lastResetSeq := ""

	for i < len(s) {
		if s[i] == '\x1b' {
			if end, ok := matchSequence(s, i); ok {
				escSeq := s[i:end]
				result.WriteString(escSeq)
				if strings.Contains(escSeq, "0m") || escSeq == CSI+"m" {
					lastResetSeq = escSeq
				}
				i = end
				continue
			}
		}
		if visCount < maxVisible {
			result.WriteByte(s[i])
			visCount++
			i++
		} else {
			if lastResetSeq != "" && !strings.HasSuffix(result.String(), lastResetSeq) {
				result.WriteString(lastResetSeq)
			}
			break
		}
	}

	return result.String()
}

// PadVisible pads a string to the specified width using the given pad
// character. ANSI escape sequences do not count toward the width.
func PadVisible(s string, width int, padChar rune) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	padding := strings.Repeat(string(padChar), width-visLen)
	return s + padding
}

// ApplyWidthConstraint truncates and/or pads a string to exact width.
// ANSI escape sequences are preserved during truncation.
func ApplyWidthConstraint(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = TruncateVisible(s, width)
	s = PadVisible(s, width, ' ')
	return s
}
