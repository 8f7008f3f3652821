package termstream

import (
	"strconv"
	"strings"
)

// TokenKind discriminates the spans a Scanner produces.
type TokenKind int

const (
	TokenText TokenKind = iota // plain text span
	TokenCSI                   // Control Sequence Introducer sequence
	TokenOSC                   // Operating System Command sequence
)

// Token is one span of scanned input. Raw always holds the exact bytes the
// token covers, so concatenating the raws of all tokens reconstructs the
// input.
type Token struct {
	Kind TokenKind
	Raw  string

	// CSI fields. Params holds the valid decimal parameter fields in
	// order; empty and non-numeric fields are dropped, not errors.
	Params []int
	Final  byte

	// OSC fields. Command is the numeric sub-command (-1 when the first
	// field is not numeric); Payload is the second field.
	Command int
	Payload string
}

// maxCSILen bounds how far a CSI parameter scan may run before the
// candidate sequence is abandoned as plain text.
const maxCSILen = 64

// Scanner tokenizes one text buffer into alternating plain text and control
// sequence spans, left to right, with no gaps and no overlaps. It is pure
// and restartable: each chunk gets its own Scanner, and no state carries
// over between chunks. A sequence split across two chunks is therefore
// emitted as plain text, not reassembled.
type Scanner struct {
	input string
	pos   int
}

// NewScanner returns a scanner over input.
func NewScanner(input string) *Scanner {
	return &Scanner{input: input}
}

// Next returns the next token. ok is false once the input is exhausted.
// Empty text spans between adjacent sequences are skipped.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.input) {
		return Token{}, false
	}
	for i := s.pos; i < len(s.input); i++ {
		if s.input[i] != 0x1b {
			continue
		}
		tok, end, ok := matchAt(s.input, i)
		if !ok {
			continue
		}
		if i > s.pos {
			// Emit the preceding text first; the sequence is
			// re-matched on the next call.
			text := Token{Kind: TokenText, Raw: s.input[s.pos:i]}
			s.pos = i
			return text, true
		}
		s.pos = end
		return tok, true
	}
	text := Token{Kind: TokenText, Raw: s.input[s.pos:]}
	s.pos = len(s.input)
	return text, true
}

// matchAt attempts to match a control sequence starting at in[start], which
// must be ESC. A dangling introducer, an interrupted OSC, or a CSI with
// bytes outside the decimal parameter set does not match; those bytes stay
// plain text.
func matchAt(in string, start int) (Token, int, bool) {
	if start+1 >= len(in) {
		return Token{}, 0, false
	}
	switch in[start+1] {
	case '[':
		j := start + 2
		for j < len(in) && j-start <= maxCSILen {
			c := in[j]
			if c == ';' || (c >= '0' && c <= '9') {
				j++
				continue
			}
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				tok := Token{
					Kind:   TokenCSI,
					Raw:    in[start : j+1],
					Params: parseParams(in[start+2 : j]),
					Final:  c,
				}
				return tok, j + 1, true
			}
			return Token{}, 0, false
		}
		return Token{}, 0, false
	case ']':
		for j := start + 2; j < len(in); j++ {
			switch in[j] {
			case '\a':
				cmd, payload := parseOSC(in[start+2 : j])
				tok := Token{
					Kind:    TokenOSC,
					Raw:     in[start : j+1],
					Command: cmd,
					Payload: payload,
				}
				return tok, j + 1, true
			case '\n', 0x1b:
				return Token{}, 0, false
			}
		}
		return Token{}, 0, false
	}
	return Token{}, 0, false
}

func parseParams(s string) []int {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ";")
	params := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		params = append(params, n)
	}
	return params
}

func parseOSC(s string) (int, string) {
	fields := strings.Split(s, ";")
	cmd := -1
	if n, err := strconv.Atoi(fields[0]); err == nil {
		cmd = n
	}
	payload := ""
	if len(fields) > 1 {
		payload = fields[1]
	}
	return cmd, payload
}
