package termstream

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/stlalpha/termstream/internal/console"
	"github.com/stlalpha/termstream/internal/logging"
	"github.com/stlalpha/termstream/pkg/ansi"
)

// flusher is the optional flush capability of a destination. *os.File has
// no userspace buffer, so only buffering writers participate.
type flusher interface {
	Flush() error
}

// Translator consumes the token stream of each written chunk and, per mode,
// converts control sequences into native console calls, strips them, or
// re-emits them verbatim. Plain text spans go straight to the destination.
//
// Every operation runs to completion on the calling goroutine; there is no
// internal locking. Callers that share a destination across goroutines must
// serialize externally.
type Translator struct {
	dst    io.Writer
	mode   Mode
	reset  bool
	enc    *encoding.Encoder
	api    console.API
	device console.Device

	// state is created lazily on the first convert-mode control token,
	// capturing the console's attributes at that moment as the reset
	// target.
	state *Attribute
}

func newTranslator(dst io.Writer, mode Mode, api console.API, dev console.Device, opt Options) *Translator {
	return &Translator{
		dst:    dst,
		mode:   mode,
		reset:  opt.AutoReset,
		enc:    opt.Encoder,
		api:    api,
		device: dev,
	}
}

// Mode reports the resolved mode.
func (t *Translator) Mode() Mode { return t.mode }

// WriteString processes one chunk. Well-formed and empty input never fails;
// destination write errors and console call failures propagate.
func (t *Translator) WriteString(text string) error {
	if t.mode == ModePassthrough && t.enc == nil {
		if err := t.writeText(text); err != nil {
			return err
		}
		return t.autoReset()
	}
	sc := NewScanner(text)
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		if err := t.handleToken(tok); err != nil {
			return err
		}
	}
	return t.autoReset()
}

func (t *Translator) autoReset() error {
	if !t.reset {
		return nil
	}
	return t.ResetAll()
}

// ResetAll restores the default attributes. In convert mode this is the
// same as receiving an SGR 0 token. In strip and passthrough modes the
// literal reset sequence is emitted instead, so a downstream ANSI-aware
// consumer still sees any open style run terminated.
func (t *Translator) ResetAll() error {
	if t.mode == ModeConvert {
		st, err := t.attributes()
		if err != nil {
			return err
		}
		st.Apply(0)
		if err := t.api.SetAttributes(t.device, st.Packed()); err != nil {
			return &ConsoleError{Call: "SetAttributes", Err: err}
		}
		return nil
	}
	return t.writeText(ansi.Sequence(int(ansi.Reset)))
}

func (t *Translator) handleToken(tok Token) error {
	switch tok.Kind {
	case TokenText:
		return t.writeText(tok.Raw)
	case TokenCSI:
		switch t.mode {
		case ModeConvert:
			return t.convertCSI(tok)
		case ModePassthrough:
			return t.writeRaw(tok.Raw)
		}
		return nil
	case TokenOSC:
		switch t.mode {
		case ModeConvert:
			if tok.Command == 0 || tok.Command == 2 {
				logging.Debug("set title %q", tok.Payload)
				if err := t.api.SetTitle(tok.Payload); err != nil {
					return &ConsoleError{Call: "SetTitle", Err: err}
				}
			}
			return nil
		case ModePassthrough:
			return t.writeRaw(tok.Raw)
		}
		return nil
	}
	return nil
}

// writeText forwards a plain text span, transcoded when an encoder is set,
// and flushes so interleaved console calls and stream writes reach the
// observer in order (the two channels share no buffering).
func (t *Translator) writeText(text string) error {
	if text == "" {
		return nil
	}
	if t.enc != nil {
		encoded, err := t.enc.String(text)
		if err != nil {
			return err
		}
		text = encoded
	}
	return t.writeRaw(text)
}

func (t *Translator) writeRaw(text string) error {
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(t.dst, text); err != nil {
		return err
	}
	if f, ok := t.dst.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// attributes returns the lazily constructed attribute state, capturing the
// console's current attributes as the default on first use.
func (t *Translator) attributes() (*Attribute, error) {
	if t.state != nil {
		return t.state, nil
	}
	info, err := t.api.ScreenInfo(t.device)
	if err != nil {
		return nil, &ConsoleError{Call: "GetScreenInfo", Err: err}
	}
	t.state = NewAttribute(info.Attributes)
	return t.state, nil
}

// convertCSI replays one CSI token through the console API. SGR parameters
// are applied in order (later parameters win) and batched into a single
// SetAttributes call per token. Finals beyond SGR cover erase and cursor
// movement; other recognized sequences are dropped.
func (t *Translator) convertCSI(tok Token) error {
	switch tok.Final {
	case 'm':
		if len(tok.Params) == 0 {
			return nil
		}
		st, err := t.attributes()
		if err != nil {
			return err
		}
		for _, p := range tok.Params {
			st.Apply(p)
		}
		if err := t.api.SetAttributes(t.device, st.Packed()); err != nil {
			return &ConsoleError{Call: "SetAttributes", Err: err}
		}
		return nil
	case 'J':
		return t.eraseScreen(paramAt(tok.Params, 0, 0))
	case 'K':
		return t.eraseLine(paramAt(tok.Params, 0, 0))
	case 'H', 'f':
		// Parameters are 1-based row;column, the buffer is 0-based.
		row := paramAt(tok.Params, 0, 1)
		col := paramAt(tok.Params, 1, 1)
		return t.setCursor(console.Coord{X: int16(col - 1), Y: int16(row - 1)})
	case 'A':
		return t.moveCursor(0, -paramAt(tok.Params, 0, 1))
	case 'B':
		return t.moveCursor(0, paramAt(tok.Params, 0, 1))
	case 'C':
		return t.moveCursor(paramAt(tok.Params, 0, 1), 0)
	case 'D':
		return t.moveCursor(-paramAt(tok.Params, 0, 1), 0)
	}
	return nil
}

func paramAt(params []int, i, def int) int {
	if i < len(params) {
		return params[i]
	}
	return def
}

func (t *Translator) setCursor(pos console.Coord) error {
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	if err := t.api.SetCursor(t.device, pos); err != nil {
		return &ConsoleError{Call: "SetCursorPosition", Err: err}
	}
	return nil
}

func (t *Translator) moveCursor(dx, dy int) error {
	info, err := t.api.ScreenInfo(t.device)
	if err != nil {
		return &ConsoleError{Call: "GetScreenInfo", Err: err}
	}
	return t.setCursor(console.Coord{
		X: info.Cursor.X + int16(dx),
		Y: info.Cursor.Y + int16(dy),
	})
}

// currentAttrs is what erased cells are filled with: the tracked state when
// one exists, otherwise the console's own current attributes.
func (t *Translator) currentAttrs(info console.ScreenInfo) uint16 {
	if t.state != nil {
		return t.state.Packed()
	}
	return info.Attributes
}

func (t *Translator) eraseScreen(mode int) error {
	info, err := t.api.ScreenInfo(t.device)
	if err != nil {
		return &ConsoleError{Call: "GetScreenInfo", Err: err}
	}
	width := uint32(info.Size.X)
	height := uint32(info.Size.Y)
	cells := width*uint32(info.Cursor.Y) + uint32(info.Cursor.X)

	var start console.Coord
	var count uint32
	switch mode {
	case 1: // top of screen through cursor
		count = cells + 1
	case 2: // entire screen
		count = width * height
	default: // cursor through end of screen
		start = info.Cursor
		count = width*height - cells
	}
	if err := t.api.FillRegion(t.device, ' ', count, start, t.currentAttrs(info)); err != nil {
		return &ConsoleError{Call: "FillRegion", Err: err}
	}
	if mode == 2 {
		return t.setCursor(console.Coord{})
	}
	return nil
}

func (t *Translator) eraseLine(mode int) error {
	info, err := t.api.ScreenInfo(t.device)
	if err != nil {
		return &ConsoleError{Call: "GetScreenInfo", Err: err}
	}
	start := console.Coord{Y: info.Cursor.Y}
	var count uint32
	switch mode {
	case 1: // start of line through cursor
		count = uint32(info.Cursor.X) + 1
	case 2: // entire line
		count = uint32(info.Size.X)
	default: // cursor through end of line
		start.X = info.Cursor.X
		count = uint32(info.Size.X - info.Cursor.X)
	}
	if err := t.api.FillRegion(t.device, ' ', count, start, t.currentAttrs(info)); err != nil {
		return &ConsoleError{Call: "FillRegion", Err: err}
	}
	return nil
}
