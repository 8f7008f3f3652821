package termstream

import (
	"fmt"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/encoding"

	"github.com/stlalpha/termstream/internal/console"
	"github.com/stlalpha/termstream/internal/logging"
)

// Mode selects what happens to control sequences embedded in written text.
// It is fixed for the life of a translator.
type Mode int

const (
	// ModeAuto resolves to one of the concrete modes at construction
	// time, based on the platform and the destination.
	ModeAuto Mode = iota
	// ModeConvert replays each sequence's effect through the native
	// console API and forwards only the plain text.
	ModeConvert
	// ModeStrip discards recognized sequences and forwards the plain text.
	ModeStrip
	// ModePassthrough forwards everything verbatim.
	ModePassthrough
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeConvert:
		return "convert"
	case ModeStrip:
		return "strip"
	case ModePassthrough:
		return "passthrough"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Options configures a wrapped stream.
type Options struct {
	// Mode defaults to ModeAuto.
	Mode Mode

	// AutoReset restores the default attributes after every Write, so
	// styling never leaks past a single call.
	AutoReset bool

	// Encoder, when set, transcodes plain text spans before they reach
	// the destination; escape bytes are never transcoded. Wrap encoders
	// that can reject runes with encoding.ReplaceUnsupported.
	Encoder *encoding.Encoder
}

// resolveMode validates the requested mode and resolves ModeAuto against
// the platform, console availability, and destination interactivity. The
// returned console API is non-nil only for ModeConvert.
func resolveMode(opt Options, f *os.File) (Mode, console.API, console.Device, error) {
	dev := console.Stdout
	if f == os.Stderr {
		dev = console.Stderr
	}

	switch opt.Mode {
	case ModeConvert:
		api, ok := console.New()
		if !ok {
			return 0, nil, 0, &OptionError{Reason: "convert mode requires a native console API"}
		}
		return ModeConvert, api, dev, nil
	case ModeStrip, ModePassthrough:
		return opt.Mode, nil, dev, nil
	case ModeAuto:
	default:
		return 0, nil, 0, &OptionError{Reason: fmt.Sprintf("unknown mode %d", int(opt.Mode))}
	}

	interactive := f != nil &&
		(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))

	if runtime.GOOS == "windows" && interactive {
		if api, ok := console.New(); ok {
			// A console that accepts VT processing interprets ANSI
			// natively; conversion is only for consoles that refuse.
			if console.EnableVirtualTerminal(dev) {
				logging.Debug("auto mode: VT processing enabled, passing through")
				return ModePassthrough, nil, dev, nil
			}
			logging.Debug("auto mode: converting for legacy console")
			return ModeConvert, api, dev, nil
		}
	}
	if !interactive {
		return ModeStrip, nil, dev, nil
	}
	return ModePassthrough, nil, dev, nil
}
