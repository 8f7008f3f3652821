package termstream

import (
	"os"

	"golang.org/x/term"
)

// Proxy forwards stream operations to a wrapped destination while routing
// writes through a Translator. It is the only handle callers hold; the
// capability set is explicit (Write, Flush, IsInteractive, IsClosed) rather
// than forwarding arbitrary operations to the wrapped value.
//
// The proxy does not own the destination: Close marks the proxy closed and
// rejects further writes, but never closes the underlying stream.
type Proxy struct {
	file   *os.File // nil when wrapping a generic writer
	tr     *Translator
	closed bool
}

// Write translates and forwards b. It fails with ErrClosed after Close.
// The returned count is len(b) on success; in convert and strip modes the
// bytes reaching the destination differ from the bytes accepted.
func (p *Proxy) Write(b []byte) (int, error) {
	if p.closed {
		return 0, ErrClosed
	}
	if err := p.tr.WriteString(string(b)); err != nil {
		return 0, err
	}
	return len(b), nil
}

// WriteString is Write for a string.
func (p *Proxy) WriteString(s string) (int, error) {
	if p.closed {
		return 0, ErrClosed
	}
	if err := p.tr.WriteString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// ResetAll restores the default attributes (convert mode) or emits the
// literal reset sequence (strip and passthrough modes). After Close it is
// a no-op: there is no destination left to reset.
func (p *Proxy) ResetAll() error {
	if p.closed {
		return nil
	}
	return p.tr.ResetAll()
}

// Flush forwards to the destination when it can flush.
func (p *Proxy) Flush() error {
	if p.closed {
		return ErrClosed
	}
	if f, ok := p.tr.dst.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// IsInteractive reports whether the destination is a real user-facing
// terminal device rather than a file or pipe.
func (p *Proxy) IsInteractive() bool {
	return p.file != nil && term.IsTerminal(int(p.file.Fd()))
}

// IsClosed reports whether Close has been called.
func (p *Proxy) IsClosed() bool { return p.closed }

// Close marks the proxy closed. The wrapped destination stays open.
func (p *Proxy) Close() error {
	p.closed = true
	return nil
}

// Mode reports the resolved mode of the wrapped stream.
func (p *Proxy) Mode() Mode { return p.tr.Mode() }
