package termstream

import (
	"bytes"
	"errors"
	"runtime"
	"testing"
)

// flushRecorder counts flushes so forwarding through the proxy is visible.
type flushRecorder struct {
	bytes.Buffer
	flushes int
}

func (f *flushRecorder) Flush() error {
	f.flushes++
	return nil
}

func TestProxyRejectsWritesAfterClose(t *testing.T) {
	var dst bytes.Buffer
	p, err := WrapWriter(&dst, Options{Mode: ModeStrip})
	if err != nil {
		t.Fatal(err)
	}
	if p.IsClosed() {
		t.Fatal("fresh proxy reports closed")
	}
	if _, err := p.WriteString("before"); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !p.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if _, err := p.Write([]byte("after")); !errors.Is(err, ErrClosed) {
		t.Errorf("Write after close: err = %v, want ErrClosed", err)
	}
	if err := p.Flush(); !errors.Is(err, ErrClosed) {
		t.Errorf("Flush after close: err = %v, want ErrClosed", err)
	}
	if err := p.ResetAll(); err != nil {
		t.Errorf("ResetAll after close: err = %v, want nil", err)
	}
	if dst.String() != "before" {
		t.Errorf("destination = %q, want %q", dst.String(), "before")
	}
}

func TestProxyWriteCountsInputBytes(t *testing.T) {
	var dst bytes.Buffer
	p, err := WrapWriter(&dst, Options{Mode: ModeStrip})
	if err != nil {
		t.Fatal(err)
	}
	input := "\x1b[31mRED\x1b[0m"
	n, err := p.WriteString(input)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(input) {
		t.Errorf("n = %d, want %d (input length, not output length)", n, len(input))
	}
	if dst.String() != "RED" {
		t.Errorf("destination = %q, want %q", dst.String(), "RED")
	}
}

func TestWrapRejectsUnknownMode(t *testing.T) {
	var dst bytes.Buffer
	_, err := WrapWriter(&dst, Options{Mode: Mode(42)})
	var oe *OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("err = %v, want *OptionError", err)
	}
}

func TestConvertRequiresConsole(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("a native console may be attached on windows")
	}
	var dst bytes.Buffer
	_, err := WrapWriter(&dst, Options{Mode: ModeConvert})
	var oe *OptionError
	if !errors.As(err, &oe) {
		t.Fatalf("err = %v, want *OptionError", err)
	}
}

// Auto mode on a non-terminal destination resolves to strip.
func TestAutoResolvesToStripForWriters(t *testing.T) {
	var dst bytes.Buffer
	p, err := WrapWriter(&dst, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if p.Mode() != ModeStrip {
		t.Fatalf("Mode() = %v, want ModeStrip", p.Mode())
	}
	if p.IsInteractive() {
		t.Error("IsInteractive() = true for a buffer")
	}
	if _, err := p.WriteString("\x1b[31mplain\x1b[0m"); err != nil {
		t.Fatal(err)
	}
	if dst.String() != "plain" {
		t.Errorf("destination = %q, want %q", dst.String(), "plain")
	}
}

func TestProxyForwardsFlush(t *testing.T) {
	dst := &flushRecorder{}
	p, err := WrapWriter(dst, Options{Mode: ModePassthrough})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.WriteString("x"); err != nil {
		t.Fatal(err)
	}
	after := dst.flushes
	if after == 0 {
		t.Error("write did not flush a flushable destination")
	}
	if err := p.Flush(); err != nil {
		t.Fatal(err)
	}
	if dst.flushes != after+1 {
		t.Errorf("flushes = %d, want %d", dst.flushes, after+1)
	}
}

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeAuto, "auto"},
		{ModeConvert, "convert"},
		{ModeStrip, "strip"},
		{ModePassthrough, "passthrough"},
		{Mode(9), "mode(9)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
