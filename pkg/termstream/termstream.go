// Package termstream wraps an output stream and translates ANSI escape
// sequences embedded in written text: converting them into native console
// API calls on platforms whose terminal does not interpret ANSI itself,
// stripping them when the destination is not a terminal, or passing them
// through untouched.
//
// Scope is SGR styling (8/16 colors, brightness), simple cursor movement
// and erase sequences, and OSC title setting. Malformed or unterminated
// sequences are never fatal: they degrade to plain text. A sequence split
// across two Write calls is not reassembled.
//
// Wrapped streams provide no internal synchronization; the destination's
// own thread-safety, or lack of it, is inherited.
package termstream

import (
	"io"
	"os"
)

// NewStdout wraps standard output.
func NewStdout(opt Options) (*Proxy, error) {
	return Wrap(os.Stdout, opt)
}

// NewStderr wraps standard error. Stdout and stderr proxies keep
// independent attribute state.
func NewStderr(opt Options) (*Proxy, error) {
	return Wrap(os.Stderr, opt)
}

// Wrap wraps a file destination. With Options.Mode == ModeAuto the mode is
// resolved once, here: conversion only on a platform without native ANSI
// support, with a working console API, for an interactive destination;
// otherwise stripping for non-interactive destinations and passthrough for
// interactive ones.
func Wrap(f *os.File, opt Options) (*Proxy, error) {
	mode, api, dev, err := resolveMode(opt, f)
	if err != nil {
		return nil, err
	}
	return &Proxy{
		file: f,
		tr:   newTranslator(f, mode, api, dev, opt),
	}, nil
}

// WrapWriter wraps a generic destination such as a buffer or a pipe.
// ModeAuto resolves as non-interactive (strip); ModeConvert still targets
// the process console's screen buffer for attribute effects while plain
// text goes to w.
func WrapWriter(w io.Writer, opt Options) (*Proxy, error) {
	mode, api, dev, err := resolveMode(opt, nil)
	if err != nil {
		return nil, err
	}
	return &Proxy{
		tr: newTranslator(w, mode, api, dev, opt),
	}, nil
}
