package ui

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// RawInput switches f to raw mode when it is a terminal, so single key
// presses arrive without Enter. restore must be called before exit. When f
// is not a terminal restore is a no-op and raw is false.
func RawInput(f *os.File) (restore func(), raw bool, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false, err
	}
	return func() { _ = term.Restore(fd, state) }, true, nil
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// CRLF translates "\n" to "\r\n", which a raw terminal needs to return the
// cursor to the first column.
func CRLF(w io.Writer) io.Writer {
	return crlfWriter{w: w}
}

type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
