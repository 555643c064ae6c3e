// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Style holds the display settings chosen once at startup.
type Style struct {
	// Color enables ANSI colours. fatih/color still disables them when the
	// output is not a terminal.
	Color bool
	// Lowercase prints hex digits in lower case.
	Lowercase bool
	// Omit0x drops the 0x prefix from hex values.
	Omit0x bool
	// Verbose enables Debug output.
	Verbose bool
	// NoNewline ends Result output without a line break.
	NoNewline bool
}

// DefaultStyle is coloured upper-case hex with a 0x prefix.
var DefaultStyle = Style{Color: true}

// Printer writes styled messages. It is not safe for concurrent use.
type Printer struct {
	out   io.Writer
	style Style

	dim    *color.Color
	green  *color.Color
	cyan   *color.Color
	yellow *color.Color
	red    *color.Color
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, style Style) *Printer {
	p := &Printer{
		out:    out,
		style:  style,
		dim:    color.New(color.Faint),
		green:  color.New(color.FgGreen),
		cyan:   color.New(color.FgCyan),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
	if !style.Color {
		for _, c := range []*color.Color{p.dim, p.green, p.cyan, p.yellow, p.red} {
			c.DisableColor()
		}
	}
	return p
}

// Style returns the display settings.
func (p *Printer) Style() Style {
	return p.style
}

// Hex formats b according to the style, e.g. 0x1A2B.
func (p *Printer) Hex(b []byte) string {
	s := hex.EncodeToString(b)
	if !p.style.Lowercase {
		s = strings.ToUpper(s)
	}
	if p.style.Omit0x {
		return s
	}
	return "0x" + s
}

// Info prints an informational message with a cyan arrow.
func (p *Printer) Info(format string, args ...interface{}) {
	p.line(p.cyan, "→", format, args...)
}

// Success prints a success message with a green checkmark.
func (p *Printer) Success(format string, args ...interface{}) {
	p.line(p.green, "✔", format, args...)
}

// Fail prints an error message with a red X.
func (p *Printer) Fail(format string, args ...interface{}) {
	p.line(p.red, "✘", format, args...)
}

// Warn prints a warning message with a yellow circle.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line(p.yellow, "○", format, args...)
}

// DimMsg prints a dimmed message.
func (p *Printer) DimMsg(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(p.out, "  %s\n", p.dim.Sprint(msg))
}

// Debug prints a dimmed message in verbose mode only.
func (p *Printer) Debug(format string, args ...interface{}) {
	if p.style.Verbose {
		p.DimMsg(format, args...)
	}
}

// Result prints a bare value, such as a digest, for scripts to consume.
func (p *Printer) Result(s string) {
	if p.style.NoNewline {
		_, _ = io.WriteString(p.out, s)
		return
	}
	_, _ = fmt.Fprintln(p.out, s)
}

// BlankLine prints a blank line.
func (p *Printer) BlankLine() {
	_, _ = fmt.Fprintln(p.out, "")
}

func (p *Printer) line(c *color.Color, symbol, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(p.out, "  %s %s\n", c.Sprint(symbol), msg)
}
