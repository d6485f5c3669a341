// Package prompt provides synchronous yes/no confirmation for destructive commands.
package prompt

import (
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question and blocks until answered.
type Confirmer interface {
	Confirm(question string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) bool { return f(question) }

// AlwaysYes confirms without asking. Used for explicit command-line acknowledgment.
var AlwaysYes Confirmer = ConfirmFunc(func(string) bool { return true })

// LineReader returns the next line of input without its line terminator.
type LineReader func() (string, error)

// LineConfirmer asks on out and reads the answer as one line.
type LineConfirmer struct {
	read LineReader
	out  io.Writer
}

// NewLineConfirmer creates a confirmer that prints to out and reads with read.
// read must draw from the same source the caller reads commands from.
func NewLineConfirmer(read LineReader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{read: read, out: out}
}

// Confirm implements Confirmer. Only "y" or "yes" (any case) confirms;
// end of input and read errors decline.
func (c *LineConfirmer) Confirm(question string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", question)
	line, err := c.read()
	if err != nil {
		fmt.Fprintln(c.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
