package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errInputClosed = errors.New("input closed")

const clearSequence = "\033[H\033[2J"

// Console is the line-oriented terminal the menu talks through.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// NewConsole wraps in/out. clear enables screen clearing between screens and is
// only meant for real terminals.
func NewConsole(in io.Reader, out io.Writer, clear bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, clear: clear}
}

// Prompt prints label and reads one line without its line ending. ok is false
// once the input is exhausted.
func (c *Console) Prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Clear wipes the screen when attached to a terminal.
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, clearSequence)
	}
}
