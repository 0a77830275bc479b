// This file is part of Tort.
//
// Tort is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tort is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tort.  If not, see <https://www.gnu.org/licenses/>.

// Package plainterm implements the Terminal interface of the quiz/terminal
// package. It is the default, lowest common denominator terminal and is
// suitable for use when input or output has been redirected.
package plainterm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tort-lang/tort/quiz/terminal"

	"golang.org/x/term"
)

// width of the horizontal rule when the caller leaves the choice to us
const ruleWidth = 80

// PlainTerminal is the default, most basic terminal interface. It is provided
// as a fall back in case the colour terminal is unsuitable.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	silenced bool

	// true if the input is from a real terminal rather than a redirection
	realInput bool

	buffer []byte
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	pt.buffer = make([]byte, 255)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(sty terminal.Style, s string) {
	if pt.silenced && sty != terminal.StyleError {
		return
	}

	switch sty {
	case terminal.StyleError:
		s = fmt.Sprintf("* %s", s)
	case terminal.StyleRule:
		if s == "" {
			s = strings.Repeat("=", ruleWidth)
		}
	}

	pt.output.Write([]byte(s))
	pt.output.Write([]byte("\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if pt.silenced {
		return "", nil
	}

	pt.output.Write([]byte(prompt.String()))

	n, err := pt.input.Read(pt.buffer)
	if err != nil {
		return "", err
	}

	// service any signal that arrived while we were waiting for input
	if events != nil {
		select {
		case sig := <-events.Signal:
			return "", events.SignalHandler(sig)
		default:
		}
	}

	return strings.TrimRight(string(pt.buffer[:n]), "\r\n"), nil
}
