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

// Package colorterm implements the Terminal interface of the quiz/terminal
// package. It is a convenient and colourful alternative to the plain
// terminal, for use when the program is attached to a real terminal.
package colorterm

import (
	"bufio"
	"io"
	"os"

	"github.com/tort-lang/tort/quiz/terminal/colorterm/easyterm"
)

// ColorTerminal implements the quiz's Terminal interface with support for
// ANSI colour and cursor codes.
type ColorTerminal struct {
	easyterm.Terminal

	reader   runeReader
	silenced bool
}

// runeReader wraps the raw input stream so that multi-byte input is read a
// rune at a time.
type runeReader struct {
	*bufio.Reader
}

func initRuneReader(input io.Reader) runeReader {
	return runeReader{Reader: bufio.NewReader(input)}
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.Terminal.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.reader = initRuneReader(os.Stdin)
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.Terminal.CleanUp()
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}
