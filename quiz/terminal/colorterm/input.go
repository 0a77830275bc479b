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

package colorterm

import (
	"unicode"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/quiz/terminal"
	"github.com/tort-lang/tort/quiz/terminal/colorterm/easyterm"
	"github.com/tort-lang/tort/quiz/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface. The terminal is placed
// into raw mode for the duration of the read, allowing individual keypresses
// to be handled as they happen.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	ct.TermPrint("\r%s%s", ansi.ClearLine, ansi.PenStyles["bold"])
	ct.TermPrint(prompt.String())
	ct.TermPrint(ansi.NormalPen)

	input := make([]rune, 0, 64)

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			ct.TermPrint("\r\n")
			return "", err
		}

		// service any signal that arrived while we were waiting for the
		// keypress
		if events != nil {
			select {
			case sig := <-events.Signal:
				ct.TermPrint("\r\n")
				return "", events.SignalHandler(sig)
			default:
			}
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\r\n")
			return string(input), nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
				ct.TermPrint("\b \b")
			}

		case easyterm.KeyEsc, easyterm.KeyTab:
			// not used

		default:
			if unicode.IsPrint(r) {
				input = append(input, r)
				ct.TermPrint("%c", r)
			}
		}
	}
}
