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
	"strings"

	"github.com/tort-lang/tort/quiz/terminal"
	"github.com/tort-lang/tort/quiz/terminal/colorterm/easyterm/ansi"
)

// fall back rule width when the geometry is unknown
const ruleWidth = 80

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(sty terminal.Style, s string) {
	if ct.silenced && sty != terminal.StyleError {
		return
	}

	ct.TermPrint("\r%s", ansi.ClearLine)

	switch sty {
	case terminal.StyleQuestion:
		ct.TermPrint(ansi.Pens["yellow"])

	case terminal.StyleHint:
		ct.TermPrint(ansi.DimPens["yellow"])

	case terminal.StyleComment:
		ct.TermPrint(ansi.Pens["blue"])

	case terminal.StyleRight:
		ct.TermPrint(ansi.Pens["green"])

	case terminal.StyleWrong:
		ct.TermPrint(ansi.Pens["red"])

	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])

	case terminal.StyleRule:
		ct.TermPrint(ansi.DimPens["blue"])
		if s == "" {
			w := ct.Cols()
			if w <= 0 {
				w = ruleWidth
			}
			s = strings.Repeat("=", w)
		}

	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)
	ct.TermPrint("\n")
}
