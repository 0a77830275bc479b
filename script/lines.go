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

package script

import "strings"

// Line is one parsed line of a tort script.
type Line interface {
	LineNumber() int
}

// Blank is a line with nothing on it (or only whitespace).
type Blank struct {
	Number int
}

// LineNumber implements the Line interface.
func (ln Blank) LineNumber() int {
	return ln.Number
}

// Comment is a line beginning with a single #. Comments are for the script
// author and are never shown to the user.
type Comment struct {
	Number int
	Text   string
}

// LineNumber implements the Line interface.
func (ln Comment) LineNumber() int {
	return ln.Number
}

// PublicComment is a line beginning with #!. Public comments are shown to
// the user when the quiz reaches them.
//
// The Shebang field is set by Source.Parse() when the public comment is the
// very first line of the file and looks like a unix interpreter directive.
// Shebang lines are never shown to the user.
type PublicComment struct {
	Number  int
	Text    string
	Shebang bool
}

// LineNumber implements the Line interface.
func (ln PublicComment) LineNumber() int {
	return ln.Number
}

// Translation is a line with a single -> arrow. The user is shown the source
// phrase and must supply the target phrase.
type Translation struct {
	Number int
	Source string
	Target string
	Hint   string
}

// LineNumber implements the Line interface.
func (ln Translation) LineNumber() int {
	return ln.Number
}

// Statement is any other non-empty line. It is a sequence of spans. A
// statement with no orthograms is a repeat exercise; a statement with at
// least one orthogram is a fill-the-gaps exercise.
type Statement struct {
	Number int
	Spans  []Span
	Hint   string
}

// LineNumber implements the Line interface.
func (ln Statement) LineNumber() int {
	return ln.Number
}

// HasOrthograms returns true if at least one span of the statement is
// something other than literal text.
func (ln Statement) HasOrthograms() bool {
	for _, spn := range ln.Spans {
		if _, ok := spn.(Literal); !ok {
			return true
		}
	}
	return false
}

// Masked returns the statement as it should be shown when asking the
// question.
func (ln Statement) Masked() string {
	s := strings.Builder{}
	for _, spn := range ln.Spans {
		s.WriteString(spn.Masked())
	}
	return s.String()
}

// Resolved returns the correct answer to the statement.
func (ln Statement) Resolved() string {
	s := strings.Builder{}
	for _, spn := range ln.Spans {
		s.WriteString(spn.Resolved())
	}
	return s.String()
}
