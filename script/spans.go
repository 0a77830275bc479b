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

// Span is a fragment of a statement line. A statement is a sequence of
// spans, alternating between literal text and orthograms.
type Span interface {
	// Masked returns the span as it should be shown when asking the
	// question. The masked form must never give the answer away.
	Masked() string

	// Resolved returns the span as it appears in the correct answer.
	Resolved() string
}

// Literal is the text between orthograms. It appears verbatim in both the
// question and the answer.
type Literal struct {
	Text string
}

// Masked implements the Span interface.
func (spn Literal) Masked() string {
	return spn.Text
}

// Resolved implements the Span interface.
func (spn Literal) Resolved() string {
	return spn.Text
}

// Gap is an orthogram with a single hidden answer, optionally accompanied by
// a hint. Written [answer] or [answer:hint].
type Gap struct {
	Answer string
	Hint   string
}

// Masked implements the Span interface. The answer is replaced with an
// underscore; the hint, if there is one, is kept.
func (spn Gap) Masked() string {
	if spn.Hint != "" {
		return "_(" + spn.Hint + ")"
	}
	return "_"
}

// Resolved implements the Span interface.
func (spn Gap) Resolved() string {
	return spn.Answer
}

// Choice is an orthogram offering several variants. Written [a|b|c]. The
// first variant is the correct one; the variants are shown to the user in
// the order the script gives them.
type Choice struct {
	Variants []string
}

// Masked implements the Span interface.
func (spn Choice) Masked() string {
	return strings.Join(spn.Variants, "/")
}

// Resolved implements the Span interface.
func (spn Choice) Resolved() string {
	return spn.Variants[0]
}
