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

package quiz

import "strings"

// Verdict is the outcome of grading a single answer.
type Verdict int

// List of possible verdicts.
const (
	Wrong Verdict = iota
	Right
)

// Grade compares an answer with the expected text. Leading and trailing
// whitespace on both sides is ignored; everything between is compared
// exactly, case included.
func Grade(expected string, answer string) Verdict {
	if strings.TrimSpace(expected) == strings.TrimSpace(answer) {
		return Right
	}
	return Wrong
}

// markDiff returns a line of carets marking the positions at which the
// answer differs from the expected text. The empty string is returned when
// the difference cannot be localised, which happens when the answer matches
// the whole of the expected text but carries on beyond it.
func markDiff(expected string, answer string) string {
	e := []rune(strings.TrimSpace(expected))
	a := []rune(strings.TrimSpace(answer))

	marks := make([]rune, len(e))
	diff := false

	for i := range e {
		if i >= len(a) || a[i] != e[i] {
			marks[i] = '^'
			diff = true
		} else {
			marks[i] = ' '
		}
	}

	if !diff {
		return ""
	}

	return strings.TrimRight(string(marks), " ")
}
