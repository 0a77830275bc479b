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

package terminal

// Style is used to hint at what the terminal should do with a line of
// output. The terminal need not do anything special with the hint; plainer
// terminals will ignore most of them.
type Style int

// List of terminal styles.
const (
	// a question put to the user
	StyleQuestion Style = iota

	// a hint accompanying a question
	StyleHint

	// a public comment from the script
	StyleComment

	// the verdict on an answer
	StyleRight
	StyleWrong

	// supplementary information. the correct answer after a wrong one, the
	// closing statistics, etc.
	StyleFeedback

	// a horizontal rule. when the line content is empty the terminal draws
	// the rule at a width of its own choosing
	StyleRule

	// an error message. error output survives Silence()
	StyleError
)
