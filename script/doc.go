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

// Package script parses tort scripts. A script is a line based format: each
// line is independent of every other line and is one of a small number of
// kinds.
//
//	# a comment. never shown to the user
//	#! a public comment. shown to the user during the quiz
//	hello -> salut             a translation exercise
//	a p[ie]ce                  a statement with a gap orthogram
//	w[ee|e|ie]k                a statement with a choice orthogram
//
// Blank lines are ignored. A statement line with no orthograms at all is a
// "repeat" exercise where the expected answer is the statement itself.
//
// Orthograms are the bracketed parts of a statement. A gap orthogram hides
// its content behind a placeholder; a choice orthogram offers all its
// variants, of which the first is the correct one. A gap can carry a hint
// after a colon:
//
//	v[i:as in 'similar']sible
//
// and any statement or translation can carry a trailing hint:
//
//	mocassin -> мокасин  #! one 'c', one 's'
//
// Orthograms only have meaning in a statement. Brackets on a translation
// line are plain text and part of the expected answer.
//
// Parsing is pure. The same raw line always parses to the same result, and a
// malformed line produces an error that identifies the line and the defect
// without disturbing the parsing of any other line. Policy on what to do with
// a defective line (halt or skip) belongs to the caller.
package script
