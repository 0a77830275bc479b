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

// Package quiz runs an orthography quiz over a parsed script. The engine
// walks the lines of the script in order (or shuffled), presents an exercise
// for every statement and translation, grades the answer, and closes with
// the session statistics.
//
// The engine is indifferent to how the user is attached to the program. All
// interaction goes through the interfaces of the quiz/terminal package,
// which also makes the engine easy to test.
//
// A session ends in one of three ways: the script runs out of lines, the
// question limit is reached, or the user interrupts. All three are normal
// endings and the closing statistics are shown in every case.
package quiz
