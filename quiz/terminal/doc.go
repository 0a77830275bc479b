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

// Package terminal defines the operations required for the quiz's user
// interface. The quiz engine knows nothing about how the user is attached to
// the program; it talks to an implementation of the Terminal interface and
// leaves presentation decisions to it.
//
// Two implementations are provided. The plainterm package is the lowest
// common denominator and is suitable when input or output has been
// redirected. The colorterm package adds colour and line editing and is the
// preferred implementation when the program is attached to a real terminal.
//
// Lines sent to the terminal are decorated with a Style. An implementation
// is free to ignore a style but must honour the convention that StyleError
// output is never silenced.
package terminal
