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

import "os"

// sentinal error returned by TermRead() implementations when the user has
// asked for the session to end (with ctrl-c for example)
const UserInterrupt = "user interrupt"

// ReadEvents is a collection of channels that needs to be monitored while
// the terminal is waiting for input.
type ReadEvents struct {
	// Signal is used to receive interrupt signals from the operating system
	Signal chan os.Signal

	// SignalHandler is called when a signal arrives on the Signal channel.
	// The returned error is passed to the TermRead() caller.
	SignalHandler func(sig os.Signal) error
}

// Input defines the operations required for user input.
type Input interface {
	// TermRead sends the prompt to the user and waits for a line of input.
	// The returned string is the user's answer without a trailing newline.
	//
	// Returns an error with the UserInterrupt sentinal when the user has
	// asked for the session to end.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive returns true if the input is coming from a real user
	// rather than a pipe or a file.
	IsInteractive() bool
}

// Output defines the operations required to show the quiz to the user.
type Output interface {
	TermPrintLine(sty Style, s string)
}

// Terminal defines the operations required by the quiz's interface with the
// user.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. must be called before any other operation.
	Initialise() error

	// Restore the terminal to its condition before Initialise().
	CleanUp()

	// Silence all terminal output except error messages.
	Silence(silenced bool)
}
