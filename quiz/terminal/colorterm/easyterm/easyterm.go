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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some basic terminal functionality, in particular the ability to switch
// between canonical and raw input modes, and keeps track of the terminal's
// geometry for as long as the terminal is initialised.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for the easyterm package. Use Initialise()
// before calling any other function.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	geometryMux sync.Mutex
	geometry    unix.Winsize

	winchSig chan os.Signal
	winchEnd chan bool
}

// Initialise the fields of the Terminal struct. The attributes of the input
// file at this point are taken to be the canonical attributes, to be restored
// by CleanUp().
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	pt.input = inputFile
	pt.output = outputFile

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return err
	}

	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	// the terminal can be resized at any time. keep the recorded geometry
	// up to date until CleanUp() is called
	pt.UpdateGeometry()
	pt.winchSig = make(chan os.Signal, 1)
	pt.winchEnd = make(chan bool)
	signal.Notify(pt.winchSig, syscall.SIGWINCH)
	go func() {
		for {
			select {
			case <-pt.winchSig:
				pt.UpdateGeometry()
			case <-pt.winchEnd:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores the terminal to its initial state.
func (pt *Terminal) CleanUp() {
	signal.Stop(pt.winchSig)
	pt.winchEnd <- true
	pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode. Keypresses are received immediately,
// without waiting for a carriage return, and are not echoed.
func (pt *Terminal) RawMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// Flush any unprocessed input and unwritten output.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH)
}

// UpdateGeometry gets the current dimensions (in characters and lines) of
// the output window.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return err
	}

	pt.geometryMux.Lock()
	pt.geometry = *ws
	pt.geometryMux.Unlock()

	return nil
}

// Cols returns the width of the terminal in characters.
func (pt *Terminal) Cols() int {
	pt.geometryMux.Lock()
	defer pt.geometryMux.Unlock()
	return int(pt.geometry.Col)
}

// TermPrint writes formatted output to the terminal.
func (pt *Terminal) TermPrint(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
}
