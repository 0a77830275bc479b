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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() functions.
//
// The point of the package is the handling of "modes". In this context, a
// mode is a special command line argument that puts the program into a
// different mode of operation, each mode with its own flags and expected
// arguments; think of the go command's build, test, doc, etc. Modes are
// registered with the AddSubModes() function:
//
//	md.AddSubModes("run", "check")
//
// Subsequent calls to Parse() will process flags in the normal way but will
// also check to see if the first argument after the flags is one of these
// modes. The first registered sub-mode is the default, used when no mode is
// given on the command line. Mode comparisons are case insensitive.
//
// Having decided on a mode with Mode(), call NewMode(), add the mode's flags
// and call Parse() again to process the remaining arguments:
//
//	md.NewMode()
//	random := md.AddBool("random", false, "shuffle the quiz")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	case modalflag.ParseHelp:
//		return
//	}
//
// Modes can be chained as deep as required, although this program only ever
// needs one level.
package modalflag
