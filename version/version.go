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

// Package version records the version of the program.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Tort"

// if number is empty then the project was not built using the makefile.
var number string

// Version contains the version string, constructed during init().
//
// If the version string is "unreleased" then the project has been manually
// built from a git checkout. If the version string is "local" then there is
// no version number and no vcs information, which can happen when running
// with "go run .".
var Version string

// Revision contains the vcs revision. If the source has been modified but not
// committed then the Revision string will be suffixed with "+dirty".
var Revision string

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		Revision = "no revision information"
	} else {
		Revision = vcsRevision
		if vcsModified {
			Revision = fmt.Sprintf("%s+dirty", Revision)
		}
	}

	if number == "" {
		if vcs {
			Version = "unreleased"
		} else {
			Version = "local"
		}
	} else {
		Version = number
	}
}
