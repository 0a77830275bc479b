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

import (
	"os"
	"strings"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/logger"
)

// error patterns returned by the loading functions
const (
	ScriptFileUnavailable = "script: %v"
	ScriptError           = "%s: %v"
)

// Source is an unparsed tort script, split into raw lines.
type Source struct {
	Name  string
	lines []string
}

// Load reads a script file from disk. The file is not parsed until Parse()
// is called.
func Load(filename string) (*Source, error) {
	buffer, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(ScriptFileUnavailable, err)
	}
	return NewSource(filename, string(buffer)), nil
}

// NewSource creates a Source from text already in memory. The name is only
// used to decorate errors and log entries.
func NewSource(name string, text string) *Source {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return &Source{
		Name:  name,
		lines: strings.Split(text, "\n"),
	}
}

// NumLines returns the number of raw lines in the source.
func (src *Source) NumLines() int {
	return len(src.lines)
}

// Parse parses every line of the source. Errors are line local: a defective
// line contributes an entry to the returned error list but parsing carries
// on with the next line. The returned lines are in script order and contain
// only the lines that parsed cleanly.
func (src *Source) Parse() ([]Line, []error) {
	lines := make([]Line, 0, len(src.lines))
	errs := make([]error, 0)

	for i, text := range src.lines {
		ln, err := ParseLine(i+1, text)
		if err != nil {
			errs = append(errs, curated.Errorf(ScriptError, src.Name, err))
			continue
		}

		// an interpreter directive on the first line parses as a public
		// comment but should not be shown to the user
		if pc, ok := ln.(PublicComment); ok && i == 0 && strings.HasPrefix(text, "#!/") {
			pc.Shebang = true
			ln = pc
		}

		lines = append(lines, ln)
	}

	logger.Logf("script", "%s: %d lines (%d defective)", src.Name, src.NumLines(), len(errs))

	return lines, errs
}
