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

import (
	"fmt"
	"time"
)

// statistics gathered over the course of a session.
type statistics struct {
	right int
	wrong int

	// questions asked so far. always right+wrong
	asked int

	// the number of askable lines in the script
	total int

	start time.Time
}

func newStatistics(total int) *statistics {
	return &statistics{
		total: total,
		start: time.Now(),
	}
}

// headnote returns the lines shown before the first question.
func (st *statistics) headnote(limit int) []string {
	n := st.total
	if limit > 0 && limit < n {
		n = limit
	}
	return []string{
		fmt.Sprintf("Starting %d tests of %d", n, st.total),
	}
}

// footnote returns the lines shown after the last question. the verdict
// counts are omitted when no questions were asked at all.
func (st *statistics) footnote() []string {
	lines := []string{
		fmt.Sprintf("Done %d tests of %d", st.asked, st.total),
	}

	if st.asked > 0 {
		lines = append(lines,
			fmt.Sprintf("Right answers: %d (%.0f%%)", st.right, 100*float64(st.right)/float64(st.asked)),
			fmt.Sprintf("Wrong answers: %d (%.0f%%)", st.wrong, 100*float64(st.wrong)/float64(st.asked)),
		)
	}

	lines = append(lines, fmt.Sprintf("Elapsed time: %s", time.Since(st.start).Round(time.Millisecond)))

	return lines
}
