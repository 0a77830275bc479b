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

package quiz_test

import (
	"strings"
	"testing"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/quiz"
	"github.com/tort-lang/tort/quiz/terminal"
	"github.com/tort-lang/tort/script"
	"github.com/tort-lang/tort/test"
)

// mockTerm implements the terminal.Terminal interface. answers are served
// in order; when they run out every further read looks like a user
// interrupt.
type mockTerm struct {
	answers []string
	idx     int

	lines  []string
	styles []terminal.Style
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	trm.styles = append(trm.styles, sty)
	trm.lines = append(trm.lines, s)
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if trm.idx >= len(trm.answers) {
		return "", curated.Errorf(terminal.UserInterrupt)
	}
	s := trm.answers[trm.idx]
	trm.idx++
	return s, nil
}

// seen returns true if a line with the given style and exact content was
// printed at some point.
func (trm *mockTerm) seen(sty terminal.Style, s string) bool {
	for i := range trm.lines {
		if trm.styles[i] == sty && trm.lines[i] == s {
			return true
		}
	}
	return false
}

// runSession parses the script text and runs a full session over it.
func runSession(t *testing.T, scriptText string, answers []string, opts quiz.Options) *mockTerm {
	t.Helper()

	lines, errs := script.NewSource("test.tort", scriptText).Parse()
	test.Equate(t, len(errs), 0)

	trm := &mockTerm{answers: answers}
	err := quiz.NewSession(trm, nil, lines, opts).Run()
	test.ExpectedSuccess(t, err)

	return trm
}

func TestSession(t *testing.T) {
	trm := runSession(t, `#!/usr/bin/env tort
#! Spelling drill

# private note
a p[ie]ce
hello -> salut
`,
		[]string{"a piece", "bonjour"}, quiz.Options{})

	// the first public comment is shown. the shebang and the private
	// comment are not
	test.ExpectedSuccess(t, trm.seen(terminal.StyleComment, "Spelling drill"))
	test.ExpectedFailure(t, trm.seen(terminal.StyleComment, "/usr/bin/env tort"))
	test.ExpectedFailure(t, trm.seen(terminal.StyleComment, "private note"))

	// the gap is masked in the question
	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Fill gaps: a p_ce"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Translate: hello"))

	// one right answer, one wrong. the wrong one is corrected with the
	// difference marked underneath
	test.ExpectedSuccess(t, trm.seen(terminal.StyleRight, "Right"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleWrong, "Wrong"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "right: salut"))

	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Starting 2 tests of 2"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Done 2 tests of 2"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Right answers: 1 (50%)"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Wrong answers: 1 (50%)"))
}

func TestDiffMarks(t *testing.T) {
	trm := runSession(t, "week\n", []string{"weak"}, quiz.Options{})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Repeat: week"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "right: week"))

	// the marks line up under the "right: " prefix
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "         ^"))
}

func TestHints(t *testing.T) {
	trm := runSession(t, "v[i:as in 'similar']sible\ncat -> chat  #! the animal\n",
		[]string{"visible", "chat"}, quiz.Options{})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Fill gaps: v_(as in 'similar')sible"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleHint, "(the animal)"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Right answers: 2 (100%)"))
}

func TestChoiceQuestion(t *testing.T) {
	trm := runSession(t, "w[ee|e|ie]k\n", []string{"week"}, quiz.Options{})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Fill gaps: wee/e/iek"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleRight, "Right"))
}

func TestInterrupt(t *testing.T) {
	// only one answer for three questions. the session ends at the
	// interrupt but the closing statistics are still shown
	trm := runSession(t, "one\ntwo\nthree\n", []string{"one"}, quiz.Options{})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Starting 3 tests of 3"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Done 1 tests of 3"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Right answers: 1 (100%)"))
}

func TestLimit(t *testing.T) {
	trm := runSession(t, "one\ntwo\nthree\n", []string{"one", "two", "three"},
		quiz.Options{Limit: 2})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Starting 2 tests of 3"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Done 2 tests of 3"))
	test.ExpectedFailure(t, trm.seen(terminal.StyleQuestion, "Repeat: three"))
}

// questions extracts the StyleQuestion lines, in the order they were shown.
func (trm *mockTerm) questions() []string {
	q := make([]string, 0)
	for i := range trm.lines {
		if trm.styles[i] == terminal.StyleQuestion {
			q = append(q, trm.lines[i])
		}
	}
	return q
}

func TestShuffle(t *testing.T) {
	const scriptText = `#! preamble
one
# private
two -> deux
three
`

	// the answers are deliberately wrong. the test is about the order of
	// the questions, not the grading
	answers := []string{"x", "x", "x"}
	opts := quiz.Options{Shuffle: true, ShuffleSeed: 42}

	trm := runSession(t, scriptText, answers, opts)

	// shuffling strips the questions of their surrounding context so only
	// the preamble survives
	test.ExpectedSuccess(t, trm.seen(terminal.StyleComment, "preamble"))
	test.ExpectedFailure(t, trm.seen(terminal.StyleComment, "private"))

	// every question is asked, whatever the order
	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Repeat: one"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Translate: two"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleQuestion, "Repeat: three"))

	// the same seed always produces the same order
	repeat := runSession(t, scriptText, answers, opts)

	q := trm.questions()
	r := repeat.questions()
	test.Equate(t, len(q), 3)
	test.Equate(t, len(r), 3)
	for i := range q {
		test.Equate(t, q[i], r[i])
	}
}

func TestEmptyScript(t *testing.T) {
	trm := runSession(t, "# nothing to ask\n", []string{}, quiz.Options{})

	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Starting 0 tests of 0"))
	test.ExpectedSuccess(t, trm.seen(terminal.StyleFeedback, "Done 0 tests of 0"))

	// no verdict percentages when nothing was asked
	for _, l := range trm.lines {
		test.ExpectedFailure(t, strings.HasPrefix(l, "Right answers"))
	}
}
