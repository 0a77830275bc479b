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
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/logger"
	"github.com/tort-lang/tort/quiz/terminal"
	"github.com/tort-lang/tort/script"
)

// the names of the exercises as shown to the user
const (
	exerciseRepeat    = "Repeat"
	exerciseFill      = "Fill gaps"
	exerciseTranslate = "Translate"
)

// the prompt shown when waiting for an answer
const answerPrompt = "Your answer:"

// Options control the details of a quiz session.
type Options struct {
	// ask the questions in a random order. shuffling strips the questions of
	// their surrounding context so public comments are not shown during a
	// shuffled session
	Shuffle bool

	// end the session after this many questions. zero means no limit
	Limit int

	// seed for the shuffle. zero means seed from the clock
	ShuffleSeed int64
}

// Session is a single run of a quiz over a parsed script.
type Session struct {
	term   terminal.Terminal
	events *terminal.ReadEvents
	lines  []script.Line
	opts   Options

	stats *statistics
}

// NewSession is the preferred method of initialisation of the Session type.
// The events argument may be nil if there is nothing to monitor during
// input.
func NewSession(term terminal.Terminal, events *terminal.ReadEvents, lines []script.Line, opts Options) *Session {
	return &Session{
		term:   term,
		events: events,
		lines:  lines,
		opts:   opts,
	}
}

// askable returns true for the lines that produce a question.
func askable(ln script.Line) bool {
	switch ln.(type) {
	case script.Statement:
		return true
	case script.Translation:
		return true
	}
	return false
}

// Run works through the script from beginning to end, or until the question
// limit is reached or the user interrupts. The closing statistics are shown
// however the session ends.
func (s *Session) Run() error {
	// the preamble is the run of public comments at the very top of the
	// script. it is shown before the opening statistics rather than between
	// them and the first question
	preamble := make([]string, 0)
	idx := 0
	for idx < len(s.lines) {
		pc, ok := s.lines[idx].(script.PublicComment)
		if !ok {
			break
		}
		if !pc.Shebang {
			preamble = append(preamble, pc.Text)
		}
		idx++
	}
	body := s.lines[idx:]

	total := 0
	for _, ln := range body {
		if askable(ln) {
			total++
		}
	}
	s.stats = newStatistics(total)

	if s.opts.Shuffle {
		shuffled := make([]script.Line, 0, total)
		for _, ln := range body {
			if askable(ln) {
				shuffled = append(shuffled, ln)
			}
		}

		seed := s.opts.ShuffleSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rnd := rand.New(rand.NewSource(seed))
		rnd.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		body = shuffled
		logger.Logf("quiz", "shuffled %d questions (seed %d)", len(shuffled), seed)
	}

	if len(preamble) > 0 {
		s.term.TermPrintLine(terminal.StyleRule, "")
		for _, txt := range preamble {
			s.term.TermPrintLine(terminal.StyleComment, txt)
		}
	}

	s.term.TermPrintLine(terminal.StyleRule, "")
	for _, txt := range s.stats.headnote(s.opts.Limit) {
		s.term.TermPrintLine(terminal.StyleFeedback, txt)
	}
	s.term.TermPrintLine(terminal.StyleRule, "")

	done := false
	for _, ln := range body {
		if done {
			break
		}

		var err error

		switch ln := ln.(type) {
		case script.PublicComment:
			if !ln.Shebang {
				s.term.TermPrintLine(terminal.StyleComment, ln.Text)
			}

		case script.Statement:
			exercise := exerciseRepeat
			if ln.HasOrthograms() {
				exercise = exerciseFill
			}
			done, err = s.ask(exercise, ln.Masked(), ln.Resolved(), ln.Hint)

		case script.Translation:
			done, err = s.ask(exerciseTranslate, ln.Source, ln.Target, ln.Hint)
		}

		if err != nil {
			return err
		}

		if s.opts.Limit > 0 && s.stats.asked >= s.opts.Limit {
			done = true
		}
	}

	s.term.TermPrintLine(terminal.StyleRule, "")
	for _, txt := range s.stats.footnote() {
		s.term.TermPrintLine(terminal.StyleFeedback, txt)
	}
	s.term.TermPrintLine(terminal.StyleRule, "")

	return nil
}

// ask puts a single question to the user and grades the reply. the returned
// bool is true when the session should end.
func (s *Session) ask(exercise string, question string, expected string, hint string) (bool, error) {
	s.term.TermPrintLine(terminal.StyleQuestion, fmt.Sprintf("%s: %s", exercise, question))
	if hint != "" {
		s.term.TermPrintLine(terminal.StyleHint, fmt.Sprintf("(%s)", hint))
	}

	answer, err := s.term.TermRead(
		terminal.Prompt{Type: terminal.PromptTypeAnswer, Content: answerPrompt},
		s.events)

	if err != nil {
		// an interrupt or the end of a redirected input stream ends the
		// session normally. the questions asked so far still count
		if curated.Has(err, terminal.UserInterrupt) || errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}

	s.stats.asked++

	if Grade(expected, answer) == Right {
		s.stats.right++
		s.term.TermPrintLine(terminal.StyleRight, "Right")
		return false, nil
	}

	s.stats.wrong++
	s.term.TermPrintLine(terminal.StyleWrong, "Wrong")

	// show the correct answer, with the differing characters marked on the
	// line below
	s.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("right: %s", strings.TrimSpace(expected)))
	if marks := markDiff(expected, answer); marks != "" {
		s.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("       %s", marks))
	}

	return false, nil
}
