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

package script_test

import (
	"reflect"
	"testing"

	"github.com/tort-lang/tort/curated"
	"github.com/tort-lang/tort/script"
	"github.com/tort-lang/tort/test"
)

func TestBlank(t *testing.T) {
	ln, err := script.ParseLine(1, "")
	test.ExpectedSuccess(t, err)
	_, ok := ln.(script.Blank)
	test.ExpectedSuccess(t, ok)

	ln, err = script.ParseLine(2, "   \t  ")
	test.ExpectedSuccess(t, err)
	_, ok = ln.(script.Blank)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, ln.LineNumber(), 2)
}

func TestComment(t *testing.T) {
	ln, err := script.ParseLine(1, "# just a note")
	test.ExpectedSuccess(t, err)

	com, ok := ln.(script.Comment)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, com.Text, "just a note")
}

func TestPublicComment(t *testing.T) {
	ln, err := script.ParseLine(1, "#! Good luck!")
	test.ExpectedSuccess(t, err)

	pub, ok := ln.(script.PublicComment)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, pub.Text, "Good luck!")

	// ParseLine on its own never marks a shebang
	test.ExpectedFailure(t, pub.Shebang)
}

func TestTranslation(t *testing.T) {
	ln, err := script.ParseLine(1, "hello -> salut")
	test.ExpectedSuccess(t, err)

	trn, ok := ln.(script.Translation)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, trn.Source, "hello")
	test.Equate(t, trn.Target, "salut")
	test.Equate(t, trn.Hint, "")
}

func TestTranslationWithHint(t *testing.T) {
	ln, err := script.ParseLine(1, "cat -> chat  #! the animal")
	test.ExpectedSuccess(t, err)

	trn, ok := ln.(script.Translation)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, trn.Source, "cat")
	test.Equate(t, trn.Target, "chat")
	test.Equate(t, trn.Hint, "the animal")
}

func TestMalformedTranslation(t *testing.T) {
	_, err := script.ParseLine(5, "a -> b -> c")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, script.MalformedTranslation))
	test.Equate(t, err.Error(), "line 5: malformed translation (more than one '->')")
}

func TestArrowInsideOrthogram(t *testing.T) {
	// an arrow inside brackets does not make the line a translation
	ln, err := script.ParseLine(1, "a [x->y] b")
	test.ExpectedSuccess(t, err)

	stm, ok := ln.(script.Statement)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, stm.Resolved(), "a x->y b")
}

func TestStatementWithHint(t *testing.T) {
	ln, err := script.ParseLine(1, "mo[c]assin  #! one 'c'")
	test.ExpectedSuccess(t, err)

	stm, ok := ln.(script.Statement)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, stm.Resolved(), "mocassin")
	test.Equate(t, stm.Hint, "one 'c'")
}

func TestHintSeparatorNeedsWhitespace(t *testing.T) {
	// a #! jammed against the preceding word is part of the body
	ln, err := script.ParseLine(1, "ab#!cd")
	test.ExpectedSuccess(t, err)

	stm, ok := ln.(script.Statement)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, stm.Resolved(), "ab#!cd")
	test.Equate(t, stm.Hint, "")
}

func TestHintSeparatorAfterUnicodeSpace(t *testing.T) {
	// any unicode space before the #! will do, not just ascii space and tab
	ln, err := script.ParseLine(1, "salut #! a greeting")
	test.ExpectedSuccess(t, err)

	stm, ok := ln.(script.Statement)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, stm.Resolved(), "salut")
	test.Equate(t, stm.Hint, "a greeting")

	ln, err = script.ParseLine(1, "cat -> chat #! the animal")
	test.ExpectedSuccess(t, err)

	trn, ok := ln.(script.Translation)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, trn.Target, "chat")
	test.Equate(t, trn.Hint, "the animal")
}

func TestHintSeparatorInsideOrthogram(t *testing.T) {
	ln, err := script.ParseLine(1, "a[b #!c]d")
	test.ExpectedSuccess(t, err)

	stm, ok := ln.(script.Statement)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, stm.Resolved(), "ab #!cd")
	test.Equate(t, stm.Hint, "")
}

func TestReparse(t *testing.T) {
	// parsing is a pure function of the line. parsing the same text twice
	// yields structurally equal results
	const stmText = "a p[ie]ce of c[a|e]ke  #! the idiom"

	a, err := script.ParseLine(9, stmText)
	test.ExpectedSuccess(t, err)
	b, err := script.ParseLine(9, stmText)
	test.ExpectedSuccess(t, err)

	sa, ok := a.(script.Statement)
	test.ExpectedSuccess(t, ok)
	sb, ok := b.(script.Statement)
	test.ExpectedSuccess(t, ok)

	test.ExpectedSuccess(t, reflect.DeepEqual(sa, sb))
	test.Equate(t, sa.Masked(), sb.Masked())
	test.Equate(t, sa.Resolved(), sb.Resolved())

	const trnText = "hello -> salut  #! informal"

	a, err = script.ParseLine(3, trnText)
	test.ExpectedSuccess(t, err)
	b, err = script.ParseLine(3, trnText)
	test.ExpectedSuccess(t, err)

	test.ExpectedSuccess(t, reflect.DeepEqual(a, b))
}

func TestBracketsInTranslation(t *testing.T) {
	// orthograms have no meaning on a translation line. the brackets are
	// plain text and part of the expected answer
	ln, err := script.ParseLine(1, "box -> [boîte]")
	test.ExpectedSuccess(t, err)

	trn, ok := ln.(script.Translation)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, trn.Target, "[boîte]")
}

func TestSourceParse(t *testing.T) {
	src := script.NewSource("test.tort", `#!/usr/bin/env tort
#! Spelling drill

# private note
a p[ie]ce
hello -> salut
`)

	// six raw lines plus the empty line after the final newline
	test.Equate(t, src.NumLines(), 7)

	lines, errs := src.Parse()
	test.Equate(t, len(errs), 0)
	test.Equate(t, len(lines), 7)

	pub, ok := lines[0].(script.PublicComment)
	test.ExpectedSuccess(t, ok)
	test.ExpectedSuccess(t, pub.Shebang)

	pub, ok = lines[1].(script.PublicComment)
	test.ExpectedSuccess(t, ok)
	test.ExpectedFailure(t, pub.Shebang)
	test.Equate(t, pub.Text, "Spelling drill")

	_, ok = lines[4].(script.Statement)
	test.ExpectedSuccess(t, ok)

	trn, ok := lines[5].(script.Translation)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, trn.LineNumber(), 6)
}

func TestSourceParseErrorsAreLineLocal(t *testing.T) {
	src := script.NewSource("bad.tort", "good l[i]ne\nbad l[ine\nanother good line")

	lines, errs := src.Parse()

	// the defective line is reported but does not stop the lines around it
	// from parsing
	test.Equate(t, len(lines), 2)
	test.Equate(t, len(errs), 1)

	// errors are decorated with the name of the source
	test.ExpectedSuccess(t, curated.Is(errs[0], script.ScriptError))
	test.ExpectedSuccess(t, curated.Has(errs[0], script.UnterminatedOrthogram))
	test.Equate(t, errs[0].Error(), "bad.tort: line 2: unterminated orthogram at column 6")

	test.Equate(t, lines[0].LineNumber(), 1)
	test.Equate(t, lines[1].LineNumber(), 3)
}
