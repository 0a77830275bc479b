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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tort-lang/tort/curated"
)

// error patterns returned by ParseLine(). use curated.Is() or curated.Has()
// to test for them.
const (
	UnterminatedOrthogram = "line %d: unterminated orthogram at column %d"
	NestedBracket         = "line %d: nested bracket at column %d"
	StrayBracket          = "line %d: unexpected ']' at column %d"
	MalformedTranslation  = "line %d: malformed translation (more than one '->')"
)

// the translation arrow and the comment sigils
const (
	arrow        = "->"
	commentSigil = "#"
	publicSigil  = "#!"
)

// ParseLine parses a single raw line of a tort script. number is the
// one-based line number and is recorded in the returned Line and in any
// error.
//
// ParseLine is a pure function of its arguments. in particular it never
// knows whether the line is the first line of a file, so it never sets the
// Shebang field of a PublicComment. that is the business of Source.Parse().
func ParseLine(number int, text string) (Line, error) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Blank{Number: number}, nil
	}

	if strings.HasPrefix(trimmed, publicSigil) {
		txt := strings.TrimLeftFunc(trimmed[len(publicSigil):], unicode.IsSpace)
		return PublicComment{Number: number, Text: txt}, nil
	}

	if strings.HasPrefix(trimmed, commentSigil) {
		txt := strings.TrimLeftFunc(trimmed[len(commentSigil):], unicode.IsSpace)
		return Comment{Number: number, Text: txt}, nil
	}

	body, hint := splitHint(text)

	idx, ct := findArrow(body)
	if ct > 1 {
		return nil, curated.Errorf(MalformedTranslation, number)
	}

	if ct == 1 {
		return Translation{
			Number: number,
			Source: strings.TrimSpace(body[:idx]),
			Target: strings.TrimSpace(body[idx+len(arrow):]),
			Hint:   hint,
		}, nil
	}

	// count the leading whitespace being trimmed so that scan errors point
	// at the correct column
	lead := 0
	for _, r := range body {
		if !unicode.IsSpace(r) {
			break
		}
		lead++
	}

	spans, err := scanSpans(number, strings.TrimSpace(body), lead+1)
	if err != nil {
		return nil, err
	}

	return Statement{Number: number, Spans: spans, Hint: hint}, nil
}

// splitHint separates a trailing hint from the body of a statement or
// translation line. the hint separator must appear outside any bracket and
// must be preceded by whitespace (any unicode space), otherwise the #! is
// part of the body.
func splitHint(text string) (string, string) {
	open := false
	for i, r := range text {
		switch r {
		case '[':
			open = true
		case ']':
			open = false
		case '#':
			if open || !strings.HasPrefix(text[i:], publicSigil) {
				continue
			}
			if prev, _ := utf8.DecodeLastRuneInString(text[:i]); unicode.IsSpace(prev) {
				return text[:i], strings.TrimSpace(text[i+len(publicSigil):])
			}
		}
	}
	return text, ""
}

// findArrow returns the byte index of the first translation arrow outside
// any bracket, and the total count of such arrows. an index of -1 means
// there are none.
func findArrow(text string) (int, int) {
	idx := -1
	ct := 0
	open := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			open = true
		case ']':
			open = false
		case arrow[0]:
			if !open && strings.HasPrefix(text[i:], arrow) {
				if idx == -1 {
					idx = i
				}
				ct++
				i += len(arrow) - 1
			}
		}
	}
	return idx, ct
}
