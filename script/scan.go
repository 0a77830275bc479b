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

	"github.com/tort-lang/tort/curated"
)

// scanSpans breaks the body of a statement into spans. the col argument is
// the one-based column of the first character of text in the original line,
// so that errors point at the right place even when leading whitespace has
// been trimmed away.
//
// brackets do not nest and every opened bracket must be closed before the
// end of the line. columns are counted in runes.
func scanSpans(number int, text string, col int) ([]Span, error) {
	spans := make([]Span, 0, 3)

	lit := strings.Builder{}
	inside := strings.Builder{}

	openCol := 0
	open := false

	for _, r := range text {
		if open {
			switch r {
			case '[':
				return nil, curated.Errorf(NestedBracket, number, col)
			case ']':
				spans = append(spans, orthogram(inside.String()))
				open = false
			default:
				inside.WriteRune(r)
			}
		} else {
			switch r {
			case '[':
				if lit.Len() > 0 {
					spans = append(spans, Literal{Text: lit.String()})
					lit.Reset()
				}
				inside.Reset()
				openCol = col
				open = true
			case ']':
				return nil, curated.Errorf(StrayBracket, number, col)
			default:
				lit.WriteRune(r)
			}
		}
		col++
	}

	if open {
		return nil, curated.Errorf(UnterminatedOrthogram, number, openCol)
	}

	if lit.Len() > 0 {
		spans = append(spans, Literal{Text: lit.String()})
	}

	return spans, nil
}

// orthogram decides what the content of a bracket pair means. a pipe
// anywhere makes it a choice (colons are then plain characters); otherwise
// it is a gap, possibly with a hint after the first colon.
func orthogram(content string) Span {
	if strings.ContainsRune(content, '|') {
		return Choice{Variants: strings.Split(content, "|")}
	}

	if idx := strings.IndexRune(content, ':'); idx >= 0 {
		return Gap{
			Answer: content[:idx],
			Hint:   strings.TrimSpace(content[idx+1:]),
		}
	}

	return Gap{Answer: content}
}
