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

package terminal

import "strings"

// PromptType identifies the type of information in the prompt.
type PromptType int

// List of prompt types.
const (
	PromptTypeAnswer PromptType = iota
)

// Prompt specifies the prompt text shown to the user when the terminal is
// waiting for input.
type Prompt struct {
	Type    PromptType
	Content string
}

// String returns the prompt with a single space after the content, ready to
// be printed ahead of the cursor.
func (p Prompt) String() string {
	s := strings.TrimSpace(p.Content)
	if s == "" {
		return ""
	}
	return s + " "
}
