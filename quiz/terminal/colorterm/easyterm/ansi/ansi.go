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

// Package ansi defines ANSI control codes for styling text output on a
// compatible terminal.
package ansi

import (
	"fmt"
	"strings"
)

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// Pens is the map of regular pen colors.
var Pens map[string]string

// DimPens is the map of dim pen colors.
var DimPens map[string]string

// PenStyles is the map of pen styles.
var PenStyles map[string]string

const (
	colorReset = iota
	colorBold
	colorDim
	colorItalic
	colorUnderline
)

var colors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ColorBuild creates the CSI sequence for the pen of the given description.
// Empty arguments are allowed and skipped over.
func ColorBuild(color string, style string, bright bool) string {
	s := strings.Builder{}
	s.WriteString("\033[")

	attr := make([]string, 0, 3)

	if style != "" {
		switch style {
		case "bold":
			attr = append(attr, fmt.Sprintf("%d", colorBold))
		case "dim":
			attr = append(attr, fmt.Sprintf("%d", colorDim))
		case "italic":
			attr = append(attr, fmt.Sprintf("%d", colorItalic))
		case "underline":
			attr = append(attr, fmt.Sprintf("%d", colorUnderline))
		}
	}

	if color != "" {
		if num, ok := colors[color]; ok {
			base := 30
			if bright {
				base = 90
			}
			attr = append(attr, fmt.Sprintf("%d", base+num))
		}
	}

	s.WriteString(strings.Join(attr, ";"))
	s.WriteString("m")

	return s.String()
}

func init() {
	NormalPen = "\033[0m"

	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for color := range colors {
		Pens[color] = ColorBuild(color, "", true)
		DimPens[color] = ColorBuild(color, "dim", false)
	}

	for _, style := range []string{"bold", "dim", "italic", "underline"} {
		PenStyles[style] = ColorBuild("", style, false)
	}
}
