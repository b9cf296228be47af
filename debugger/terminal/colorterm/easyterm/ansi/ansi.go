// This file is part of SceneVM.
//
// SceneVM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SceneVM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SceneVM.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}
	PenStyles["bold"], _ = ColorBuild("", "bold", false)
	PenStyles["underline"], _ = ColorBuild("", "underline", false)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground color and attribute.
func ColorBuild(pen, attribute string, brightPen bool) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}

		var col int
		switch strings.ToUpper(pen) {
		case "BLACK":
			col = colBlack
		case "RED":
			col = colRed
		case "GREEN":
			col = colGreen
		case "YELLOW":
			col = colYellow
		case "BLUE":
			col = colBlue
		case "MAGENTA":
			col = colMagenta
		case "CYAN":
			col = colCyan
		case "WHITE":
			col = colWhite
		case "NORMAL":
			col = colDefault
		default:
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		switch strings.ToUpper(attribute) {
		case "BOLD":
			s.WriteString(fmt.Sprintf("%d", attrBold))
		case "UNDERLINE":
			s.WriteString(fmt.Sprintf("%d", attrUnderline))
		case "NORMAL":
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	s.WriteString("m")

	return s.String(), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"
