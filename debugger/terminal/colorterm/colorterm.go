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

// Package colorterm implements the Terminal interface for the debugger. It
// supports color output, line editing and a history of commands.
package colorterm

import (
	"os"
	"unicode"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/debugger/terminal"
	"github.com/scenevm/scenevm/debugger/terminal/colorterm/easyterm"
	"github.com/scenevm/scenevm/debugger/terminal/colorterm/easyterm/ansi"
)

// maximum number of entries in the command history
const maxHistory = 100

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	history  []string
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdout)
	if err != nil {
		return err
	}
	ct.history = ct.history[:0]
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// the input has already been echoed as it was typed
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(ansi.DimPens["white"])
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(ansi.DimPens["yellow"])
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(ansi.Pens["red"])
		ct.EasyTerm.TermPrint("* ")
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
	ct.EasyTerm.TermPrint("\n")
}

// TermRead implements the terminal.Input interface. The terminal is in
// cbreak mode for the duration of the read.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if err := ct.CBreakMode(); err != nil {
		return "", err
	}
	defer ct.CanonicalMode()

	p := ansi.PenStyles["bold"] + prompt.String() + ansi.NormalPen
	ct.EasyTerm.TermPrint(p)

	var line []rune

	// position in history. len(history) is the line being edited
	hist := len(ct.history)
	redraw := func() {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(p)
		ct.EasyTerm.TermPrint(string(line))
	}

	for {
		k, err := ct.ReadKey()
		if err != nil {
			return "", err
		}

		switch k {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			if len(line) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.EasyTerm.TermPrint("\n")
			s := string(line)
			if s != "" {
				ct.history = append(ct.history, s)
				if len(ct.history) > maxHistory {
					ct.history = ct.history[1:]
				}
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				ct.EasyTerm.TermPrint("\b \b")
			}

		case easyterm.KeyKillLine:
			line = line[:0]
			redraw()

		case easyterm.KeyEsc:
			if k, err = ct.ReadKey(); err != nil {
				return "", err
			}
			if k != easyterm.EscCursor {
				break
			}
			if k, err = ct.ReadKey(); err != nil {
				return "", err
			}
			switch k {
			case easyterm.CursorUp:
				if hist > 0 {
					hist--
					line = []rune(ct.history[hist])
					redraw()
				}
			case easyterm.CursorDown:
				if hist < len(ct.history) {
					hist++
					if hist == len(ct.history) {
						line = line[:0]
					} else {
						line = []rune(ct.history[hist])
					}
					redraw()
				}
			}

		default:
			r := rune(k)
			if unicode.IsPrint(r) {
				line = append(line, r)
				ct.EasyTerm.TermPrint(string(r))
			}
		}
	}
}
