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

package debugger

import (
	"fmt"
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/debugger/terminal"
	"github.com/scenevm/scenevm/rewind"
	"github.com/scenevm/scenevm/simulation"
)

// Debugger is the basic debugging frontend for the simulation.
type Debugger struct {
	st   *simulation.State
	term terminal.Terminal

	// history of the simulation. the rewind system is reset when the
	// debugger is started and when a snapshot is loaded
	Rewind *rewind.Rewind

	// OnExit is called when the scene is left with the EXIT command
	OnExit func(simulation.Result) error

	running bool
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The simulation should have a scene loaded. A nil rewind.Preferences
// is replaced by the default preferences.
func NewDebugger(st *simulation.State, term terminal.Terminal, prf *rewind.Preferences) *Debugger {
	return &Debugger{
		st:     st,
		term:   term,
		Rewind: rewind.NewRewind(st, prf),
	}
}

// Start the input loop of the debugger. Returns when the QUIT command is
// given or when the input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	dbg.Rewind.Reset()
	dbg.running = true

	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserAbort) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return err
		}

		if !dbg.term.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, input)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{Frame: dbg.st.Frame()}
	if s := dbg.st.Snapshot(); s != nil {
		p.Scene = s.Scene
		p.Exited = s.Exited
	}
	return p
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	dbg.term.TermPrintLine(style, s)
}

// print every line of a multi-line string
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

// parse and execute a single line of input. blank lines and comments are
// ignored
func (dbg *Debugger) parseInput(input string) error {
	if i := strings.IndexByte(input, '#'); i >= 0 {
		input = input[:i]
	}
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	name := strings.ToUpper(tokens[0])
	cmd, ok := commands[name]
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}
	if len(tokens)-1 < cmd.minArgs {
		return curated.Errorf(MissingArgument, name, cmd.args)
	}

	return cmd.fn(dbg, name, tokens[1:])
}
