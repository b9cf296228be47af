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
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/debugger/terminal"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/paths"
	"github.com/scenevm/scenevm/script"
	"github.com/scenevm/scenevm/snapshot"
)

type command struct {
	// description of the arguments for the help system
	args    string
	minArgs int
	help    string
	fn      func(dbg *Debugger, name string, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"HELP":     {args: "[command]", help: "list commands or show help for a command", fn: (*Debugger).help},
		"STEP":     {args: "[frames]", help: "advance the simulation by one or more frames", fn: (*Debugger).step},
		"CLICK":    {args: "item", minArgs: 1, help: "shoot the item", fn: (*Debugger).click},
		"EXIT":     {args: "exit", minArgs: 1, help: "leave the scene through the exit", fn: (*Debugger).exit},
		"RESUME":   {args: "USER|TRACK", minArgs: 1, help: "unfreeze instances waiting for the user or for the maze", fn: (*Debugger).resume},
		"GLOBAL":   {args: "variable", minArgs: 1, help: "show the value of a global variable", fn: (*Debugger).global},
		"GLOBALS":  {help: "show the globals that have changed since the comparison point", fn: (*Debugger).globals},
		"COMPARE":  {args: "[frame|LOCK|UNLOCK]", help: "set the comparison point", fn: (*Debugger).compare},
		"LIST":     {args: "REL|PROC [overlay script]", minArgs: 1, help: "list the instances in a script list or find an instance", fn: (*Debugger).list},
		"MAZE":     {args: "[CHECK]", help: "show the tracks and targets of the maze or check the target windows", fn: (*Debugger).maze},
		"MEM":      {args: "[CHECK|DUMP file]", help: "show, check or write the resource table as a graphviz file", fn: (*Debugger).mem},
		"REWIND":   {args: "frame|LAST", minArgs: 1, help: "rewind (or fast forward) to the frame", fn: (*Debugger).rewind},
		"TIMELINE": {args: "[entries]", help: "show the most recent entries in the timeline", fn: (*Debugger).timeline},
		"SAVE":     {args: "[file]", help: "save a snapshot of the simulation", fn: (*Debugger).save},
		"LOAD":     {args: "file", minArgs: 1, help: "restore a snapshot of the simulation", fn: (*Debugger).load},
		"LOG":      {args: "[entries]", help: "show the most recent log entries", fn: (*Debugger).log},
		"QUIT":     {help: "leave the debugger", fn: (*Debugger).quit},
	}
}

// parse an integer argument
func number(name string, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, curated.Errorf(BadArgument, name, err)
	}
	return n, nil
}

func (dbg *Debugger) help(_ string, args []string) error {
	if len(args) > 0 {
		name := strings.ToUpper(args[0])
		cmd, ok := commands[name]
		if !ok {
			return curated.Errorf(UnknownCommand, name)
		}
		dbg.printLine(terminal.StyleHelp, "%s %s", name, cmd.args)
		dbg.printLine(terminal.StyleHelp, "  %s", cmd.help)
		return nil
	}

	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	dbg.printLine(terminal.StyleHelp, strings.Join(names, " "))

	return nil
}

func (dbg *Debugger) step(name string, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = number(name, args[0]); err != nil {
			return err
		}
	}

	for range n {
		if err := dbg.st.Step(); err != nil {
			return curated.Errorf(CommandError, name, err)
		}
		dbg.Rewind.RecordFrame()
	}
	dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.st.Frame())

	return nil
}

func (dbg *Debugger) click(name string, args []string) error {
	item, err := number(name, args[0])
	if err != nil {
		return err
	}
	hit, err := dbg.st.Click(item)
	if err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	if hit {
		dbg.printLine(terminal.StyleFeedback, "item %d hit", item)
	} else {
		dbg.printLine(terminal.StyleFeedback, "item %d cannot be hit", item)
	}
	return nil
}

func (dbg *Debugger) exit(name string, args []string) error {
	id, err := number(name, args[0])
	if err != nil {
		return err
	}
	r, err := dbg.st.Exit(id)
	if err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	dbg.printLine(terminal.StyleFeedback, r.String())

	if dbg.OnExit != nil {
		if err := dbg.OnExit(r); err != nil {
			return curated.Errorf(CommandError, name, err)
		}
	}
	return nil
}

func (dbg *Debugger) resume(name string, args []string) error {
	switch strings.ToUpper(args[0]) {
	case "USER":
		dbg.st.ResumeUserWait()
	case "TRACK":
		dbg.st.ResumeAutoTrack()
	default:
		return curated.Errorf(BadArgument, name, args[0])
	}
	dbg.printLine(terminal.StyleFeedback, "instances will resume next frame")
	return nil
}

func (dbg *Debugger) global(name string, args []string) error {
	v, err := number(name, args[0])
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleInstrument, "g%d = %d", v, dbg.st.Global(v))
	return nil
}

func (dbg *Debugger) globals(_ string, _ []string) error {
	d := dbg.Rewind.CompareGlobals()
	if len(d) == 0 {
		dbg.printLine(terminal.StyleFeedback, "no globals have changed")
		return nil
	}
	for _, g := range d {
		dbg.printLine(terminal.StyleInstrument, "g%d: %d -> %d", g.Global, g.Was, g.Now)
	}
	return nil
}

func (dbg *Debugger) compare(name string, args []string) error {
	if len(args) == 0 {
		dbg.Rewind.UpdateComparison()
	} else {
		switch strings.ToUpper(args[0]) {
		case "LOCK":
			dbg.Rewind.LockComparison(true)
		case "UNLOCK":
			dbg.Rewind.LockComparison(false)
		default:
			fn, err := number(name, args[0])
			if err != nil {
				return err
			}
			dbg.Rewind.SetComparison(fn)
		}
	}

	cmp := dbg.Rewind.GetComparisonState()
	switch {
	case cmp.State == nil:
		dbg.printLine(terminal.StyleFeedback, "no comparison point")
	case cmp.Locked:
		dbg.printLine(terminal.StyleFeedback, "comparing with frame %d (locked)", cmp.State.Frame)
	default:
		dbg.printLine(terminal.StyleFeedback, "comparing with frame %d", cmp.State.Frame)
	}
	return nil
}

func (dbg *Debugger) list(name string, args []string) error {
	kind, err := script.ParseKind(args[0])
	if err != nil {
		return curated.Errorf(BadArgument, name, err)
	}
	l := dbg.st.List(kind)

	if len(args) > 1 {
		if len(args) < 3 {
			return curated.Errorf(MissingArgument, name, "overlay script")
		}
		overlay, err := number(name, args[1])
		if err != nil {
			return err
		}
		scr, err := number(name, args[2])
		if err != nil {
			return err
		}
		inst := l.Find(overlay, scr)
		if inst == nil {
			dbg.printLine(terminal.StyleFeedback, "no instance of %d/%d in %s list", overlay, scr, kind)
			return nil
		}
		dbg.printLine(terminal.StyleInstrument, inst.String())
		return nil
	}

	if l.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "%s list is empty", kind)
		return nil
	}
	for _, inst := range l.Instances() {
		dbg.printLine(terminal.StyleInstrument, inst.String())
	}
	return nil
}

func (dbg *Debugger) maze(name string, args []string) error {
	mz := dbg.st.Maze()
	if mz == nil {
		dbg.printLine(terminal.StyleFeedback, "no maze")
		return nil
	}
	if len(args) == 0 {
		dbg.printLines(terminal.StyleInstrument, mz.String())
		return nil
	}

	if strings.ToUpper(args[0]) != "CHECK" {
		return curated.Errorf(BadArgument, name, args[0])
	}
	vs := mz.CheckTargetWindows()
	if len(vs) == 0 {
		dbg.printLine(terminal.StyleFeedback, "target windows are closed correctly")
		return nil
	}
	dbg.printLines(terminal.StyleInstrument, vs.String())
	return nil
}

func (dbg *Debugger) mem(name string, args []string) error {
	mem := dbg.st.Mem()
	if len(args) == 0 {
		dbg.printLine(terminal.StyleInstrument, mem.String())
		return nil
	}

	if strings.ToUpper(args[0]) == "CHECK" {
		if err := mem.Verify(); err != nil {
			return curated.Errorf(CommandError, name, err)
		}
		dbg.printLine(terminal.StyleFeedback, "resource table is consistent")
		return nil
	}

	if strings.ToUpper(args[0]) != "DUMP" || len(args) < 2 {
		return curated.Errorf(MissingArgument, name, "DUMP file")
	}
	f, err := os.Create(args[1])
	if err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	defer f.Close()
	mem.Visualise(f)
	dbg.printLine(terminal.StyleFeedback, "resource table written to %s", args[1])

	return nil
}

func (dbg *Debugger) rewind(name string, args []string) error {
	if strings.ToUpper(args[0]) == "LAST" {
		if err := dbg.Rewind.GotoLast(); err != nil {
			return curated.Errorf(CommandError, name, err)
		}
	} else {
		fn, err := number(name, args[0])
		if err != nil {
			return err
		}
		if _, err := dbg.Rewind.GotoFrame(fn); err != nil {
			return curated.Errorf(CommandError, name, err)
		}
	}
	dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.st.Frame())
	return nil
}

func (dbg *Debugger) timeline(name string, args []string) error {
	n := 10
	if len(args) > 0 {
		var err error
		if n, err = number(name, args[0]); err != nil {
			return err
		}
	}

	tl := dbg.Rewind.GetTimeline()
	for i := max(0, len(tl.FrameNum)-n); i < len(tl.FrameNum); i++ {
		dbg.printLine(terminal.StyleInstrument, "frame %d: %d instances, %d visible, %d targetable",
			tl.FrameNum[i], tl.Instances[i], tl.Visible[i], tl.Targetable[i])
	}
	return nil
}

func (dbg *Debugger) save(name string, args []string) error {
	s := dbg.st.Snapshot()
	if s == nil {
		return curated.Errorf(CommandError, name, "no scene")
	}
	var fn string
	if len(args) > 0 {
		fn = args[0]
	} else {
		fn = paths.UniqueFilename("snapshot", s.Scene)
	}
	if err := snapshot.Save(fn, s); err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	dbg.printLine(terminal.StyleFeedback, "frame %d saved to %s", s.Frame, fn)
	return nil
}

func (dbg *Debugger) load(name string, args []string) error {
	s, err := snapshot.Load(args[0])
	if err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	if err := dbg.st.Restore(s); err != nil {
		return curated.Errorf(CommandError, name, err)
	}
	dbg.Rewind.Reset()
	dbg.printLine(terminal.StyleFeedback, "frame %d", dbg.st.Frame())
	return nil
}

func (dbg *Debugger) log(name string, args []string) error {
	n := 10
	if len(args) > 0 {
		var err error
		if n, err = number(name, args[0]); err != nil {
			return err
		}
	}

	s := strings.Builder{}
	logger.Tail(&s, n)
	if s.Len() == 0 {
		dbg.printLine(terminal.StyleFeedback, "log is empty")
		return nil
	}
	dbg.printLines(terminal.StyleLog, s.String())
	return nil
}

func (dbg *Debugger) quit(_ string, _ []string) error {
	dbg.running = false
	return nil
}
