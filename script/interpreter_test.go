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

package script_test

import (
	"errors"
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/script"
	"github.com/scenevm/scenevm/test"
)

func setup(t *testing.T, lines ...string) (*env, *script.Interpreter, *script.Instance) {
	t.Helper()
	e := newEnv()
	lib := script.NewLibrary()
	test.DemandSuccess(t, lib.Add(program(0, 1, lines...)))
	in := script.NewInterpreter(e, lib)
	inst := e.lists[script.Proc].Attach(0, 1, 30, -1, -1)
	return e, in, inst
}

func TestWait(t *testing.T) {
	e, in, inst := setup(t, "wait 3", "set g0 1", "end")

	// the wait op is executed and blocks the instance
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, inst.Wait, 3)
	test.ExpectEquality(t, e.globals[0], 0)

	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, inst.Wait, 1)
	test.ExpectEquality(t, e.globals[0], 0)

	// wait expires and the script continues in the same step
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, inst.Wait, 0)
	test.ExpectEquality(t, e.globals[0], 1)
	test.ExpectSuccess(t, inst.IsFinished())
}

func TestWaitTicks(t *testing.T) {
	_, in, inst := setup(t, "wait 100", "end")
	in.Ticks = 16

	test.ExpectSuccess(t, in.Step(inst))
	var steps int
	for !inst.IsFinished() {
		test.ExpectSuccess(t, in.Step(inst))
		steps++
	}

	// 100 ticks at 16 ticks per step
	test.ExpectEquality(t, steps, 7)
}

func TestWaitRandomDegenerateRange(t *testing.T) {
	e, in, inst := setup(t, "waitrandom 5000 5000", "restart")

	var drawn []int
	e.random = func(min, max int) int {
		drawn = append(drawn, min, max)
		return min
	}

	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, inst.Wait, 5000)
	test.DemandEquality(t, len(drawn), 2)
	test.ExpectEquality(t, drawn[0], 5000)
	test.ExpectEquality(t, drawn[1], 5000)
}

func TestWaitRandomDrawnAtExecution(t *testing.T) {
	e, in, inst := setup(t, "set g1 10", "waitrandom g1 g2", "restart")
	e.globals[2] = 20

	var draws int
	e.random = func(min, max int) int {
		draws++
		test.ExpectEquality(t, min, 10)
		test.ExpectEquality(t, max, 20)
		return 15
	}

	// no draw happens until the op is reached
	test.ExpectEquality(t, draws, 0)
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, draws, 1)
	test.ExpectEquality(t, inst.Wait, 15)
}

func TestRestart(t *testing.T) {
	e, in, inst := setup(t, "add g0 1", "restart")

	for i := 1; i <= 10; i++ {
		test.ExpectSuccess(t, in.Step(inst))
		test.ExpectEquality(t, inst.PC, 0)
		test.ExpectEquality(t, e.globals[0], i)
	}
}

func TestLoop(t *testing.T) {
	e, in, inst := setup(t,
		"set l0 0",
		"add l0 1",
		"add g0 2",
		"jumpif l0 < 5 1",
		"set g1 l0",
		"end",
	)

	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, e.globals[0], 10)
	test.ExpectEquality(t, e.globals[1], 5)
	test.ExpectSuccess(t, inst.IsFinished())
}

func TestRunOffEnd(t *testing.T) {
	_, in, inst := setup(t, "yield")
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectFailure(t, inst.IsFinished())
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectSuccess(t, inst.IsFinished())
}

func TestInstructionLimit(t *testing.T) {
	_, in, inst := setup(t, "add g0 1", "jump 0")
	in.Limit = 100

	err := in.Step(inst)
	test.ExpectSuccess(t, curated.Is(err, script.InstructionLimit))
}

func TestUnknownProgram(t *testing.T) {
	e, in, _ := setup(t, "end")
	inst := e.lists[script.Proc].Attach(5, 5, 30, -1, -1)

	err := in.Step(inst)
	test.ExpectSuccess(t, curated.Is(err, script.UnknownProgram))
}

func TestBadGlobal(t *testing.T) {
	_, in, inst := setup(t, "set g0 1", "set g100 1", "end")

	err := in.Step(inst)
	test.ExpectSuccess(t, curated.Is(err, script.BadOperand))

	// program counter points at the failing op
	test.ExpectEquality(t, inst.PC, 1)
}

func TestFreezeSelf(t *testing.T) {
	e, in, inst := setup(t, "freeze proc -1 -1 0 9999", "set g0 1", "end")

	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, inst.Freeze, script.FreezeUserWait)
	test.ExpectEquality(t, e.globals[0], 0)

	// user wait is released by retargeting the list
	test.ExpectEquality(t, e.lists[script.Proc].Retarget(-1, -1, script.FreezeUserWait, 0), 1)
	test.ExpectSuccess(t, in.Step(inst))
	test.ExpectEquality(t, e.globals[0], 1)
}

func TestCollaborators(t *testing.T) {
	e, in, inst := setup(t,
		"set g3 7",
		"sound g3 12 -50",
		"move 1 g3 200",
		"animate 1 4",
		"mazepause on",
		"load 2 4096 canfree",
		"condition 2 dontfree",
		"release 2",
		"end",
	)

	test.ExpectSuccess(t, in.Step(inst))

	expected := []string{
		"sound 7 12 -50",
		"move 1 7 200",
		"animate 1 4",
		"mazepause true",
		"load 2 4096 " + memman.CanFree.String(),
		"condition 2 " + memman.DontFree.String(),
		"release 2",
	}
	test.DemandEquality(t, len(e.calls), len(expected))
	for i := range expected {
		test.ExpectEquality(t, e.calls[i], expected[i])
	}
}

func TestLoadError(t *testing.T) {
	e, in, inst := setup(t, "load 0 10 dontfree", "end")
	e.loadErr = errors.New("allocation failed")

	test.ExpectFailure(t, in.Step(inst))
	test.ExpectFailure(t, inst.IsFinished())
}

func TestInvalidProgram(t *testing.T) {
	lib := script.NewLibrary()
	err := lib.Add(program(0, 1, "jump 10"))
	test.ExpectSuccess(t, curated.Is(err, script.ProgramError))

	err = lib.Add(&script.Program{Overlay: 0, Script: 1, Ops: []script.Op{script.Set{Dst: script.Lit(1), Src: script.Lit(1)}}})
	test.ExpectSuccess(t, curated.Is(err, script.ProgramError))

	err = lib.Add(program(0, script.Finished, "end"))
	test.ExpectSuccess(t, curated.Is(err, script.ProgramError))
}
