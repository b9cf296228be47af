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

package script

import (
	"fmt"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/memman"
)

// Env is the engine state that the interpreter reads and mutates. It is
// implemented by the simulation.
type Env interface {
	// the globals array. the slice is written to directly
	Globals() []int

	// number in the inclusive range [min, max]
	Random(min int, max int) int

	Attach(kind Kind, overlay, script, priority, relScript, relOverlay int)
	Retarget(kind Kind, overlay, script, oldFreeze, newFreeze int) int

	// resource slots backed by the memman table
	Load(slot int, size int, cond memman.Condition) error
	Release(slot int) error
	SetCondition(slot int, cond memman.Condition) error

	// fire-and-forget requests to the collaborators
	PlaySound(sound, volume, pan int)
	MoveSprite(object, x, y int)
	Animate(object, animation int)
	SetMazePaused(paused bool)
}

// DefaultInstructionLimit is the number of ops a single step may execute
// before it is considered to be a runaway script.
const DefaultInstructionLimit = 10000

// Interpreter executes steps of script instances.
type Interpreter struct {
	env Env
	lib *Library

	// ops executed in a single step before the instruction limit error is
	// returned
	Limit int

	// ticks that pass in each step. waits are counted down by this amount
	Ticks int
}

// NewInterpreter is the preferred method of initialisation for the
// Interpreter type.
func NewInterpreter(env Env, lib *Library) *Interpreter {
	return &Interpreter{
		env:   env,
		lib:   lib,
		Limit: DefaultInstructionLimit,
		Ticks: 1,
	}
}

// Step advances the instance by one step. The instance runs until it waits,
// yields, restarts or ends. Running past the last op ends the instance.
//
// A frozen or finished instance is not changed.
func (in *Interpreter) Step(inst *Instance) error {
	if inst.Freeze > 0 || inst.IsFinished() {
		return nil
	}

	if inst.Wait > 0 {
		inst.Wait -= in.Ticks
		if inst.Wait > 0 {
			return nil
		}
		inst.Wait = 0
	}

	prg, ok := in.lib.Get(inst.Overlay, inst.Script)
	if !ok {
		return curated.Errorf(UnknownProgram, inst.Overlay, inst.Script)
	}

	for n := 0; ; n++ {
		if n >= in.Limit {
			return curated.Errorf(InstructionLimit, in.Limit)
		}

		if inst.PC < 0 || inst.PC >= len(prg.Ops) {
			inst.Finish()
			return nil
		}

		op := prg.Ops[inst.PC]
		inst.PC++

		block, err := in.exec(inst, op)
		if err != nil {
			// leave the program counter pointing at the failing op
			inst.PC--
			return err
		}
		if block {
			return nil
		}
	}
}

// exec executes a single op. returns true if the step should end.
func (in *Interpreter) exec(inst *Instance, op Op) (bool, error) {
	switch o := op.(type) {
	case End:
		inst.Finish()
		return true, nil

	case Yield:
		return true, nil

	case Restart:
		inst.PC = 0
		return true, nil

	case Wait:
		v, err := in.value(inst, o.Ticks)
		if err != nil {
			return false, err
		}
		inst.Wait = max(v, 0)
		return inst.Wait > 0, nil

	case WaitRandom:
		lo, err := in.value(inst, o.Min)
		if err != nil {
			return false, err
		}
		hi, err := in.value(inst, o.Max)
		if err != nil {
			return false, err
		}
		inst.Wait = max(in.env.Random(lo, hi), 0)
		return inst.Wait > 0, nil

	case Set:
		v, err := in.value(inst, o.Src)
		if err != nil {
			return false, err
		}
		return false, in.store(inst, o.Dst, v)

	case Add:
		a, err := in.value(inst, o.Dst)
		if err != nil {
			return false, err
		}
		b, err := in.value(inst, o.Src)
		if err != nil {
			return false, err
		}
		return false, in.store(inst, o.Dst, a+b)

	case Jump:
		inst.PC = o.Target
		return false, nil

	case JumpIf:
		a, err := in.value(inst, o.A)
		if err != nil {
			return false, err
		}
		b, err := in.value(inst, o.B)
		if err != nil {
			return false, err
		}
		if o.Cmp.test(a, b) {
			inst.PC = o.Target
		}
		return false, nil

	case Attach:
		in.env.Attach(o.Kind, o.Overlay, o.Script, o.Priority, inst.Script, inst.Overlay)
		return false, nil

	case Freeze:
		in.env.Retarget(o.Kind, o.Overlay, o.Script, o.Old, o.New)
		return inst.Freeze > 0, nil

	case Load:
		size, err := in.value(inst, o.Size)
		if err != nil {
			return false, err
		}
		return false, in.env.Load(o.Slot, size, o.Cond)

	case Release:
		return false, in.env.Release(o.Slot)

	case Condition:
		return false, in.env.SetCondition(o.Slot, o.Cond)

	case PlaySound:
		v, err := in.values(inst, o.Sound, o.Volume, o.Pan)
		if err != nil {
			return false, err
		}
		in.env.PlaySound(v[0], v[1], v[2])
		return false, nil

	case MoveSprite:
		v, err := in.values(inst, o.Object, o.X, o.Y)
		if err != nil {
			return false, err
		}
		in.env.MoveSprite(v[0], v[1], v[2])
		return false, nil

	case Animate:
		v, err := in.values(inst, o.Object, o.Animation)
		if err != nil {
			return false, err
		}
		in.env.Animate(v[0], v[1])
		return false, nil

	case MazePause:
		in.env.SetMazePaused(o.Paused)
		return false, nil
	}

	return false, curated.Errorf(UnknownOp, op)
}

func (in *Interpreter) value(inst *Instance, o Operand) (int, error) {
	switch o := o.(type) {
	case Lit:
		return int(o), nil
	case Global:
		g := in.env.Globals()
		if int(o) < 0 || int(o) >= len(g) {
			return 0, curated.Errorf(BadOperand, fmt.Sprintf("global %d out of range", int(o)))
		}
		return g[o], nil
	case Local:
		if int(o) < 0 || int(o) >= MaxLocals {
			return 0, curated.Errorf(BadOperand, fmt.Sprintf("local %d out of range", int(o)))
		}
		return inst.Locals[o], nil
	}
	return 0, curated.Errorf(BadOperand, fmt.Sprintf("%T", o))
}

func (in *Interpreter) values(inst *Instance, o ...Operand) ([]int, error) {
	v := make([]int, len(o))
	for i := range o {
		var err error
		v[i], err = in.value(inst, o[i])
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (in *Interpreter) store(inst *Instance, o Operand, v int) error {
	switch o := o.(type) {
	case Global:
		g := in.env.Globals()
		if int(o) < 0 || int(o) >= len(g) {
			return curated.Errorf(BadOperand, fmt.Sprintf("global %d out of range", int(o)))
		}
		g[o] = v
		return nil
	case Local:
		if int(o) < 0 || int(o) >= MaxLocals {
			return curated.Errorf(BadOperand, fmt.Sprintf("local %d out of range", int(o)))
		}
		inst.Locals[o] = v
		return nil
	}
	return curated.Errorf(BadOperand, fmt.Sprintf("cannot store to %s", o))
}
