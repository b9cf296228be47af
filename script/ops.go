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

	"github.com/scenevm/scenevm/memman"
)

// Op is a single instruction in a Program. The set of ops is closed.
type Op interface {
	fmt.Stringer
	op()
}

// End marks the instance as finished. It will be removed from its list by
// the next sweep.
type End struct{}

// Yield ends the step. Execution continues with the next op on the next
// frame.
type Yield struct{}

// Wait blocks the instance for the number of ticks.
type Wait struct {
	Ticks Operand
}

// WaitRandom blocks the instance for a number of ticks drawn from the
// inclusive range [Min, Max]. The number is drawn when the op is executed.
type WaitRandom struct {
	Min Operand
	Max Operand
}

// Restart sets the program counter to zero and ends the step.
type Restart struct{}

// Set stores the value of Src in the variable Dst.
type Set struct {
	Dst Operand
	Src Operand
}

// Add adds the value of Src to the variable Dst.
type Add struct {
	Dst Operand
	Src Operand
}

// Jump to the op at index Target.
type Jump struct {
	Target int
}

// Comparison used by JumpIf.
type Comparison int

// List of valid Comparison values.
const (
	Eq Comparison = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var comparisons = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (c Comparison) String() string {
	if int(c) < 0 || int(c) >= len(comparisons) {
		return "??"
	}
	return comparisons[c]
}

func (c Comparison) test(a, b int) bool {
	switch c {
	case Eq:
		return a == b
	case Ne:
		return a != b
	case Lt:
		return a < b
	case Le:
		return a <= b
	case Gt:
		return a > b
	case Ge:
		return a >= b
	}
	return false
}

// JumpIf jumps to Target if the comparison between A and B is true.
type JumpIf struct {
	A      Operand
	Cmp    Comparison
	B      Operand
	Target int
}

// Attach a new instance of a script to the tail of the list of the
// specified kind. The new instance is related to the attaching instance.
type Attach struct {
	Kind     Kind
	Overlay  int
	Script   int
	Priority int
}

// Freeze changes the freeze value of every instance in the list of the
// specified kind that matches the filters. A value of -1 for Overlay, Script
// or Old matches any instance. If the executing instance is itself frozen by
// the op then the step ends.
type Freeze struct {
	Kind    Kind
	Overlay int
	Script  int
	Old     int
	New     int
}

// Load allocates a resource block of Size bytes into the numbered slot.
type Load struct {
	Slot int
	Size Operand
	Cond memman.Condition
}

// Release the resource block in the numbered slot.
type Release struct {
	Slot int
}

// Condition changes the condition of the resource block in the numbered
// slot.
type Condition struct {
	Slot int
	Cond memman.Condition
}

// PlaySound is a fire-and-forget request to the audio collaborator.
type PlaySound struct {
	Sound  Operand
	Volume Operand
	Pan    Operand
}

// MoveSprite is a fire-and-forget request to the renderer.
type MoveSprite struct {
	Object Operand
	X      Operand
	Y      Operand
}

// Animate is a fire-and-forget request to the renderer.
type Animate struct {
	Object    Operand
	Animation Operand
}

// MazePause sets the pause state of the police maze.
type MazePause struct {
	Paused bool
}

func (End) op()        {}
func (Yield) op()      {}
func (Wait) op()       {}
func (WaitRandom) op() {}
func (Restart) op()    {}
func (Set) op()        {}
func (Add) op()        {}
func (Jump) op()       {}
func (JumpIf) op()     {}
func (Attach) op()     {}
func (Freeze) op()     {}
func (Load) op()       {}
func (Release) op()    {}
func (Condition) op()  {}
func (PlaySound) op()  {}
func (MoveSprite) op() {}
func (Animate) op()    {}
func (MazePause) op()  {}

func condName(c memman.Condition) string {
	if c == memman.CanFree {
		return "canfree"
	}
	return "dontfree"
}

func (End) String() string     { return "end" }
func (Yield) String() string   { return "yield" }
func (Restart) String() string { return "restart" }

func (o Wait) String() string {
	return fmt.Sprintf("wait %s", o.Ticks)
}

func (o WaitRandom) String() string {
	return fmt.Sprintf("waitrandom %s %s", o.Min, o.Max)
}

func (o Set) String() string {
	return fmt.Sprintf("set %s %s", o.Dst, o.Src)
}

func (o Add) String() string {
	return fmt.Sprintf("add %s %s", o.Dst, o.Src)
}

func (o Jump) String() string {
	return fmt.Sprintf("jump %d", o.Target)
}

func (o JumpIf) String() string {
	return fmt.Sprintf("jumpif %s %s %s %d", o.A, o.Cmp, o.B, o.Target)
}

func (o Attach) String() string {
	return fmt.Sprintf("attach %s %d %d %d", o.Kind, o.Overlay, o.Script, o.Priority)
}

func (o Freeze) String() string {
	return fmt.Sprintf("freeze %s %d %d %d %d", o.Kind, o.Overlay, o.Script, o.Old, o.New)
}

func (o Load) String() string {
	return fmt.Sprintf("load %d %s %s", o.Slot, o.Size, condName(o.Cond))
}

func (o Release) String() string {
	return fmt.Sprintf("release %d", o.Slot)
}

func (o Condition) String() string {
	return fmt.Sprintf("condition %d %s", o.Slot, condName(o.Cond))
}

func (o PlaySound) String() string {
	return fmt.Sprintf("sound %s %s %s", o.Sound, o.Volume, o.Pan)
}

func (o MoveSprite) String() string {
	return fmt.Sprintf("move %s %s %s", o.Object, o.X, o.Y)
}

func (o Animate) String() string {
	return fmt.Sprintf("animate %s %s", o.Object, o.Animation)
}

func (o MazePause) String() string {
	if o.Paused {
		return "mazepause on"
	}
	return "mazepause off"
}
