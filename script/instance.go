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
	"strings"
)

// Kind of script list.
type Kind int

// List of valid Kind values.
const (
	Proc Kind = iota
	Rel
)

func (k Kind) String() string {
	switch k {
	case Proc:
		return "proc"
	case Rel:
		return "rel"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String().
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "proc":
		return Proc, nil
	case "rel":
		return Rel, nil
	}
	return Proc, fmt.Errorf("unknown script kind %q", s)
}

// Finished is the script number of an instance that has ended. It is also
// the script number of the sentinel head of a list.
const Finished = -1

// Special freeze values.
const (
	FreezeNone      = 0
	FreezeAutoTrack = 9998
	FreezeUserWait  = 9999
)

// Instance is one execution of a program. Instances are owned by a List.
type Instance struct {
	// unique (within the list) serial number. the head of the list is zero
	ID int

	Overlay  int
	Script   int
	Priority int
	Kind     Kind

	// the instance that attached this one
	RelatedScript  int
	RelatedOverlay int

	// program counter. index into the ops of the program
	PC int

	// non-zero values cause the instance to be skipped
	Freeze int

	// ticks remaining in the current wait
	Wait int

	Locals [MaxLocals]int

	// arena index of the next instance in the list. -1 is the end of the list
	next int
}

func (inst *Instance) String() string {
	return fmt.Sprintf("%s instance %d (overlay %d, script %d, pc %d)", inst.Kind, inst.ID, inst.Overlay, inst.Script, inst.PC)
}

// IsFinished returns true if the instance is waiting to be removed from
// the list.
func (inst *Instance) IsFinished() bool {
	return inst.Script == Finished
}

// Finish marks the instance as finished.
func (inst *Instance) Finish() {
	inst.Script = Finished
}
