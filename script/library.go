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
	"sort"

	"github.com/scenevm/scenevm/curated"
)

// Program is the sequence of ops for a single script of an overlay.
type Program struct {
	Overlay int
	Script  int
	Name    string
	Ops     []Op
}

func (prg *Program) String() string {
	if prg.Name != "" {
		return fmt.Sprintf("%s (%d:%d)", prg.Name, prg.Overlay, prg.Script)
	}
	return fmt.Sprintf("%d:%d", prg.Overlay, prg.Script)
}

// Validate checks that every jump target is inside the program and that
// every operand that is written to is a variable.
func (prg *Program) Validate() error {
	for i, op := range prg.Ops {
		var err error
		switch o := op.(type) {
		case Jump:
			err = prg.target(o.Target)
		case JumpIf:
			err = prg.target(o.Target)
		case Set:
			err = writable(o.Dst)
		case Add:
			err = writable(o.Dst)
		case Load:
			if !o.Cond.Valid() {
				err = fmt.Errorf("illegal condition %s", o.Cond)
			}
		case Condition:
			if !o.Cond.Valid() {
				err = fmt.Errorf("illegal condition %s", o.Cond)
			}
		}
		if err != nil {
			return curated.Errorf(ProgramError, prg, fmt.Errorf("op %d (%s): %w", i, op, err))
		}
	}
	return nil
}

func (prg *Program) target(t int) error {
	if t < 0 || t >= len(prg.Ops) {
		return fmt.Errorf("jump target %d out of range", t)
	}
	return nil
}

func writable(o Operand) error {
	if _, ok := o.(Lit); ok {
		return fmt.Errorf("cannot write to literal %s", o)
	}
	return nil
}

type key struct {
	overlay int
	script  int
}

// Library of programs keyed by overlay and script number.
type Library struct {
	programs map[key]*Program
}

// NewLibrary is the preferred method of initialisation for the Library type.
func NewLibrary() *Library {
	return &Library{
		programs: make(map[key]*Program),
	}
}

// Add a program to the library. The program is validated before it is added
// and replaces any existing program with the same overlay and script number.
func (lib *Library) Add(prg *Program) error {
	if prg.Script == Finished {
		return curated.Errorf(ProgramError, prg, "script number is reserved")
	}
	if err := prg.Validate(); err != nil {
		return err
	}
	lib.programs[key{overlay: prg.Overlay, script: prg.Script}] = prg
	return nil
}

// Get the program for the overlay and script number.
func (lib *Library) Get(overlay, script int) (*Program, bool) {
	prg, ok := lib.programs[key{overlay: overlay, script: script}]
	return prg, ok
}

// Programs returns all programs in overlay/script order.
func (lib *Library) Programs() []*Program {
	s := make([]*Program, 0, len(lib.programs))
	for _, prg := range lib.programs {
		s = append(s, prg)
	}
	sort.Slice(s, func(i, j int) bool {
		if s[i].Overlay == s[j].Overlay {
			return s[i].Script < s[j].Script
		}
		return s[i].Overlay < s[j].Overlay
	})
	return s
}
