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
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/memman"
)

// Assemble converts the textual form of an op, as produced by Op.String(),
// into an Op. Anything after a '#' is a comment.
func Assemble(line string) (Op, error) {
	if i := strings.IndexRune(line, '#'); i >= 0 {
		line = line[:i]
	}
	f := strings.Fields(strings.ToLower(line))
	if len(f) == 0 {
		return nil, curated.Errorf(AssemblyError, "empty line")
	}

	op, err := assemble(f[0], f[1:])
	if err != nil {
		return nil, curated.Errorf(AssemblyError, fmt.Errorf("%q: %w", strings.TrimSpace(line), err))
	}
	return op, nil
}

// AssembleProgram assembles every non-empty line. Lines that contain only a
// comment are ignored.
func AssembleProgram(overlay int, script int, name string, lines []string) (*Program, error) {
	prg := &Program{
		Overlay: overlay,
		Script:  script,
		Name:    name,
	}
	for _, l := range lines {
		if i := strings.IndexRune(l, '#'); i >= 0 {
			l = l[:i]
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		op, err := Assemble(l)
		if err != nil {
			return nil, err
		}
		prg.Ops = append(prg.Ops, op)
	}
	return prg, nil
}

func arity(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

func operands(args []string) ([]Operand, error) {
	o := make([]Operand, len(args))
	for i, a := range args {
		var err error
		if o[i], err = ParseOperand(a); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func integers(args []string) ([]int, error) {
	v := make([]int, len(args))
	for i, a := range args {
		var err error
		if v[i], err = strconv.Atoi(a); err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
	}
	return v, nil
}

func parseCondition(s string) (memman.Condition, error) {
	switch s {
	case "canfree":
		return memman.CanFree, nil
	case "dontfree":
		return memman.DontFree, nil
	}
	return memman.Freed, fmt.Errorf("unknown condition %q", s)
}

func parseComparison(s string) (Comparison, error) {
	for i, c := range comparisons {
		if c == s {
			return Comparison(i), nil
		}
	}
	return Eq, fmt.Errorf("unknown comparison %q", s)
}

func assemble(mnemonic string, args []string) (Op, error) {
	// ops with no arguments
	switch mnemonic {
	case "end", "yield", "restart":
		if err := arity(args, 0); err != nil {
			return nil, err
		}
		switch mnemonic {
		case "end":
			return End{}, nil
		case "yield":
			return Yield{}, nil
		}
		return Restart{}, nil
	}

	switch mnemonic {
	case "wait":
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		return Wait{Ticks: o[0]}, nil

	case "waitrandom":
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		return WaitRandom{Min: o[0], Max: o[1]}, nil

	case "set", "add":
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		if err := writable(o[0]); err != nil {
			return nil, err
		}
		if mnemonic == "set" {
			return Set{Dst: o[0], Src: o[1]}, nil
		}
		return Add{Dst: o[0], Src: o[1]}, nil

	case "jump":
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		v, err := integers(args)
		if err != nil {
			return nil, err
		}
		return Jump{Target: v[0]}, nil

	case "jumpif":
		if err := arity(args, 4); err != nil {
			return nil, err
		}
		o, err := operands([]string{args[0], args[2]})
		if err != nil {
			return nil, err
		}
		cmp, err := parseComparison(args[1])
		if err != nil {
			return nil, err
		}
		v, err := integers(args[3:])
		if err != nil {
			return nil, err
		}
		return JumpIf{A: o[0], Cmp: cmp, B: o[1], Target: v[0]}, nil

	case "attach":
		if len(args) != 3 && len(args) != 4 {
			return nil, fmt.Errorf("expected 3 or 4 arguments, got %d", len(args))
		}
		kind, err := ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		v, err := integers(args[1:])
		if err != nil {
			return nil, err
		}
		op := Attach{Kind: kind, Overlay: v[0], Script: v[1]}
		if len(v) == 3 {
			op.Priority = v[2]
		}
		return op, nil

	case "freeze":
		if err := arity(args, 5); err != nil {
			return nil, err
		}
		kind, err := ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		v, err := integers(args[1:])
		if err != nil {
			return nil, err
		}
		return Freeze{Kind: kind, Overlay: v[0], Script: v[1], Old: v[2], New: v[3]}, nil

	case "load":
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		v, err := integers(args[:1])
		if err != nil {
			return nil, err
		}
		o, err := operands(args[1:2])
		if err != nil {
			return nil, err
		}
		cond, err := parseCondition(args[2])
		if err != nil {
			return nil, err
		}
		return Load{Slot: v[0], Size: o[0], Cond: cond}, nil

	case "release":
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		v, err := integers(args)
		if err != nil {
			return nil, err
		}
		return Release{Slot: v[0]}, nil

	case "condition":
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		v, err := integers(args[:1])
		if err != nil {
			return nil, err
		}
		cond, err := parseCondition(args[1])
		if err != nil {
			return nil, err
		}
		return Condition{Slot: v[0], Cond: cond}, nil

	case "sound":
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		return PlaySound{Sound: o[0], Volume: o[1], Pan: o[2]}, nil

	case "move":
		if err := arity(args, 3); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		return MoveSprite{Object: o[0], X: o[1], Y: o[2]}, nil

	case "animate":
		if err := arity(args, 2); err != nil {
			return nil, err
		}
		o, err := operands(args)
		if err != nil {
			return nil, err
		}
		return Animate{Object: o[0], Animation: o[1]}, nil

	case "mazepause":
		if err := arity(args, 1); err != nil {
			return nil, err
		}
		switch args[0] {
		case "on":
			return MazePause{Paused: true}, nil
		case "off":
			return MazePause{Paused: false}, nil
		}
		return nil, fmt.Errorf("mazepause expects on or off")
	}

	return nil, fmt.Errorf("unknown mnemonic %q", mnemonic)
}
