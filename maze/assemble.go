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

package maze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
)

// Symbols maps names to integer values. Symbol names are not case sensitive.
// Symbols are used by Assemble() to resolve item and variable names.
type Symbols map[string]int

// Add a symbol to the table. Adding an existing symbol replaces the previous
// value.
func (sym Symbols) Add(name string, value int) {
	sym[strings.ToLower(name)] = value
}

// Resolve a token. The token can be a symbol name or an integer literal.
func (sym Symbols) Resolve(token string) (int, error) {
	if v, ok := sym[strings.ToLower(token)]; ok {
		return v, nil
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("unknown symbol %q", token)
	}
	return v, nil
}

// mnemonic and the number of operands expected.
var arities = map[string]int{
	"activate":        2,
	"variableinc":     2,
	"targetset":       2,
	"enemyset":        1,
	"enemyreset":      1,
	"obstacleset":     1,
	"obstaclereset":   1,
	"facing":          1,
	"position":        1,
	"move":            1,
	"wait":            1,
	"waitrandom":      2,
	"rotate":          2,
	"shoot":           2,
	"playsound":       2,
	"pausedset":       1,
	"pausedreset":     1,
	"pausedreset1of2": 2,
	"restart":         0,
	"leave":           0,
}

// Assemble a single line of track source into an Instruction. Operands are
// separated by whitespace or commas and can be symbols or integers. A nil
// symbol table is allowed.
func Assemble(line string, sym Symbols) (Instruction, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) == 0 {
		return nil, curated.Errorf(AssemblyError, "empty instruction")
	}

	mnemonic := strings.ToLower(fields[0])
	n, ok := arities[mnemonic]
	if !ok {
		return nil, curated.Errorf(AssemblyError, fmt.Sprintf("unknown mnemonic %q", fields[0]))
	}
	if len(fields)-1 != n {
		return nil, curated.Errorf(AssemblyError, fmt.Sprintf("%s expects %d operands", mnemonic, n))
	}

	if sym == nil {
		sym = Symbols{}
	}

	o := make([]int, n)
	for i, f := range fields[1:] {
		v, err := sym.Resolve(f)
		if err != nil {
			return nil, curated.Errorf(AssemblyError, err)
		}
		o[i] = v
	}

	switch mnemonic {
	case "activate":
		return Activate{Var: o[0], Max: o[1]}, nil
	case "variableinc":
		return VariableInc{Var: o[0], Max: o[1]}, nil
	case "targetset":
		if o[1] != 0 && o[1] != 1 {
			return nil, curated.Errorf(AssemblyError, "targetset value must be 0 or 1")
		}
		return TargetSet{Item: o[0], Value: o[1] == 1}, nil
	case "enemyset":
		return EnemySet{Item: o[0]}, nil
	case "enemyreset":
		return EnemyReset{Item: o[0]}, nil
	case "obstacleset":
		return ObstacleSet{Item: o[0]}, nil
	case "obstaclereset":
		return ObstacleReset{Item: o[0]}, nil
	case "facing":
		return Facing{Angle: o[0]}, nil
	case "position":
		return Position{Point: o[0]}, nil
	case "move":
		return Move{Point: o[0]}, nil
	case "wait":
		if o[0] < 0 {
			return nil, curated.Errorf(AssemblyError, "negative wait")
		}
		return Wait{Duration: o[0]}, nil
	case "waitrandom":
		if o[0] < 0 || o[1] < 0 {
			return nil, curated.Errorf(AssemblyError, "negative wait")
		}
		return WaitRandom{Min: o[0], Max: o[1]}, nil
	case "rotate":
		return Rotate{Angle: o[0], Speed: o[1]}, nil
	case "shoot":
		return Shoot{Sound: o[0], Volume: o[1]}, nil
	case "playsound":
		return PlaySound{Sound: o[0], Volume: o[1]}, nil
	case "pausedset":
		return PausedSet{Item: o[0]}, nil
	case "pausedreset":
		return PausedReset{Item: o[0]}, nil
	case "pausedreset1of2":
		return PausedReset1of2{A: o[0], B: o[1]}, nil
	case "restart":
		return Restart{}, nil
	case "leave":
		return Leave{}, nil
	}

	// unreachable while arities and the switch agree
	return nil, curated.Errorf(AssemblyError, fmt.Sprintf("unhandled mnemonic %q", mnemonic))
}

// AssembleProgram assembles every line of a track program. Lines that are
// empty or begin with # are ignored.
func AssembleProgram(lines []string, sym Symbols) ([]Instruction, error) {
	var prog []Instruction
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		in, err := Assemble(l, sym)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		prog = append(prog, in)
	}
	return prog, nil
}
