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
)

// Operand is a value used by an Op. It is either a literal value or a
// reference to a global or instance-local variable.
type Operand interface {
	fmt.Stringer
	operand()
}

// Lit is a literal value.
type Lit int

// Global refers to an entry in the globals array of the simulation.
type Global int

// Local refers to a variable owned by the script instance.
type Local int

func (Lit) operand()    {}
func (Global) operand() {}
func (Local) operand()  {}

func (o Lit) String() string {
	return strconv.Itoa(int(o))
}

func (o Global) String() string {
	return fmt.Sprintf("g%d", int(o))
}

func (o Local) String() string {
	return fmt.Sprintf("l%d", int(o))
}

// MaxLocals is the number of local variables available to an instance.
const MaxLocals = 16

// ParseOperand converts the textual form of an operand. Literals are decimal
// integers, globals are prefixed with 'g' and locals with 'l'.
func ParseOperand(s string) (Operand, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, fmt.Errorf("empty operand")
	}

	var ref func(int) Operand
	switch s[0] {
	case 'g':
		ref = func(n int) Operand { return Global(n) }
	case 'l':
		ref = func(n int) Operand { return Local(n) }
	}

	if ref == nil {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("operand %q is not a number", s)
		}
		return Lit(v), nil
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("operand %q is not a valid variable", s)
	}
	if _, ok := ref(n).(Local); ok && n >= MaxLocals {
		return nil, fmt.Errorf("local variable %q out of range", s)
	}

	return ref(n), nil
}
