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

package memman

import "fmt"

// Condition of a memory block.
type Condition int

// List of valid Condition values. Any value above DontFree is illegal.
const (
	// the block has no data. either it was never allocated or it was released
	Freed Condition = iota

	// the block may be evicted if the table is over budget
	CanFree

	// the block will not be evicted
	DontFree
)

func (c Condition) String() string {
	switch c {
	case Freed:
		return "freed"
	case CanFree:
		return "can free"
	case DontFree:
		return "don't free"
	}
	return fmt.Sprintf("illegal condition (%d)", int(c))
}

// Valid returns true if the condition is one that can be requested by a
// call to Allocate() or SetCondition().
func (c Condition) Valid() bool {
	return c == CanFree || c == DontFree
}
