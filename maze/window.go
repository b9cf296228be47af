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
	"strings"
)

// Violation is a point in a track program where the target window of the
// track's item is left open after the item has been hidden or its track
// paused.
type Violation struct {
	Item  int
	Index int
	Instr Instruction

	// the instruction that hid the item. only set if the violation was found
	// at a blocking instruction
	Hidden int
}

func (v Violation) String() string {
	if v.Hidden >= 0 {
		return fmt.Sprintf("item %d: target window open at %d (%s) after hide at %d", v.Item, v.Index, v.Instr, v.Hidden)
	}
	return fmt.Sprintf("item %d: target window open at %d (%s)", v.Item, v.Index, v.Instr)
}

// Violations is a list of Violation instances.
type Violations []Violation

func (vs Violations) String() string {
	s := strings.Builder{}
	for _, v := range vs {
		s.WriteString(v.String())
		s.WriteString("\n")
	}
	return s.String()
}

type window int

const (
	windowUnknown window = iota
	windowOpen
	windowClosed
)

// CheckTargetWindow examines the program of a track for places where the
// item is hidden while its target window is open. Hiding an item with an
// open window is allowed only if the window is closed before the next
// blocking instruction. Pausing the track of the item while the window is
// open is never allowed. This includes a PausedReset1of2 that names the item,
// which may pause the track.
//
// The state of the window on entry to the program is unknown and is treated
// as open. Only the instructions that affect the item itself are considered.
func CheckTargetWindow(item int, program []Instruction) Violations {
	var vs Violations

	state := windowUnknown
	hidden := -1

	for i, in := range program {
		switch in := in.(type) {
		case TargetSet:
			if in.Item == item {
				if in.Value {
					state = windowOpen
				} else {
					state = windowClosed
					hidden = -1
				}
			}
		case ObstacleReset:
			if in.Item == item && state != windowClosed {
				hidden = i
			}
		case PausedSet:
			if in.Item == item && state != windowClosed {
				vs = append(vs, Violation{Item: item, Index: i, Instr: in, Hidden: -1})
			}
		case PausedReset1of2:
			// the item's track may be the one that is paused
			if in.A != in.B && (in.A == item || in.B == item) && state != windowClosed {
				vs = append(vs, Violation{Item: item, Index: i, Instr: in, Hidden: -1})
			}
		}

		if blocking(in) && hidden >= 0 {
			vs = append(vs, Violation{Item: item, Index: i, Instr: in, Hidden: hidden})
			hidden = -1
		}
	}

	// the end of the program is treated as a blocking instruction
	if hidden >= 0 && len(program) > 0 {
		vs = append(vs, Violation{Item: item, Index: len(program) - 1, Instr: program[len(program)-1], Hidden: hidden})
	}

	return vs
}

// CheckTargetWindows runs CheckTargetWindow() for every track in the maze.
func (mz *Maze) CheckTargetWindows() Violations {
	var vs Violations
	for _, id := range mz.trackOrder {
		trk := mz.tracks[id]
		vs = append(vs, CheckTargetWindow(trk.Item, trk.Program)...)
	}
	return vs
}
