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

package rewind

import (
	"github.com/scenevm/scenevm/snapshot"
)

// ComparisonState is returned by GetComparisonState().
type ComparisonState struct {
	State  *snapshot.Snapshot
	Locked bool
}

// GetComparisonState gets a reference to current comparison point.
func (r *Rewind) GetComparisonState() ComparisonState {
	return ComparisonState{
		State:  r.comparison,
		Locked: r.comparisonLocked,
	}
}

// UpdateComparison points comparison to the current state.
func (r *Rewind) UpdateComparison() {
	if r.comparisonLocked {
		return
	}
	r.comparison = r.sim.Snapshot()
}

// SetComparison points comparison to the latest entry at or before the frame.
func (r *Rewind) SetComparison(frame int) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Frame <= frame {
			r.comparison = r.entries[i]
			return
		}
	}
}

// LockComparison stops the comparison point from being updated.
func (r *Rewind) LockComparison(locked bool) {
	r.comparisonLocked = locked
}

// Difference is a global variable that has changed since the comparison point.
type Difference struct {
	Global int
	Was    int
	Now    int
}

// CompareGlobals returns the globals that differ between the comparison point
// and the current state.
func (r *Rewind) CompareGlobals() []Difference {
	if r.comparison == nil {
		return nil
	}
	cur := r.sim.Snapshot()
	if cur == nil {
		return nil
	}

	var d []Difference
	for i := range min(len(cur.Globals), len(r.comparison.Globals)) {
		if cur.Globals[i] != r.comparison.Globals[i] {
			d = append(d, Difference{Global: i, Was: r.comparison.Globals[i], Now: cur.Globals[i]})
		}
	}
	return d
}
