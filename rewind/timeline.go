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

// Timeline provides a summary of the history of the simulation. It is kept
// for every recorded frame, whatever the snapshot frequency.
type Timeline struct {
	FrameNum []int

	// the number of live script instances in both lists
	Instances []int

	// the number of visible targets and the number of those that can be shot
	Visible    []int
	Targetable []int
}

const timelineLength = 1000

func newTimeline() Timeline {
	return Timeline{
		FrameNum:   make([]int, 0),
		Instances:  make([]int, 0),
		Visible:    make([]int, 0),
		Targetable: make([]int, 0),
	}
}

func (tl *Timeline) add(s *snapshot.Snapshot) {
	var vis, tgt int
	for _, t := range s.Maze.Targets {
		if t.Visible() {
			vis++
			if t.Targetable {
				tgt++
			}
		}
	}

	tl.FrameNum = append(tl.FrameNum, s.Frame)
	tl.Instances = append(tl.Instances, len(s.Rel)+len(s.Proc))
	tl.Visible = append(tl.Visible, vis)
	tl.Targetable = append(tl.Targetable, tgt)

	if len(tl.FrameNum) > timelineLength {
		tl.FrameNum = tl.FrameNum[1:]
		tl.Instances = tl.Instances[1:]
		tl.Visible = tl.Visible[1:]
		tl.Targetable = tl.Targetable[1:]
	}
}

// remove every entry at or after the frame
func (tl *Timeline) splice(frame int) {
	n := len(tl.FrameNum)
	for n > 0 && tl.FrameNum[n-1] >= frame {
		n--
	}
	tl.FrameNum = tl.FrameNum[:n]
	tl.Instances = tl.Instances[:n]
	tl.Visible = tl.Visible[:n]
	tl.Targetable = tl.Targetable[:n]
}

// GetTimeline returns a copy of the timeline.
func (r *Rewind) GetTimeline() Timeline {
	return Timeline{
		FrameNum:   append([]int(nil), r.timeline.FrameNum...),
		Instances:  append([]int(nil), r.timeline.Instances...),
		Visible:    append([]int(nil), r.timeline.Visible...),
		Targetable: append([]int(nil), r.timeline.Targetable...),
	}
}
