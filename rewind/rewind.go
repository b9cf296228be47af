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
	"fmt"
	"sort"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/prefs"
	"github.com/scenevm/scenevm/snapshot"
)

// Simulation is the simulation being rewound. It is implemented by
// simulation.State.
type Simulation interface {
	Frame() int
	Step() error
	Snapshot() *snapshot.Snapshot
	Restore(s *snapshot.Snapshot) error
	Silence(silenced bool)
}

// Rewind contains a history of snapshots of the simulation.
type Rewind struct {
	sim   Simulation
	Prefs *Preferences

	// snapshots in frame order. the first entry is the oldest
	entries []*snapshot.Snapshot

	// pointer to the comparison point
	comparison       *snapshot.Snapshot
	comparisonLocked bool

	timeline Timeline
}

// NewRewind is the preferred method of initialisation for the Rewind type. A
// nil Preferences instance is replaced by DefaultPreferences().
func NewRewind(sim Simulation, prf *Preferences) *Rewind {
	if prf == nil {
		prf = DefaultPreferences()
	}
	r := &Rewind{
		sim:      sim,
		Prefs:    prf,
		timeline: newTimeline(),
	}
	prf.MaxEntries.SetHookPost(func(_ prefs.Value) error {
		r.trim()
		return nil
	})
	return r
}

func (r *Rewind) String() string {
	if len(r.entries) == 0 {
		return "no entries"
	}
	f := r.GetFrames()
	return fmt.Sprintf("%d entries: frames %d to %d (current %d)", len(r.entries), f.Start, f.End, f.Current)
}

// Reset removes all entries and takes a snapshot of the current state. This
// should be called whenever a new scene is loaded.
func (r *Rewind) Reset() {
	r.entries = r.entries[:0]
	r.timeline = newTimeline()
	r.comparison = nil
	if s := r.sim.Snapshot(); s != nil {
		r.entries = append(r.entries, s)
		r.comparison = s
	}
}

// RecordFrame should be called after every successful call to Step().
func (r *Rewind) RecordFrame() {
	fn := r.sim.Frame()

	// forget frames that were rewound
	r.splice(fn)
	r.timeline.splice(fn)

	s := r.sim.Snapshot()
	if s == nil {
		return
	}
	r.timeline.add(s)

	if len(r.entries) > 0 && fn%r.Prefs.freq() != 0 {
		return
	}
	r.entries = append(r.entries, s)
	r.trim()
}

// remove every entry at or after the frame
func (r *Rewind) splice(frame int) {
	for len(r.entries) > 1 && r.entries[len(r.entries)-1].Frame >= frame {
		r.entries = r.entries[:len(r.entries)-1]
	}
}

// remove the oldest entries until the number of entries is within the
// maximum
func (r *Rewind) trim() {
	if n := len(r.entries) - r.Prefs.maxEntries(); n > 0 {
		r.entries = append(r.entries[:0], r.entries[n:]...)
	}
}

// Frames of the current state of the rewind system.
type Frames struct {
	Start   int
	End     int
	Current int
}

// GetFrames returns the earliest and latest frames in the history and the
// current frame of the simulation.
func (r *Rewind) GetFrames() Frames {
	f := Frames{Current: r.sim.Frame()}
	if len(r.entries) > 0 {
		f.Start = r.entries[0].Frame
		f.End = r.entries[len(r.entries)-1].Frame
	}
	return f
}

// run the simulation from the snapshot until the frame is reached
func (r *Rewind) plumb(s *snapshot.Snapshot, frame int) error {
	if err := r.sim.Restore(s); err != nil {
		return curated.Errorf(RewindError, err)
	}

	r.sim.Silence(true)
	defer r.sim.Silence(false)

	for r.sim.Frame() < frame {
		if err := r.sim.Step(); err != nil {
			return curated.Errorf(RewindError, err)
		}
	}

	return nil
}

// GotoLast sets the simulation to the last entry in the history.
func (r *Rewind) GotoLast() error {
	if len(r.entries) == 0 {
		return curated.Errorf(NoEntries)
	}
	s := r.entries[len(r.entries)-1]
	return r.plumb(s, s.Frame)
}

// GotoFrame sets the simulation to the frame. If the frame is outside the
// history the nearest frame is used. Returns the frame the simulation was set
// to.
func (r *Rewind) GotoFrame(frame int) (int, error) {
	if len(r.entries) == 0 {
		return r.sim.Frame(), curated.Errorf(NoEntries)
	}

	first := r.entries[0]
	if frame <= first.Frame {
		return first.Frame, r.plumb(first, first.Frame)
	}
	last := r.entries[len(r.entries)-1]
	if frame >= last.Frame {
		return last.Frame, r.plumb(last, last.Frame)
	}

	// the latest entry at or before the frame
	idx := sort.Search(len(r.entries), func(i int) bool {
		return r.entries[i].Frame > frame
	}) - 1

	return frame, r.plumb(r.entries[idx], frame)
}
