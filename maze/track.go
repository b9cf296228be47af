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

// State of a track.
type State int

// List of valid State values.
const (
	Idle State = iota
	Running
	WaitingTimer
	WaitingRandomTimer
	Paused
	Restarting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case WaitingTimer:
		return "waiting"
	case WaitingRandomTimer:
		return "waiting (random)"
	case Paused:
		return "paused"
	case Restarting:
		return "restarting"
	}
	return "unknown"
}

// Track is the program bound to a single item.
type Track struct {
	Item    int
	Start   Vector
	End     Vector
	Steps   int
	Program []Instruction

	// primary tracks are unpaused when the maze starts
	Primary bool

	// index of the next instruction
	IP int

	phase  State
	paused bool

	// milliseconds remaining of the current wait
	waitLeft int

	// current and destination point on the path
	point       int
	pointTarget int
	moving      bool

	// destination angle and speed of rotation
	angleTarget int
	angleSpeed  int
	rotating    bool
}

func (trk *Track) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("track %d: %s ip=%d point=%d", trk.Item, trk.State(), trk.IP, trk.point))
	if trk.moving {
		s.WriteString(fmt.Sprintf(" moving to %d", trk.pointTarget))
	}
	if trk.rotating {
		s.WriteString(fmt.Sprintf(" rotating to %d", trk.angleTarget))
	}
	if trk.waitLeft > 0 {
		s.WriteString(fmt.Sprintf(" wait=%d", trk.waitLeft))
	}
	return s.String()
}

// State returns the current state of the track. A paused track reports
// Paused regardless of what it was doing when it was paused.
func (trk *Track) State() State {
	if trk.paused {
		return Paused
	}
	return trk.phase
}

// IsPaused returns true if the track is paused.
func (trk *Track) IsPaused() bool {
	return trk.paused
}

// Point returns the current point on the path.
func (trk *Track) Point() int {
	return trk.point
}

// pointPosition returns the world position of a point on the path. Points
// outside the path are clamped to the ends.
func (trk *Track) pointPosition(p int) Vector {
	if trk.Steps <= 1 || p <= 0 {
		return trk.Start
	}
	if p >= trk.Steps-1 {
		return trk.End
	}
	return lerp(trk.Start, trk.End, float64(p)/float64(trk.Steps-1))
}

func (trk *Track) clampPoint(p int) int {
	return max(0, min(p, trk.Steps-1))
}

func (trk *Track) pause() {
	trk.paused = true
}

// a track that has never run is considered to be running as soon as it is
// unpaused
func (trk *Track) unpause() {
	trk.paused = false
	if trk.phase == Idle {
		trk.phase = Running
	}
}

// TrackState is a copy of the dynamic state of a track.
type TrackState struct {
	Item        int
	IP          int
	Phase       State
	Paused      bool
	WaitLeft    int
	Point       int
	PointTarget int
	Moving      bool
	AngleTarget int
	AngleSpeed  int
	Rotating    bool
}

// Save the dynamic state of the track.
func (trk *Track) Save() TrackState {
	return TrackState{
		Item:        trk.Item,
		IP:          trk.IP,
		Phase:       trk.phase,
		Paused:      trk.paused,
		WaitLeft:    trk.waitLeft,
		Point:       trk.point,
		PointTarget: trk.pointTarget,
		Moving:      trk.moving,
		AngleTarget: trk.angleTarget,
		AngleSpeed:  trk.angleSpeed,
		Rotating:    trk.rotating,
	}
}

// Restore the dynamic state previously returned by Save().
func (trk *Track) Restore(st TrackState) {
	trk.IP = st.IP
	trk.phase = st.Phase
	trk.paused = st.Paused
	trk.waitLeft = st.WaitLeft
	trk.point = st.Point
	trk.pointTarget = st.PointTarget
	trk.moving = st.Moving
	trk.angleTarget = st.AngleTarget
	trk.angleSpeed = st.AngleSpeed
	trk.rotating = st.Rotating
}
