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

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
)

// Env is the world the maze runs in.
type Env interface {
	// the global variables of the game. the maze keeps the score, the number
	// of hits taken by the player and the target counters in the globals
	Globals() []int

	// random number between min and max inclusive
	Random(min, max int) int

	PlaySound(sound, volume, pan int)
}

// DefaultInstructionLimit is the number of instructions a single track may
// execute in one tick.
const DefaultInstructionLimit = 1000

// Config for a Maze.
type Config struct {
	// index of the score and hit counters in the globals. a negative index
	// means the counter is not kept
	ScoreVar int
	HitsVar  int

	// the click handler spins the clicked item rather than the visible member
	// of its group and items start the scene targetable
	StrictOriginalBehavior bool

	// instruction ceiling per track per tick
	Limit int

	// duration of the feedback spin in milliseconds
	SpinDuration int

	// added to the hit counter when an item shoots the player
	ShotDamage int
}

// DefaultConfig returns a Config with no score or hit counters.
func DefaultConfig() Config {
	return Config{
		ScoreVar:     -1,
		HitsVar:      -1,
		Limit:        DefaultInstructionLimit,
		SpinDuration: 1000,
		ShotDamage:   1,
	}
}

// Maze is the collection of targets and tracks for a scene.
type Maze struct {
	env Env
	cfg Config

	// log entries are made if permission allows it
	Permission logger.Permission

	targets     map[int]*Target
	targetOrder []int

	tracks     map[int]*Track
	trackOrder []int

	// items that are presented as alternatives of each other. a click on one
	// member of a group closes the target window of every member
	groups map[int][]int

	sounds map[int]ClickSound

	paused bool
}

// NewMaze is the preferred method of initialisation for the Maze type. The
// maze starts paused.
func NewMaze(env Env, cfg Config) *Maze {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultInstructionLimit
	}
	return &Maze{
		env:        env,
		cfg:        cfg,
		Permission: logger.Allow,
		targets:    make(map[int]*Target),
		tracks:     make(map[int]*Track),
		groups:     make(map[int][]int),
		sounds:     make(map[int]ClickSound),
		paused:     true,
	}
}

func (mz *Maze) String() string {
	s := strings.Builder{}
	if mz.paused {
		s.WriteString("maze: paused\n")
	} else {
		s.WriteString("maze: running\n")
	}
	for _, id := range mz.trackOrder {
		s.WriteString(mz.tracks[id].String())
		s.WriteString("\n")
	}
	for _, id := range mz.targetOrder {
		s.WriteString(mz.targets[id].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Config returns the configuration of the maze.
func (mz *Maze) Config() Config {
	return mz.cfg
}

// AddTarget adds an item to the world. The target window of the item is open
// on entry only when StrictOriginalBehavior is set.
func (mz *Maze) AddTarget(id int, name string, pos Vector, facing int) (*Target, error) {
	if _, ok := mz.targets[id]; ok {
		return nil, curated.Errorf(DuplicateItem, id)
	}
	t := &Target{
		ID:         id,
		Name:       name,
		Targetable: mz.cfg.StrictOriginalBehavior,
		InWorld:    true,
		Position:   pos,
		Facing:     normaliseAngle(facing),
	}
	mz.targets[id] = t
	mz.targetOrder = append(mz.targetOrder, id)
	return t, nil
}

// AddTrack binds a program to an item. The item must have been added with
// AddTarget() and may only have one track.
func (mz *Maze) AddTrack(item int, start, end Vector, steps int, program []Instruction, primary bool) (*Track, error) {
	if _, ok := mz.targets[item]; !ok {
		return nil, curated.Errorf(UnknownItem, item)
	}
	if _, ok := mz.tracks[item]; ok {
		return nil, curated.Errorf(DuplicateItem, item)
	}
	if steps < 1 {
		return nil, curated.Errorf(BadTrack, item, "path must have at least one point")
	}
	if len(program) == 0 {
		return nil, curated.Errorf(BadTrack, item, "empty program")
	}

	trk := &Track{
		Item:    item,
		Start:   start,
		End:     end,
		Steps:   steps,
		Program: program,
		Primary: primary,
		paused:  !primary,
	}
	mz.tracks[item] = trk
	mz.trackOrder = append(mz.trackOrder, item)
	return trk, nil
}

// AddGroup declares items that stand in for each other. Only one member of a
// group is visible at a time.
func (mz *Maze) AddGroup(items ...int) error {
	for _, id := range items {
		if _, ok := mz.targets[id]; !ok {
			return curated.Errorf(UnknownItem, id)
		}
	}
	for _, id := range items {
		mz.groups[id] = items
	}
	return nil
}

// SetClickSound sets the feedback sound for an item.
func (mz *Maze) SetClickSound(item int, snd ClickSound) {
	mz.sounds[item] = snd
}

// Validate checks that every item referred to by a track program exists and
// that every point is on the path of the track.
func (mz *Maze) Validate() error {
	for _, id := range mz.trackOrder {
		trk := mz.tracks[id]
		for i, in := range trk.Program {
			if err := mz.validate(trk, in); err != nil {
				return curated.Errorf(BadTrack, trk.Item, fmt.Sprintf("instruction %d (%s): %v", i, in, err))
			}
		}
	}
	return nil
}

func (mz *Maze) validate(trk *Track, in Instruction) error {
	target := func(id int) error {
		if _, ok := mz.targets[id]; !ok {
			return curated.Errorf(UnknownItem, id)
		}
		return nil
	}
	track := func(id int) error {
		if _, ok := mz.tracks[id]; !ok {
			return curated.Errorf(UnknownItem, id)
		}
		return nil
	}
	point := func(p int) error {
		if p < 0 || p >= trk.Steps {
			return fmt.Errorf("point %d not on path of %d points", p, trk.Steps)
		}
		return nil
	}
	variable := func(v int) error {
		if v < 0 || v >= len(mz.env.Globals()) {
			return fmt.Errorf("no global variable %d", v)
		}
		return nil
	}

	switch in := in.(type) {
	case Activate:
		return variable(in.Var)
	case VariableInc:
		return variable(in.Var)
	case TargetSet:
		return target(in.Item)
	case EnemySet:
		return target(in.Item)
	case EnemyReset:
		return target(in.Item)
	case ObstacleSet:
		return target(in.Item)
	case ObstacleReset:
		return target(in.Item)
	case Position:
		return point(in.Point)
	case Move:
		return point(in.Point)
	case WaitRandom:
		if in.Min > in.Max {
			return fmt.Errorf("minimum wait greater than maximum")
		}
	case PausedSet:
		return track(in.Item)
	case PausedReset:
		return track(in.Item)
	case PausedReset1of2:
		if err := track(in.A); err != nil {
			return err
		}
		return track(in.B)
	}
	return nil
}

// Target returns the target for the item or nil if it doesn't exist.
func (mz *Maze) Target(id int) *Target {
	return mz.targets[id]
}

// Track returns the track for the item or nil if it doesn't exist.
func (mz *Maze) Track(id int) *Track {
	return mz.tracks[id]
}

// Targets returns all targets in the order they were added.
func (mz *Maze) Targets() []*Target {
	t := make([]*Target, 0, len(mz.targetOrder))
	for _, id := range mz.targetOrder {
		t = append(t, mz.targets[id])
	}
	return t
}

// Tracks returns all tracks in the order they were added.
func (mz *Maze) Tracks() []*Track {
	t := make([]*Track, 0, len(mz.trackOrder))
	for _, id := range mz.trackOrder {
		t = append(t, mz.tracks[id])
	}
	return t
}

// SetPaused pauses or resumes the entire maze. The paused state of individual
// tracks is not changed.
func (mz *Maze) SetPaused(paused bool) {
	mz.paused = paused
}

// IsPaused returns true if the entire maze is paused.
func (mz *Maze) IsPaused() bool {
	return mz.paused
}

// RemoveTargets takes every item out of the world and pauses the maze.
func (mz *Maze) RemoveTargets() {
	for _, t := range mz.targets {
		t.InWorld = false
		t.Targetable = false
		t.SpinLeft = 0
	}
	mz.paused = true
}

// Abandon is called when the player leaves the scene before every target has
// appeared. The player is penalised one point for every target not yet seen
// and the counter is set to count.
func (mz *Maze) Abandon(counterVar int, count int) error {
	g := mz.env.Globals()
	if counterVar < 0 || counterVar >= len(g) {
		return fmt.Errorf("maze: no global variable %d", counterVar)
	}
	if g[counterVar] < count {
		if err := mz.addGlobal(mz.cfg.ScoreVar, -(count - g[counterVar])); err != nil {
			return err
		}
		g[counterVar] = count
	}
	mz.RemoveTargets()
	return nil
}

// addGlobal adds n to a global variable. a negative index is ignored.
func (mz *Maze) addGlobal(v int, n int) error {
	if v < 0 {
		return nil
	}
	g := mz.env.Globals()
	if v >= len(g) {
		return fmt.Errorf("maze: no global variable %d", v)
	}
	g[v] += n
	return nil
}

// MazeState is a copy of the dynamic state of the maze.
type MazeState struct {
	Paused  bool
	Targets []Target
	Tracks  []TrackState
}

// Save the dynamic state of the maze.
func (mz *Maze) Save() MazeState {
	st := MazeState{Paused: mz.paused}
	for _, id := range mz.targetOrder {
		st.Targets = append(st.Targets, *mz.targets[id])
	}
	for _, id := range mz.trackOrder {
		st.Tracks = append(st.Tracks, mz.tracks[id].Save())
	}
	return st
}

// Restore state previously returned by Save(). Targets and tracks in the
// state that are not in the maze are ignored.
func (mz *Maze) Restore(st MazeState) {
	mz.paused = st.Paused
	for _, t := range st.Targets {
		if c, ok := mz.targets[t.ID]; ok {
			*c = t
		}
	}
	for _, ts := range st.Tracks {
		if trk, ok := mz.tracks[ts.Item]; ok {
			trk.Restore(ts)
		}
	}
}
