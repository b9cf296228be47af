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

package simulation

import (
	"fmt"
	"sync"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/prefs"
	"github.com/scenevm/scenevm/random"
	"github.com/scenevm/scenevm/scene"
	"github.com/scenevm/scenevm/script"
)

// NumGlobals is the number of global variables.
const NumGlobals = 256

// a retarget request queued by the host. applied after the lists have been
// advanced
type retarget struct {
	kind      script.Kind
	overlay   int
	script    int
	oldFreeze int
	newFreeze int
}

// State of the simulation.
//
// Functions that change the simulation, and the Snapshot() function, are
// safe to call from any goroutine. The functions that implement the
// script.Env, maze.Env and scene.Stage interfaces are called while the
// simulation is locked and should not be called directly. Nor should the
// accessor functions Frame(), Rand(), Mem(), List(), Library() and Maze() be
// called while a frame is being run on another goroutine.
type State struct {
	crit sync.Mutex

	prefs *Preferences

	sc     *scene.Scene
	exited bool

	frame   int
	globals []int

	mem   *memman.Table
	slots map[int]memman.Handle

	rel    *script.List
	proc   *script.List
	lib    *script.Library
	interp *script.Interpreter

	mz  *maze.Maze
	rnd *random.Random

	renderer Renderer
	audio    Audio

	retargets []retarget
	ambient   ambient

	// a silenced simulation makes no log entries
	silenced bool
}

// NewState is the preferred method of initialisation for the State type. A
// nil Preferences instance is replaced by DefaultPreferences(). The renderer
// and audio are headless until replaced.
func NewState(prf *Preferences) *State {
	if prf == nil {
		prf = DefaultPreferences()
	}

	st := &State{
		prefs:   prf,
		globals: make([]int, NumGlobals),
		slots:   make(map[int]memman.Handle),
		rel:     script.NewList(script.Rel),
		proc:    script.NewList(script.Proc),
		lib:     script.NewLibrary(),
	}

	st.mem = memman.NewTable(prf.MaxAlloc.Get().(int))
	st.mem.Permission = st
	st.mem.OnEvict = st.evicted
	prf.MaxAlloc.SetHookPost(func(v prefs.Value) error {
		st.mem.SetMaxAlloc(v.(int))
		return nil
	})

	st.rnd = random.NewRandom(st)
	st.interp = st.newInterpreter()

	h := NewHeadless(st)
	st.renderer = h
	st.audio = h

	return st
}

func (st *State) String() string {
	st.crit.Lock()
	defer st.crit.Unlock()
	if st.sc == nil {
		return fmt.Sprintf("frame %d: no scene", st.frame)
	}
	return fmt.Sprintf("frame %d: %s", st.frame, st.sc)
}

func (st *State) newInterpreter() *script.Interpreter {
	in := script.NewInterpreter(st, st.lib)
	in.Limit = st.prefs.ScriptLimit.Get().(int)
	in.Ticks = st.prefs.FrameTicks.Get().(int)
	return in
}

// AttachRenderer replaces the renderer. A nil renderer is replaced by a
// Headless renderer.
func (st *State) AttachRenderer(r Renderer) {
	st.crit.Lock()
	defer st.crit.Unlock()
	if r == nil {
		r = NewHeadless(st)
	}
	st.renderer = r
}

// AttachAudio replaces the audio. A nil audio is replaced by a Headless
// audio.
//
// The loops of the ambient sounds are stopped on the previous audio and
// started on the new audio.
func (st *State) AttachAudio(a Audio) {
	st.crit.Lock()
	defer st.crit.Unlock()
	if a == nil {
		a = NewHeadless(st)
	}
	st.audio.StopLoops()
	st.audio = a
	if st.sc != nil && !st.exited {
		st.ambient.playLoops(st)
	}
}

// Silence stops the simulation from making log entries. Used when replaying
// frames that have been seen before.
func (st *State) Silence(silenced bool) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.silenced = silenced
}

// AllowLogging implements the logger.Permission interface.
func (st *State) AllowLogging() bool {
	return !st.silenced
}

// Frame implements the random.FrameCounter interface. The frame number is
// incremented at the start of every call to Step().
func (st *State) Frame() int {
	return st.frame
}

// Preferences returns the preferences of the simulation.
func (st *State) Preferences() *Preferences {
	return st.prefs
}

// Rand returns the random number source of the simulation.
func (st *State) Rand() *random.Random {
	return st.rnd
}

// Mem returns the resource table.
func (st *State) Mem() *memman.Table {
	return st.mem
}

// Scene returns the scene being played. Returns nil if no scene is loaded.
func (st *State) Scene() *scene.Scene {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.sc
}

// List returns the script instance list of the kind.
func (st *State) List(kind script.Kind) *script.List {
	if kind == script.Rel {
		return st.rel
	}
	return st.proc
}

// Library implements the scene.Stage interface.
func (st *State) Library() *script.Library {
	return st.lib
}

// Maze implements the scene.Stage interface. Returns nil if no scene is
// loaded.
func (st *State) Maze() *maze.Maze {
	return st.mz
}

// reset everything that belongs to a scene
func (st *State) reset() {
	st.audio.StopLoops()
	st.sc = nil
	st.exited = false
	st.frame = 0
	st.rnd.Reset()
	clear(st.globals)
	st.rel.Clear()
	st.proc.Clear()
	st.releaseSlots()
	st.retargets = st.retargets[:0]
	st.ambient = ambient{}
	st.lib = script.NewLibrary()
	st.interp = st.newInterpreter()
	st.mz = nil
}

// called by the resource table when a block is evicted. blocks that do not
// belong to a slot have been loaded by the audio
func (st *State) evicted(h memman.Handle, size int) {
	for slot, sh := range st.slots {
		if sh == h {
			logger.Logf(st, "simulation", "slot %d evicted (%d bytes)", slot, size)
			return
		}
	}
	logger.Logf(st, "simulation", "resource %s evicted (%d bytes)", h, size)
}

func (st *State) releaseSlots() {
	for _, h := range st.slots {
		st.mem.Release(h)
	}
	clear(st.slots)
}

// LoadScene replaces the current scene. Everything belonging to the previous
// scene is discarded.
func (st *State) LoadScene(sc *scene.Scene) error {
	st.crit.Lock()
	defer st.crit.Unlock()

	st.reset()

	cfg := sc.MazeConfig(st.prefs.MazeConfig())
	st.mz = maze.NewMaze(st, cfg)
	st.mz.Permission = st

	if err := sc.Install(st); err != nil {
		st.mz = nil
		return err
	}

	for _, v := range st.mz.CheckTargetWindows() {
		logger.Logf(st, "simulation", "%s: %s", describe(sc.Name, sc.Original), v)
	}

	st.sc = sc
	st.ambient.start(st, sc.Ambient)
	st.renderer.UpdateTargets(st.targets())
	logger.Logf(st, "simulation", "loaded %s", sc)

	return nil
}

// Step runs a single frame of the simulation.
func (st *State) Step() error {
	st.crit.Lock()
	defer st.crit.Unlock()

	if st.sc == nil {
		return curated.Errorf(NoScene)
	}

	st.frame++
	if err := st.step(); err != nil {
		err = curated.Errorf(FrameFault, st.frame, err)
		logger.Log(st, "simulation", err)
		return err
	}

	return nil
}

func (st *State) step() error {
	if err := st.rel.AdvanceAll(st.interp); err != nil {
		return err
	}
	if err := st.proc.AdvanceAll(st.interp); err != nil {
		return err
	}
	st.rel.SweepFinished()
	st.proc.SweepFinished()

	for _, r := range st.retargets {
		st.List(r.kind).Retarget(r.overlay, r.script, r.oldFreeze, r.newFreeze)
	}
	st.retargets = st.retargets[:0]

	elapsed := st.prefs.FrameDuration.Get().(int)
	if err := st.mz.Tick(elapsed); err != nil {
		return err
	}
	st.renderer.UpdateTargets(st.targets())

	if !st.exited {
		st.ambient.tick(st, elapsed)
	}

	return nil
}

// copy of every target in the maze
func (st *State) targets() []maze.Target {
	t := st.mz.Targets()
	c := make([]maze.Target, len(t))
	for i := range t {
		c[i] = *t[i]
	}
	return c
}

// QueueRetarget requests a change of freeze value for the matching instances
// in the list of the kind. The request is applied in the next frame, after the
// lists have been advanced. A value of -1 for overlay, script or oldFreeze
// matches any value.
func (st *State) QueueRetarget(kind script.Kind, overlay, scr, oldFreeze, newFreeze int) {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.queueRetarget(kind, overlay, scr, oldFreeze, newFreeze)
}

func (st *State) queueRetarget(kind script.Kind, overlay, scr, oldFreeze, newFreeze int) {
	st.retargets = append(st.retargets, retarget{
		kind:      kind,
		overlay:   overlay,
		script:    scr,
		oldFreeze: oldFreeze,
		newFreeze: newFreeze,
	})
}

// ResumeUserWait unfreezes every instance in both lists that is waiting for
// the user.
func (st *State) ResumeUserWait() {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.queueRetarget(script.Rel, -1, -1, script.FreezeUserWait, script.FreezeNone)
	st.queueRetarget(script.Proc, -1, -1, script.FreezeUserWait, script.FreezeNone)
}

// ResumeAutoTrack unfreezes every instance in both lists that is waiting for
// an automatic track to complete.
func (st *State) ResumeAutoTrack() {
	st.crit.Lock()
	defer st.crit.Unlock()
	st.queueRetarget(script.Rel, -1, -1, script.FreezeAutoTrack, script.FreezeNone)
	st.queueRetarget(script.Proc, -1, -1, script.FreezeAutoTrack, script.FreezeNone)
}

// Click is the player shooting at an item. Returns true if the click
// succeeded.
func (st *State) Click(item int) (bool, error) {
	st.crit.Lock()
	defer st.crit.Unlock()

	if st.sc == nil {
		return false, curated.Errorf(NoScene)
	}
	if st.exited {
		return false, nil
	}

	ok, err := st.mz.Click(item)
	if err != nil {
		logger.Log(st, "simulation", err)
		return false, err
	}
	if ok {
		st.renderer.UpdateTargets(st.targets())
	}
	return ok, nil
}

// Result of a scene.
type Result struct {
	Scene    string
	Original bool
	Exit     int
	Score    int
	Hits     int
	Frames   int
	Abandon  bool
}

func (r Result) String() string {
	return fmt.Sprintf("%s: score %d, hits %d in %d frames (exit %d)", r.Scene, r.Score, r.Hits, r.Frames, r.Exit)
}

// Exit leaves the scene through the exit with the ID. Every target is taken
// out of the world and the ambient sounds are stopped. Script instances
// continue to run with subsequent calls to Step().
func (st *State) Exit(id int) (Result, error) {
	st.crit.Lock()
	defer st.crit.Unlock()

	if st.sc == nil {
		return Result{}, curated.Errorf(NoScene)
	}

	e, ok := st.sc.Exit(id)
	if !ok {
		return Result{}, curated.Errorf(UnknownExit, id)
	}

	if e.Abandon && st.sc.Counter >= 0 {
		if err := st.mz.Abandon(st.sc.Counter, st.sc.Count); err != nil {
			return Result{}, err
		}
	} else {
		st.mz.RemoveTargets()
	}

	st.exited = true
	st.audio.StopLoops()
	st.ambient = ambient{}
	st.renderer.UpdateTargets(st.targets())

	r := Result{
		Scene:    st.sc.Name,
		Original: st.sc.Original,
		Exit:     id,
		Score:    st.global(st.sc.Score),
		Hits:     st.global(st.sc.Hits),
		Frames:   st.frame,
		Abandon:  e.Abandon,
	}
	logger.Log(st, "simulation", r)

	return r, nil
}

// value of global variable. zero if the index is out of range
func (st *State) global(v int) int {
	if v < 0 || v >= len(st.globals) {
		return 0
	}
	return st.globals[v]
}

// Global returns the value of a global variable. Returns zero if the index is
// out of range.
func (st *State) Global(v int) int {
	st.crit.Lock()
	defer st.crit.Unlock()
	return st.global(v)
}
