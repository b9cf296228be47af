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

package maze_test

import (
	"testing"

	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/random"
	"github.com/scenevm/scenevm/test"
)

// indexes into the globals used by the tests
const (
	score   = 0
	hits    = 1
	counter = 2
)

type sound struct {
	id     int
	volume int
}

type env struct {
	frame   int
	globals []int
	rnd     *random.Random

	// if not nil, replaces the random number generator
	draw func(min, max int) int

	sounds []sound
}

func newEnv() *env {
	e := &env{globals: make([]int, 8)}
	e.rnd = random.NewRandom(e)
	e.rnd.ZeroSeed = true
	return e
}

func (e *env) Frame() int     { return e.frame }
func (e *env) Globals() []int { return e.globals }
func (e *env) PlaySound(snd, vol, _ int) {
	e.sounds = append(e.sounds, sound{id: snd, volume: vol})
}

func (e *env) Random(min, max int) int {
	if e.draw != nil {
		return e.draw(min, max)
	}
	return e.rnd.Range(min, max)
}

func config(strict bool) maze.Config {
	cfg := maze.DefaultConfig()
	cfg.ScoreVar = score
	cfg.HitsVar = hits
	cfg.StrictOriginalBehavior = strict
	return cfg
}

// assemble program lines. the test fails immediately on error
func assemble(t *testing.T, lines ...string) []maze.Instruction {
	t.Helper()
	prog, err := maze.AssembleProgram(lines, nil)
	test.DemandSuccess(t, err)
	return prog
}

// add a target and a track with a path of four points along the x axis
func addTrack(t *testing.T, mz *maze.Maze, item int, primary bool, lines ...string) *maze.Track {
	t.Helper()
	_, err := mz.AddTarget(item, "", maze.Vector{}, 0)
	test.DemandSuccess(t, err)
	trk, err := mz.AddTrack(item, maze.Vector{}, maze.Vector{X: 30}, 4, assemble(t, lines...), primary)
	test.DemandSuccess(t, err)
	return trk
}

// tick the maze a number of times
func tick(t *testing.T, mz *maze.Maze, n int, elapsed int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, mz.Tick(elapsed))
	}
}
