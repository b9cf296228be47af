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

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/test"
)

func TestStartsPaused(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "obstacleset 1", "restart")
	test.ExpectSuccess(t, mz.IsPaused())

	tick(t, mz, 5, 66)
	test.ExpectFailure(t, mz.Target(1).Visible())

	mz.SetPaused(false)
	tick(t, mz, 1, 66)
	test.ExpectSuccess(t, mz.Target(1).Visible())
}

func TestPrimaryTracks(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	a := addTrack(t, mz, 1, true, "wait 1000", "restart")
	b := addTrack(t, mz, 2, false, "wait 1000", "restart")
	mz.SetPaused(false)

	test.ExpectEquality(t, a.State(), maze.Idle)
	test.ExpectEquality(t, b.State(), maze.Paused)

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, a.State(), maze.WaitingTimer)
	test.ExpectEquality(t, b.State(), maze.Paused)
}

func TestMoveAndPosition(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true, "position 0", "move 3", "restart")
	mz.SetPaused(false)

	// position is immediate. the move starts on the next tick
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, trk.Point(), 0)

	for p := 1; p <= 3; p++ {
		tick(t, mz, 1, 66)
		test.ExpectEquality(t, trk.Point(), p)
		test.ExpectApproximate(t, mz.Target(1).Position.X, float64(p*10), 0.0001)
	}

	// the move has completed but the restart is not executed until the next
	// tick
	test.ExpectEquality(t, trk.State(), maze.Running)
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, trk.State(), maze.Restarting)
	test.ExpectEquality(t, trk.IP, 0)

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, trk.Point(), 0)
	test.ExpectEquality(t, trk.State(), maze.Running)
}

func TestRotate(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "facing 0", "rotate 1000 10", "pausedset 1", "restart")
	mz.SetPaused(false)

	// the shortest way from 0 to 1000 is backwards
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, mz.Target(1).Facing, 0)
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, mz.Target(1).Facing, 1014)
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, mz.Target(1).Facing, 1004)
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, mz.Target(1).Facing, 1000)
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, mz.Track(1).State(), maze.Paused)
	test.ExpectEquality(t, mz.Target(1).Facing, 1000)
}

func TestWait(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true, "wait 200", "obstacleset 1", "pausedset 1", "restart")
	mz.SetPaused(false)

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, trk.State(), maze.WaitingTimer)
	tick(t, mz, 3, 66)
	test.ExpectEquality(t, trk.State(), maze.WaitingTimer)
	test.ExpectFailure(t, mz.Target(1).Visible())

	// the instructions after the wait are executed in the same tick that the
	// wait expires
	tick(t, mz, 1, 66)
	test.ExpectSuccess(t, mz.Target(1).Visible())
	test.ExpectEquality(t, trk.State(), maze.Paused)
}

// a ranged wait with equal bounds is always exactly that long
func TestDegenerateRandomWait(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true, "waitrandom 5000 5000", "variableinc 3 100", "restart")
	mz.SetPaused(false)

	for i := range 10 {
		e.frame++
		tick(t, mz, 1, 0)
		test.ExpectEquality(t, trk.State(), maze.WaitingRandomTimer, i)

		tick(t, mz, 1, 4999)
		test.ExpectEquality(t, trk.State(), maze.WaitingRandomTimer, i)
		test.ExpectEquality(t, e.globals[3], i, i)

		tick(t, mz, 1, 1)
		test.ExpectEquality(t, trk.State(), maze.Restarting, i)
		test.ExpectEquality(t, e.globals[3], i+1, i)
	}
}

func TestRandomWaitDrawnAtExecution(t *testing.T) {
	e := newEnv()
	var draws [][2]int
	e.draw = func(min, max int) int {
		draws = append(draws, [2]int{min, max})
		return min
	}

	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "waitrandom 100 300", "restart")
	test.ExpectEquality(t, len(draws), 0)

	mz.SetPaused(false)
	tick(t, mz, 1, 0)
	test.ExpectEquality(t, len(draws), 1)
	test.ExpectEquality(t, draws[0], [2]int{100, 300})
}

func TestPausedReset1of2(t *testing.T) {
	for _, draw := range []int{0, 1} {
		e := newEnv()
		e.draw = func(min, max int) int {
			return draw
		}

		mz := maze.NewMaze(e, config(false))
		a := addTrack(t, mz, 1, true, "pausedreset1of2 2 3", "pausedset 1", "restart")
		x := addTrack(t, mz, 2, true, "wait 1000", "restart")
		y := addTrack(t, mz, 3, true, "wait 1000", "restart")
		mz.SetPaused(false)

		tick(t, mz, 1, 66)
		test.ExpectEquality(t, a.State(), maze.Paused, draw)

		chosen, other := x, y
		if draw == 1 {
			chosen, other = y, x
		}
		test.ExpectEquality(t, chosen.State(), maze.WaitingTimer, draw)
		test.ExpectEquality(t, other.State(), maze.Paused, draw)
	}
}

// the pair named by pausedreset1of2 are never both running after the
// instruction, whatever the state of the pair beforehand
func TestPausedReset1of2Exclusive(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "pausedreset1of2 2 3", "wait 100", "restart")
	x := addTrack(t, mz, 2, false, "wait 50", "restart")
	y := addTrack(t, mz, 3, false, "wait 50", "restart")
	mz.SetPaused(false)

	for i := range 100 {
		e.frame++
		tick(t, mz, 1, 100)
		running := 0
		for _, trk := range []*maze.Track{x, y} {
			switch trk.State() {
			case maze.Running, maze.WaitingTimer, maze.WaitingRandomTimer, maze.Restarting:
				running++
			}
		}
		test.ExpectEquality(t, running, 1, i)
	}
}

func TestActivate(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true,
		"activate 2 2",
		"variableinc 2 2",
		"obstacleset 1",
		"targetset 1 1",
		"restart",
	)
	mz.SetPaused(false)

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, e.globals[counter], 1)
	test.ExpectSuccess(t, mz.Target(1).Visible())

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, e.globals[counter], 2)

	// counter has reached the maximum
	tick(t, mz, 3, 66)
	test.ExpectEquality(t, e.globals[counter], 2)
	test.ExpectEquality(t, trk.State(), maze.Paused)
	test.ExpectFailure(t, mz.Target(1).Visible())
	test.ExpectFailure(t, mz.Target(1).Targetable)

	// the track will check the counter again if it is ever unpaused
	test.ExpectEquality(t, trk.IP, 0)
}

func TestVariableIncSaturates(t *testing.T) {
	e := newEnv()
	e.globals[counter] = 5
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "variableinc 2 3", "restart")
	mz.SetPaused(false)

	tick(t, mz, 4, 66)
	test.ExpectEquality(t, e.globals[counter], 5)

	e.globals[counter] = 1
	tick(t, mz, 10, 66)
	test.ExpectEquality(t, e.globals[counter], 3)
}

func TestLeave(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "obstacleset 1", "targetset 1 1", "leave", "pausedset 1", "restart")
	addTrack(t, mz, 2, true, "obstacleset 2", "targetset 2 1", "enemyset 2", "leave", "pausedset 2", "restart")
	addTrack(t, mz, 3, true, "obstacleset 3", "targetset 3 0", "leave", "pausedset 3", "restart")
	mz.SetPaused(false)

	// only the innocent that was never shot earns a point
	tick(t, mz, 1, 66)
	test.ExpectEquality(t, e.globals[score], 1)
}

func TestShoot(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true,
		"obstacleset 1",
		"enemyset 1",
		"targetset 1 1",
		"shoot 27 33",
		"targetset 1 0",
		"shoot 12 33",
		"pausedset 1",
		"restart",
	)
	mz.SetPaused(false)

	tick(t, mz, 1, 66)
	test.ExpectEquality(t, e.globals[hits], 1)
	test.ExpectEquality(t, len(e.sounds), 2)
	test.ExpectEquality(t, e.sounds[0], sound{id: 27, volume: 33})
	test.ExpectEquality(t, e.sounds[1], sound{id: 12, volume: 33})
}

// a click during the target window succeeds exactly once and never after
// the window is closed
func TestClickWindow(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true,
		"enemyset 1",
		"obstacleset 1",
		"targetset 1 1",
		"move 3",
		"targetset 1 0",
		"pausedset 1",
		"restart",
	)
	mz.SetPaused(false)

	// the move is in progress
	tick(t, mz, 2, 66)
	test.ExpectEquality(t, trk.Point(), 1)

	ok, err := mz.Click(1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.globals[score], 1)

	ok, err = mz.Click(1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, e.globals[score], 1)

	// cut the spin short and run the track through the clear
	mz.Target(1).SpinLeft = 0
	tick(t, mz, 4, 66)
	test.ExpectEquality(t, trk.State(), maze.Paused)

	ok, _ = mz.Click(1)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, e.globals[score], 1)
}

func TestClickAfterClear(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true,
		"obstacleset 1",
		"targetset 1 1",
		"move 3",
		"targetset 1 0",
		"wait 1000",
		"restart",
	)
	mz.SetPaused(false)

	clicked := 0
	for range 10 {
		tick(t, mz, 1, 66)
		if mz.Track(1).State() == maze.WaitingTimer {
			ok, _ := mz.Click(1)
			if ok {
				clicked++
			}
		}
	}
	test.ExpectEquality(t, clicked, 0)
}

func TestClickIgnored(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "restart")

	// not visible
	mz.Target(1).Targetable = true
	ok, err := mz.Click(1)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ok)

	// not targetable
	mz.Target(1).Targetable = false
	mz.Target(1).Obstacle = true
	ok, _ = mz.Click(1)
	test.ExpectFailure(t, ok)

	// not in the world
	mz.Target(1).Targetable = true
	mz.RemoveTargets()
	ok, _ = mz.Click(1)
	test.ExpectFailure(t, ok)

	// no such item
	ok, _ = mz.Click(99)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, len(e.sounds), 0)
	test.ExpectEquality(t, e.globals[score], 0)
}

func TestClickGroup(t *testing.T) {
	for _, strict := range []bool{false, true} {
		e := newEnv()
		mz := maze.NewMaze(e, config(strict))
		addTrack(t, mz, 2, false, "restart")
		addTrack(t, mz, 3, false, "restart")
		test.DemandSuccess(t, mz.AddGroup(2, 3))
		mz.SetClickSound(3, maze.ClickSound{Sound: 4, Volume: 50})

		for _, id := range []int{2, 3} {
			mz.Target(id).Obstacle = true
			mz.Target(id).Targetable = true
		}

		ok, err := mz.Click(3)
		test.ExpectSuccess(t, err)
		test.ExpectSuccess(t, ok)

		// innocent
		test.ExpectEquality(t, e.globals[score], -1)
		test.ExpectEquality(t, e.sounds[0], sound{id: 4, volume: 50})

		test.ExpectFailure(t, mz.Target(2).Targetable)
		test.ExpectFailure(t, mz.Target(3).Targetable)

		// the corrected behaviour spins the first visible member of the group
		test.ExpectEquality(t, mz.Target(2).Spinning(), !strict, strict)
		test.ExpectEquality(t, mz.Target(3).Spinning(), strict, strict)
	}
}

func TestDefaultClickSound(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "restart")
	mz.Target(1).Obstacle = true
	mz.Target(1).Targetable = true
	mz.Target(1).Enemy = true

	ok, _ := mz.Click(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.sounds[0], sound{id: maze.DefaultClickSound.Sound, volume: maze.DefaultClickSound.Volume})
	test.ExpectEquality(t, e.globals[score], 1)
}

func TestSpinHoldsTrack(t *testing.T) {
	e := newEnv()
	cfg := config(false)
	cfg.SpinDuration = 500
	mz := maze.NewMaze(e, cfg)
	trk := addTrack(t, mz, 1, true, "obstacleset 1", "targetset 1 1", "move 3", "restart")
	mz.SetPaused(false)

	tick(t, mz, 1, 100)
	ok, _ := mz.Click(1)
	test.ExpectSuccess(t, ok)

	tick(t, mz, 4, 100)
	test.ExpectEquality(t, trk.Point(), 0)
	test.ExpectSuccess(t, mz.Target(1).Spinning())

	tick(t, mz, 1, 100)
	test.ExpectFailure(t, mz.Target(1).Spinning())
	test.ExpectEquality(t, trk.Point(), 1)
}

func TestInstructionLimit(t *testing.T) {
	e := newEnv()
	cfg := config(false)
	cfg.Limit = 2
	mz := maze.NewMaze(e, cfg)
	addTrack(t, mz, 1, true, "leave", "leave", "leave", "restart")
	mz.SetPaused(false)

	err := mz.Tick(66)
	test.ExpectSuccess(t, curated.Is(err, maze.TrackFault))
	test.ExpectSuccess(t, curated.Has(err, maze.InstructionLimit))
}

func TestUnknownItem(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	trk := addTrack(t, mz, 1, true, "obstacleset 1", "pausedreset 7", "restart")
	mz.SetPaused(false)

	test.ExpectFailure(t, mz.Validate())

	err := mz.Tick(66)
	test.ExpectSuccess(t, curated.Has(err, maze.UnknownItem))

	// the failing instruction is not consumed
	test.ExpectEquality(t, trk.IP, 1)
}

func TestValidate(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "position 3", "activate 7 1", "pausedreset1of2 1 2", "restart")
	addTrack(t, mz, 2, false, "restart")
	test.ExpectSuccess(t, mz.Validate())

	mz = maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "move 4", "restart")
	test.ExpectFailure(t, mz.Validate())

	mz = maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "activate 8 1", "restart")
	test.ExpectFailure(t, mz.Validate())

	mz = maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "waitrandom 10 5", "restart")
	test.ExpectFailure(t, mz.Validate())
}

func TestDuplicates(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "restart")

	_, err := mz.AddTarget(1, "", maze.Vector{}, 0)
	test.ExpectSuccess(t, curated.Is(err, maze.DuplicateItem))

	_, err = mz.AddTrack(1, maze.Vector{}, maze.Vector{}, 1, assemble(t, "restart"), false)
	test.ExpectSuccess(t, curated.Is(err, maze.DuplicateItem))

	_, err = mz.AddTrack(2, maze.Vector{}, maze.Vector{}, 1, assemble(t, "restart"), false)
	test.ExpectSuccess(t, curated.Is(err, maze.UnknownItem))

	test.ExpectFailure(t, mz.AddGroup(1, 2))
}

func TestInitialTargetable(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	tgt, err := mz.AddTarget(1, "fixed", maze.Vector{}, 0)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, tgt.Targetable)
	test.ExpectSuccess(t, tgt.InWorld)
	test.ExpectFailure(t, tgt.Visible())

	mz = maze.NewMaze(e, config(true))
	tgt, _ = mz.AddTarget(1, "original", maze.Vector{}, 0)
	test.ExpectSuccess(t, tgt.Targetable)
}

func TestAbandon(t *testing.T) {
	e := newEnv()
	e.globals[counter] = 5
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "restart")
	mz.SetPaused(false)

	test.ExpectSuccess(t, mz.Abandon(counter, 20))
	test.ExpectEquality(t, e.globals[score], -15)
	test.ExpectEquality(t, e.globals[counter], 20)
	test.ExpectFailure(t, mz.Target(1).InWorld)
	test.ExpectSuccess(t, mz.IsPaused())

	// a second abandon has no effect on the score
	test.ExpectSuccess(t, mz.Abandon(counter, 20))
	test.ExpectEquality(t, e.globals[score], -15)
}

func TestSaveRestore(t *testing.T) {
	e := newEnv()
	mz := maze.NewMaze(e, config(false))
	addTrack(t, mz, 1, true, "obstacleset 1", "targetset 1 1", "move 3", "wait 100", "pausedset 1", "restart")
	mz.SetPaused(false)

	tick(t, mz, 2, 66)
	st := mz.Save()
	before := mz.String()

	tick(t, mz, 10, 66)
	test.ExpectInequality(t, mz.String(), before)

	mz.Restore(st)
	test.ExpectEquality(t, mz.String(), before)
}
