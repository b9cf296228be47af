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

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
)

// Tick advances every track by elapsed milliseconds. Tracks are advanced in
// the order they were added. Feedback spins continue while the maze is paused.
//
// An error from a track stops the tick. Tracks later in the order are not
// advanced.
func (mz *Maze) Tick(elapsed int) error {
	for _, id := range mz.targetOrder {
		t := mz.targets[id]
		if t.SpinLeft > 0 {
			t.SpinLeft = max(0, t.SpinLeft-elapsed)
		}
	}

	if mz.paused {
		return nil
	}

	for _, id := range mz.trackOrder {
		trk := mz.tracks[id]
		if err := mz.tick(trk, elapsed); err != nil {
			return curated.Errorf(TrackFault, trk.Item, err)
		}
	}

	return nil
}

func (mz *Maze) tick(trk *Track, elapsed int) error {
	if trk.paused {
		return nil
	}

	switch trk.phase {
	case WaitingTimer, WaitingRandomTimer:
		trk.waitLeft -= elapsed
		if trk.waitLeft > 0 {
			return nil
		}
		trk.waitLeft = 0
		trk.phase = Running
	case Restarting, Idle:
		trk.phase = Running
	}

	t := mz.targets[trk.Item]
	if t.Spinning() {
		return nil
	}

	if trk.rotating {
		mz.rotate(trk, t)
		return nil
	}

	if trk.moving {
		if trk.point < trk.pointTarget {
			trk.point++
		} else if trk.point > trk.pointTarget {
			trk.point--
		}
		t.Position = trk.pointPosition(trk.point)
		trk.moving = trk.point != trk.pointTarget
		return nil
	}

	for n := 0; ; n++ {
		if n >= mz.cfg.Limit {
			return curated.Errorf(InstructionLimit, mz.cfg.Limit)
		}

		// running off the end of the program is the same as a restart
		if trk.IP >= len(trk.Program) {
			trk.IP = 0
			trk.phase = Restarting
			return nil
		}

		in := trk.Program[trk.IP]
		trk.IP++

		block, err := mz.exec(trk, t, in)
		if err != nil {
			trk.IP--
			return curated.Errorf(InstructionFault, in, err)
		}
		if block {
			return nil
		}
	}
}

// turn the item towards the target angle by the shortest direction
func (mz *Maze) rotate(trk *Track, t *Target) {
	diff := normaliseAngle(trk.angleTarget - t.Facing)
	if diff == 0 {
		trk.rotating = false
		return
	}
	if diff <= FullCircle/2 {
		t.Facing = normaliseAngle(t.Facing + min(diff, trk.angleSpeed))
	} else {
		t.Facing = normaliseAngle(t.Facing - min(FullCircle-diff, trk.angleSpeed))
	}
	trk.rotating = t.Facing != trk.angleTarget
}

func (mz *Maze) target(id int) (*Target, error) {
	t, ok := mz.targets[id]
	if !ok {
		return nil, curated.Errorf(UnknownItem, id)
	}
	return t, nil
}

func (mz *Maze) track(id int) (*Track, error) {
	trk, ok := mz.tracks[id]
	if !ok {
		return nil, curated.Errorf(UnknownItem, id)
	}
	return trk, nil
}

// exec executes a single instruction. returns true if the track is finished
// for this tick.
func (mz *Maze) exec(trk *Track, t *Target, in Instruction) (bool, error) {
	switch in := in.(type) {
	case Activate:
		g := mz.env.Globals()
		if in.Var < 0 || in.Var >= len(g) {
			return false, fmt.Errorf("no global variable %d", in.Var)
		}
		if g[in.Var] >= in.Max {
			// rewind so that a later unpause checks the counter again
			trk.IP--
			t.Obstacle = false
			t.Targetable = false
			trk.pause()
			logger.Logf(mz.Permission, "maze", "track %d deactivated", trk.Item)
			return true, nil
		}

	case VariableInc:
		g := mz.env.Globals()
		if in.Var < 0 || in.Var >= len(g) {
			return false, fmt.Errorf("no global variable %d", in.Var)
		}
		if g[in.Var] < in.Max {
			g[in.Var]++
		}

	case TargetSet:
		o, err := mz.target(in.Item)
		if err != nil {
			return false, err
		}
		o.Targetable = in.Value

	case EnemySet:
		o, err := mz.target(in.Item)
		if err != nil {
			return false, err
		}
		o.Enemy = true

	case EnemyReset:
		o, err := mz.target(in.Item)
		if err != nil {
			return false, err
		}
		o.Enemy = false

	case ObstacleSet:
		o, err := mz.target(in.Item)
		if err != nil {
			return false, err
		}
		o.Obstacle = true

	case ObstacleReset:
		o, err := mz.target(in.Item)
		if err != nil {
			return false, err
		}
		o.Obstacle = false

	case Facing:
		t.Facing = normaliseAngle(in.Angle)
		trk.rotating = false

	case Position:
		trk.point = trk.clampPoint(in.Point)
		trk.pointTarget = trk.point
		trk.moving = false
		t.Position = trk.pointPosition(trk.point)

	case Move:
		trk.pointTarget = trk.clampPoint(in.Point)
		trk.moving = trk.pointTarget != trk.point
		return true, nil

	case Wait:
		trk.waitLeft = in.Duration
		trk.phase = WaitingTimer
		return true, nil

	case WaitRandom:
		trk.waitLeft = mz.env.Random(in.Min, in.Max)
		trk.phase = WaitingRandomTimer
		return true, nil

	case Rotate:
		trk.angleTarget = normaliseAngle(in.Angle)
		trk.angleSpeed = max(1, in.Speed)
		trk.rotating = trk.angleTarget != t.Facing
		return true, nil

	case Shoot:
		mz.env.PlaySound(in.Sound, in.Volume, 0)
		if t.Targetable {
			if err := mz.addGlobal(mz.cfg.HitsVar, mz.cfg.ShotDamage); err != nil {
				return false, err
			}
			logger.Logf(mz.Permission, "maze", "player shot by %s", t.Name)
		}

	case PlaySound:
		mz.env.PlaySound(in.Sound, in.Volume, 0)

	case PausedSet:
		o, err := mz.track(in.Item)
		if err != nil {
			return false, err
		}
		o.pause()

	case PausedReset:
		o, err := mz.track(in.Item)
		if err != nil {
			return false, err
		}
		o.unpause()

	case PausedReset1of2:
		a, err := mz.track(in.A)
		if err != nil {
			return false, err
		}
		b, err := mz.track(in.B)
		if err != nil {
			return false, err
		}
		if a == b {
			a.unpause()
			break
		}
		if mz.env.Random(0, 1) == 1 {
			a, b = b, a
		}
		a.unpause()
		if !b.paused && mz.targets[b.Item].Targetable {
			logger.Logf(mz.Permission, "maze", "track %d paused with target window open", b.Item)
		}
		b.pause()

	case Restart:
		trk.IP = 0
		trk.phase = Restarting
		return true, nil

	case Leave:
		if !t.Enemy && t.Targetable {
			if err := mz.addGlobal(mz.cfg.ScoreVar, 1); err != nil {
				return false, err
			}
		}

	default:
		return false, curated.Errorf(UnknownInstruction, in)
	}

	return false, nil
}
