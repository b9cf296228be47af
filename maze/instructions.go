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

import "fmt"

// Instruction is a single step of a track program.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// Activate deactivates the track if the value of the global variable Var is
// greater than or equal to Max. A deactivated track hides its item, closes the
// target window and pauses.
type Activate struct{ Var, Max int }

// VariableInc increments the global variable Var. The value never exceeds
// Max.
type VariableInc struct{ Var, Max int }

// TargetSet opens (Value true) or closes the target window of Item.
type TargetSet struct {
	Item  int
	Value bool
}

// EnemySet marks Item as an enemy.
type EnemySet struct{ Item int }

// EnemyReset marks Item as an innocent.
type EnemyReset struct{ Item int }

// ObstacleSet shows Item.
type ObstacleSet struct{ Item int }

// ObstacleReset hides Item.
type ObstacleReset struct{ Item int }

// Facing turns the item immediately.
type Facing struct{ Angle int }

// Position places the item at a point on the path immediately.
type Position struct{ Point int }

// Move walks the item along the path, one point per tick, until it reaches
// Point. The track does not continue until the move is complete.
type Move struct{ Point int }

// Wait suspends the track for a number of milliseconds.
type Wait struct{ Duration int }

// WaitRandom suspends the track for a random number of milliseconds between
// Min and Max inclusive. The duration is drawn when the instruction executes.
type WaitRandom struct{ Min, Max int }

// Rotate turns the item towards Angle by Speed units per tick.
type Rotate struct{ Angle, Speed int }

// Shoot plays a sound and damages the player if the item is still targetable.
type Shoot struct{ Sound, Volume int }

// PlaySound plays a sound.
type PlaySound struct{ Sound, Volume int }

// PausedSet pauses the track of Item.
type PausedSet struct{ Item int }

// PausedReset unpauses the track of Item.
type PausedReset struct{ Item int }

// PausedReset1of2 unpauses the track of either A or B, chosen at random. The
// track not chosen is paused. The target window of the paused track is not
// changed and so must already have been closed by its own program.
type PausedReset1of2 struct{ A, B int }

// Restart returns to the start of the program. The track does not execute
// any more instructions until the next tick.
type Restart struct{}

// Leave credits the player if the item is an innocent that is still
// targetable.
type Leave struct{}

func (Activate) instruction()        {}
func (VariableInc) instruction()     {}
func (TargetSet) instruction()       {}
func (EnemySet) instruction()        {}
func (EnemyReset) instruction()      {}
func (ObstacleSet) instruction()     {}
func (ObstacleReset) instruction()   {}
func (Facing) instruction()          {}
func (Position) instruction()        {}
func (Move) instruction()            {}
func (Wait) instruction()            {}
func (WaitRandom) instruction()      {}
func (Rotate) instruction()          {}
func (Shoot) instruction()           {}
func (PlaySound) instruction()       {}
func (PausedSet) instruction()       {}
func (PausedReset) instruction()     {}
func (PausedReset1of2) instruction() {}
func (Restart) instruction()         {}
func (Leave) instruction()           {}

func (in Activate) String() string {
	return fmt.Sprintf("activate %d %d", in.Var, in.Max)
}

func (in VariableInc) String() string {
	return fmt.Sprintf("variableinc %d %d", in.Var, in.Max)
}

func (in TargetSet) String() string {
	if in.Value {
		return fmt.Sprintf("targetset %d 1", in.Item)
	}
	return fmt.Sprintf("targetset %d 0", in.Item)
}

func (in EnemySet) String() string        { return fmt.Sprintf("enemyset %d", in.Item) }
func (in EnemyReset) String() string      { return fmt.Sprintf("enemyreset %d", in.Item) }
func (in ObstacleSet) String() string     { return fmt.Sprintf("obstacleset %d", in.Item) }
func (in ObstacleReset) String() string   { return fmt.Sprintf("obstaclereset %d", in.Item) }
func (in Facing) String() string          { return fmt.Sprintf("facing %d", in.Angle) }
func (in Position) String() string        { return fmt.Sprintf("position %d", in.Point) }
func (in Move) String() string            { return fmt.Sprintf("move %d", in.Point) }
func (in Wait) String() string            { return fmt.Sprintf("wait %d", in.Duration) }
func (in WaitRandom) String() string      { return fmt.Sprintf("waitrandom %d %d", in.Min, in.Max) }
func (in Rotate) String() string          { return fmt.Sprintf("rotate %d %d", in.Angle, in.Speed) }
func (in Shoot) String() string           { return fmt.Sprintf("shoot %d %d", in.Sound, in.Volume) }
func (in PlaySound) String() string       { return fmt.Sprintf("playsound %d %d", in.Sound, in.Volume) }
func (in PausedSet) String() string       { return fmt.Sprintf("pausedset %d", in.Item) }
func (in PausedReset) String() string     { return fmt.Sprintf("pausedreset %d", in.Item) }
func (in PausedReset1of2) String() string { return fmt.Sprintf("pausedreset1of2 %d %d", in.A, in.B) }
func (Restart) String() string            { return "restart" }
func (Leave) String() string              { return "leave" }

// blocking returns true if the instruction ends the tick for the track that
// executes it. Move and Rotate are always treated as blocking even if the
// item is already in place.
func blocking(in Instruction) bool {
	switch in.(type) {
	case Wait, WaitRandom, Move, Rotate, Restart:
		return true
	}
	return false
}
