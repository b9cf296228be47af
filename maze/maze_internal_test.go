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
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/test"
)

type bogus struct{}

func (bogus) instruction()   {}
func (bogus) String() string { return "bogus" }

type nullEnv struct{}

func (nullEnv) Globals() []int              { return nil }
func (nullEnv) Random(min, max int) int     { return min }
func (nullEnv) PlaySound(sound, vol, _ int) {}

func TestUnknownInstruction(t *testing.T) {
	mz := NewMaze(nullEnv{}, DefaultConfig())
	_, err := mz.AddTarget(1, "", Vector{}, 0)
	test.DemandSuccess(t, err)
	_, err = mz.AddTrack(1, Vector{}, Vector{}, 1, []Instruction{bogus{}}, true)
	test.DemandSuccess(t, err)
	mz.SetPaused(false)

	err = mz.Tick(66)
	test.ExpectSuccess(t, curated.Has(err, UnknownInstruction))
}

func TestBlocking(t *testing.T) {
	test.ExpectSuccess(t, blocking(Wait{}))
	test.ExpectSuccess(t, blocking(WaitRandom{}))
	test.ExpectSuccess(t, blocking(Move{}))
	test.ExpectSuccess(t, blocking(Rotate{}))
	test.ExpectSuccess(t, blocking(Restart{}))
	test.ExpectFailure(t, blocking(PausedSet{}))
	test.ExpectFailure(t, blocking(Leave{}))
}
