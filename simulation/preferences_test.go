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

package simulation_test

import (
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/simulation"
	"github.com/scenevm/scenevm/test"
)

func TestPreferences(t *testing.T) {
	prf := simulation.DefaultPreferences()
	test.ExpectEquality(t, prf.MaxAlloc.Get().(int), simulation.DefaultMaxAlloc)
	test.ExpectEquality(t, prf.FrameDuration.Get().(int), simulation.DefaultFrameDuration)
	test.ExpectEquality(t, prf.StrictOriginalBehavior.Get().(bool), false)

	cfg := prf.MazeConfig()
	test.ExpectEquality(t, cfg.Limit, maze.DefaultInstructionLimit)
	test.ExpectEquality(t, cfg.ShotDamage, 1)
	test.ExpectEquality(t, cfg.ScoreVar, -1)

	// the budget of the resource table follows the preference
	st := simulation.NewState(prf)
	test.ExpectEquality(t, st.Mem().MaxAlloc(), simulation.DefaultMaxAlloc)
	test.DemandSuccess(t, prf.MaxAlloc.Set(1000))
	test.ExpectEquality(t, st.Mem().MaxAlloc(), 1000)

	test.DemandSuccess(t, prf.ShotDamage.Set("3"))
	test.ExpectEquality(t, prf.MazeConfig().ShotDamage, 3)
	test.DemandSuccess(t, prf.Reset())
	test.ExpectEquality(t, prf.MazeConfig().ShotDamage, 1)

	test.ExpectSuccess(t, curated.Is(prf.Save(), simulation.NoPrefsDisk))
	test.ExpectSuccess(t, curated.Is(prf.Load(), simulation.NoPrefsDisk))
}
