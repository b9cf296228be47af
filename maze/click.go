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
	"github.com/scenevm/scenevm/logger"
)

// Click is called when the player shoots at an item. Items that are not
// visible or whose target window is closed are ignored and Click returns
// false.
//
// A successful click credits the player for an enemy and penalises the
// player for an innocent. The feedback sound is played, the item spins and
// the target window of the item and every member of its group is closed.
func (mz *Maze) Click(item int) (bool, error) {
	t, ok := mz.targets[item]
	if !ok || !t.Visible() || !t.Targetable {
		return false, nil
	}

	if t.Enemy {
		if err := mz.addGlobal(mz.cfg.ScoreVar, 1); err != nil {
			return false, err
		}
	} else {
		if err := mz.addGlobal(mz.cfg.ScoreVar, -1); err != nil {
			return false, err
		}
	}

	snd, ok := mz.sounds[item]
	if !ok {
		snd = DefaultClickSound
	}
	mz.env.PlaySound(snd.Sound, snd.Volume, 0)

	group, ok := mz.groups[item]
	if !ok {
		group = []int{item}
	}

	if mz.cfg.StrictOriginalBehavior {
		mz.spin(t)
	} else {
		mz.spin(mz.visibleMember(group))
	}

	for _, id := range group {
		mz.targets[id].Targetable = false
	}

	logger.Logf(mz.Permission, "maze", "%s shot (enemy=%v)", t.Name, t.Enemy)

	return true, nil
}

// visibleMember returns the first visible target in the group. the last
// member is returned if no member is visible.
func (mz *Maze) visibleMember(group []int) *Target {
	for _, id := range group {
		if t := mz.targets[id]; t.Visible() {
			return t
		}
	}
	return mz.targets[group[len(group)-1]]
}

func (mz *Maze) spin(t *Target) {
	t.SpinLeft = max(1, mz.cfg.SpinDuration)
}
