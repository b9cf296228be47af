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
	"github.com/scenevm/scenevm/scene"
)

// ambient sounds of the scene being played
type ambient struct {
	loops  []scene.Loop
	sounds []scene.RandomSound

	// milliseconds until each random sound is next played
	timers []int
}

func (amb *ambient) start(st *State, a scene.Ambient) {
	amb.loops = a.Loops
	amb.sounds = a.Random
	amb.timers = make([]int, len(a.Random))
	for i := range amb.sounds {
		amb.timers[i] = amb.interval(st, i)
	}
	amb.playLoops(st)
}

// restore the ambient sounds with the timers from a snapshot. the timers are
// drawn afresh if the number of timers does not match
func (amb *ambient) restore(st *State, a scene.Ambient, timers []int) {
	if len(timers) != len(a.Random) {
		amb.start(st, a)
		return
	}
	amb.loops = a.Loops
	amb.sounds = a.Random
	amb.timers = append([]int(nil), timers...)
	amb.playLoops(st)
}

func (amb *ambient) playLoops(st *State) {
	for _, l := range amb.loops {
		st.audio.PlayLoop(l.Sound, l.Volume)
	}
}

// interval is drawn in whole seconds
func (amb *ambient) interval(st *State, i int) int {
	s := amb.sounds[i]
	return max(1, st.Random(s.MinTime, s.MaxTime)*1000)
}

func (amb *ambient) tick(st *State, elapsed int) {
	for i, s := range amb.sounds {
		amb.timers[i] -= elapsed
		if amb.timers[i] > 0 {
			continue
		}
		st.audio.PlaySound(s.Sound, st.Random(s.MinVolume, s.MaxVolume), st.Random(-100, 100))
		amb.timers[i] = amb.interval(st, i)
	}
}
