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
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/script"
)

// Globals implements the script.Env and maze.Env interfaces.
func (st *State) Globals() []int {
	return st.globals
}

// Random implements the script.Env and maze.Env interfaces.
func (st *State) Random(min, max int) int {
	return st.rnd.Range(min, max)
}

// Attach implements the script.Env and scene.Stage interfaces.
func (st *State) Attach(kind script.Kind, overlay, scr, priority, relScript, relOverlay int) {
	st.List(kind).Attach(overlay, scr, priority, relScript, relOverlay)
}

// Retarget implements the script.Env interface.
func (st *State) Retarget(kind script.Kind, overlay, scr, oldFreeze, newFreeze int) int {
	return st.List(kind).Retarget(overlay, scr, oldFreeze, newFreeze)
}

// Load implements the script.Env interface. The slot keeps its handle in the
// resource table for the lifetime of the scene.
func (st *State) Load(slot int, size int, cond memman.Condition) error {
	h, ok := st.slots[slot]
	if !ok {
		h = st.mem.NewHandle()
		st.slots[slot] = h
	}
	return st.mem.Reallocate(h, size, cond)
}

// Release implements the script.Env interface.
func (st *State) Release(slot int) error {
	h, ok := st.slots[slot]
	if !ok {
		return curated.Errorf(UnknownSlot, slot)
	}
	st.mem.Release(h)
	return nil
}

// SetCondition implements the script.Env interface.
func (st *State) SetCondition(slot int, cond memman.Condition) error {
	h, ok := st.slots[slot]
	if !ok {
		return curated.Errorf(UnknownSlot, slot)
	}
	return st.mem.SetCondition(h, cond)
}

// PlaySound implements the script.Env and maze.Env interfaces.
func (st *State) PlaySound(sound, volume, pan int) {
	st.audio.PlaySound(sound, volume, pan)
}

// MoveSprite implements the script.Env interface.
func (st *State) MoveSprite(object, x, y int) {
	st.renderer.MoveSprite(object, x, y)
}

// Animate implements the script.Env interface.
func (st *State) Animate(object, animation int) {
	st.renderer.Animate(object, animation)
}

// SetMazePaused implements the script.Env interface.
func (st *State) SetMazePaused(paused bool) {
	if st.mz == nil {
		logger.Logf(st, "simulation", "no maze to pause (%v)", paused)
		return
	}
	st.mz.SetPaused(paused)
}
