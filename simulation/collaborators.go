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
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/maze"
)

// Renderer draws the scene. Requests are fire-and-forget.
type Renderer interface {
	MoveSprite(object, x, y int)
	Animate(object, animation int)

	// called once per frame with the current state of every target in the
	// maze. the slice is a copy and can be kept by the renderer
	UpdateTargets(targets []maze.Target)
}

// Audio plays sounds. Requests are fire-and-forget.
type Audio interface {
	// play a sound once. pan is in the range -100 (left) to 100 (right)
	PlaySound(sound, volume, pan int)

	// play a sound continuously until StopLoops() is called
	PlayLoop(sound, volume int)
	StopLoops()
}

// Headless implements the Renderer and Audio interfaces by adding entries
// to the log.
type Headless struct {
	// log entries are made if permission allows it
	Permission logger.Permission

	// the number of visible targets in the last call to UpdateTargets()
	visible int
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless(perm logger.Permission) *Headless {
	return &Headless{
		Permission: perm,
		visible:    -1,
	}
}

// MoveSprite implements the Renderer interface.
func (h *Headless) MoveSprite(object, x, y int) {
	logger.Logf(h.Permission, "renderer", "move sprite %d to %d,%d", object, x, y)
}

// Animate implements the Renderer interface.
func (h *Headless) Animate(object, animation int) {
	logger.Logf(h.Permission, "renderer", "animate sprite %d with %d", object, animation)
}

// UpdateTargets implements the Renderer interface. An entry is only made
// when the number of visible targets changes.
func (h *Headless) UpdateTargets(targets []maze.Target) {
	var n int
	for i := range targets {
		if targets[i].Visible() {
			n++
		}
	}
	if n != h.visible {
		h.visible = n
		logger.Logf(h.Permission, "renderer", "%d targets visible", n)
	}
}

// PlaySound implements the Audio interface.
func (h *Headless) PlaySound(sound, volume, pan int) {
	logger.Logf(h.Permission, "audio", "play sound %d (volume %d, pan %d)", sound, volume, pan)
}

// PlayLoop implements the Audio interface.
func (h *Headless) PlayLoop(sound, volume int) {
	logger.Logf(h.Permission, "audio", "loop sound %d (volume %d)", sound, volume)
}

// StopLoops implements the Audio interface.
func (h *Headless) StopLoops() {
	logger.Log(h.Permission, "audio", "stop loops")
}
