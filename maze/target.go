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
	"strings"
)

// Target is an item in the maze that can be shot by the player.
type Target struct {
	ID   int
	Name string

	// the item can be credited or penalised by a click
	Targetable bool

	// the item is an enemy. shooting an innocent is penalised
	Enemy bool

	// the item is solid and visible in the world
	Obstacle bool

	// the item has been added to the world and not yet removed
	InWorld bool

	Position Vector
	Facing   int

	// ticks remaining of the feedback spin. tracks do not advance while their
	// item is spinning
	SpinLeft int
}

func (t *Target) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s [%d] %s %d", t.Name, t.ID, t.Position, t.Facing))
	if t.Targetable {
		s.WriteString(" targetable")
	}
	if t.Enemy {
		s.WriteString(" enemy")
	}
	if t.Visible() {
		s.WriteString(" visible")
	}
	if t.Spinning() {
		s.WriteString(" spinning")
	}
	return s.String()
}

// Visible returns true if the target can be seen by the player.
func (t *Target) Visible() bool {
	return t.InWorld && t.Obstacle
}

// Spinning returns true while the feedback spin is playing.
func (t *Target) Spinning() bool {
	return t.SpinLeft > 0
}

// ClickSound is the feedback sound played when a target is shot.
type ClickSound struct {
	Sound  int
	Volume int
}

// DefaultClickSound is used for targets without an explicit click sound.
// SPINNY1 at a low volume.
var DefaultClickSound = ClickSound{Sound: 2, Volume: 12}
