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

package scene

import (
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/script"
)

// Stage is the engine state a scene is installed into.
type Stage interface {
	Maze() *maze.Maze
	Library() *script.Library
	Attach(kind script.Kind, overlay, scr, priority, relScript, relOverlay int)
}

// Install the scene. The overlay scripts are added to the library, the
// targets and tracks are added to the maze and the startup scripts are
// attached, in that order.
//
// The maze should have been created with the configuration returned by
// MazeConfig().
func (sc *Scene) Install(stg Stage) error {
	lib := stg.Library()
	for _, prg := range sc.Scripts {
		if err := lib.Add(prg); err != nil {
			return curated.Errorf(InstallError, err)
		}
	}

	mz := stg.Maze()
	for _, t := range sc.Targets {
		if _, err := mz.AddTarget(t.Item, t.Name, t.Position, t.Facing); err != nil {
			return curated.Errorf(InstallError, err)
		}
		if t.Click != nil {
			mz.SetClickSound(t.Item, *t.Click)
		}
	}
	for _, g := range sc.Groups {
		if err := mz.AddGroup(g...); err != nil {
			return curated.Errorf(InstallError, err)
		}
	}
	for _, t := range sc.Tracks {
		if _, err := mz.AddTrack(t.Item, t.Start, t.End, t.Steps, t.Program, t.Primary); err != nil {
			return curated.Errorf(InstallError, err)
		}
	}
	if err := mz.Validate(); err != nil {
		return curated.Errorf(InstallError, err)
	}

	for _, a := range sc.Attach {
		if _, ok := lib.Get(a.Overlay, a.Script); !ok {
			return curated.Errorf(InstallError, curated.Errorf(script.UnknownProgram, a.Overlay, a.Script))
		}
		stg.Attach(a.Kind, a.Overlay, a.Script, a.Priority, -1, -1)
	}

	return nil
}
