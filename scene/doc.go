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

// Package scene loads scene descriptions. A scene description is a TOML
// document that lists the targets and tracks of a maze, the overlay scripts
// of the scene and the scripts that are attached when the scene starts.
//
// Lines of a track program can be prefixed with "fixed:" or "original:". The
// prefixed lines are kept only when the matching instruction tables are
// selected by the original argument of Load(). This allows one description to
// carry both the tables of the original release and the corrected tables.
//
// Scene descriptions are embedded for the scenes listed by Builtins().
package scene
