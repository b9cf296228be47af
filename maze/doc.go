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

// Package maze implements the target tracks of a shooting gallery scene.
//
// Each target in the maze is an item in the world. A track is a looping
// program bound to a single item that moves the item along a path, turns
// it, reveals and hides it and marks it as an enemy or an innocent. Only one
// track exists per item, and so at most one track touching an item runs per
// tick.
//
// Tracks start paused unless they are primary tracks. A running track hands
// control to a sibling with the PausedReset and PausedReset1of2 instructions
// and then pauses itself with PausedSet. A track never unpauses itself.
//
// An item can only be shot by the player while it is targetable. The
// TargetSet instruction opens and closes that window. CheckTargetWindow()
// examines a program for paths that hide or pause the item while the window
// is still open.
//
// The StrictOriginalBehavior field of the Config selects the behaviour of
// the original release for the parts of the maze that differ between the
// original and the corrected instruction tables. The instruction tables
// themselves are chosen when the scene is loaded.
package maze
