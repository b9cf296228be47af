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

// Package rewind keeps a history of snapshots of a running simulation. A
// snapshot is recorded at the end of every frame (or every N frames, depending
// on the preferences) and the simulation can be returned to any frame in the
// history.
//
// Frames between recorded snapshots are recreated by running the simulation
// forward from the nearest earlier snapshot with logging silenced. Player
// input made in those frames is not recreated. With the default frequency of
// one every frame is recorded and no frames are recreated.
//
// When new frames are recorded after the simulation has been rewound, the
// snapshots of the frames that were rewound are forgotten.
package rewind
