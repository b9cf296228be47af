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

// Package snapshot defines the saved state of a simulation. A snapshot holds
// everything that changes as a scene plays: the globals, the script
// instances, the tracks and targets of the maze and the resource slots.
// Static data, such as the programs themselves, comes from the scene and is
// not part of the snapshot.
//
// Snapshots are encoded as canonical CBOR so that two snapshots of the same
// state are byte-for-byte identical.
package snapshot
