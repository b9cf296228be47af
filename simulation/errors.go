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

// Sentinal error patterns.
const (
	NoScene       = "simulation: no scene loaded"
	FrameFault    = "simulation: frame %d: %v"
	UnknownSlot   = "simulation: unknown resource slot (%d)"
	UnknownExit   = "simulation: unknown exit (%d)"
	SceneMismatch = "simulation: snapshot is for %s not %s"
	NoPrefsDisk   = "simulation: preferences are not saved to disk"
)
