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

// Sentinal error patterns.
const (
	TrackFault         = "maze: track %d: %v"
	InstructionFault   = "maze: %v: %v"
	UnknownInstruction = "maze: unknown instruction (%T)"
	InstructionLimit   = "maze: instruction limit (%d) exceeded"
	UnknownItem        = "maze: unknown item (%d)"
	DuplicateItem      = "maze: duplicate item (%d)"
	BadTrack           = "maze: bad track for item %d: %v"
	AssemblyError      = "maze: assembly: %v"
)
