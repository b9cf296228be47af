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

// Package simulation ties the parts of SceneVM together. The State type owns
// the globals, the resource table, the two script instance lists, the program
// library and the maze of the scene being played. It implements the
// environment interfaces of the script and maze packages.
//
// A frame of the simulation is run with the Step() function. The order of
// events in a frame is fixed:
//
//	1. every rel instance is stepped
//	2. every proc instance is stepped
//	3. finished instances are swept from both lists
//	4. queued retarget requests are applied
//	5. the maze is ticked
//	6. the ambient sounds of the scene are serviced
//
// An error in any of these stages ends the frame. The error is logged and
// returned to the caller. The simulation is left as it was at the failing
// instruction.
//
// Drawing and sound playback are external to the simulation. The Renderer and
// Audio interfaces are how requests are made of them. The Headless type
// implements both by writing to the log.
package simulation
