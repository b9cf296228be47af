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

// Package script implements overlay scripts and the lists of script
// instances that run them.
//
// A script instance is one execution of a Program. Instances are held in a
// List, which is headed by a sentinel node that is never executed and never
// removed. Once per frame every instance in the list is advanced by one step.
// A step runs instructions until the script waits, yields, restarts or ends.
// Instances are never preempted in the middle of an instruction.
//
// An instance with a non-zero freeze value is skipped. Freeze values are
// changed in bulk with the Retarget() function. The values FreezeUserWait and
// FreezeAutoTrack are used by the simulation for instances that are waiting
// on the player or on the narrator reaching their destination.
//
// Instances whose script number has been set to Finished are removed by
// SweepFinished(). This is normally called by the frame driver after every
// list has been advanced.
package script
