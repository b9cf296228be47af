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

// Package regression facilitates the regression testing of scenes. A
// regression entry describes a scripted run of a scene: the scene name, the
// number of frames, the clicks made during the run and an optional exit. When
// the entry is added to the database the run is performed and the digest of
// the simulation state and of the audio requests is recorded. Subsequent runs
// of the entry must produce the same digests.
//
// Runs always use the default preferences and a zero random seed so that the
// result does not depend on the user's environment.
//
// The regression database is a flat file managed by the database package.
package regression
