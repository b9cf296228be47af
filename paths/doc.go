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

// Package paths contains functions to prepare paths for SceneVM resources.
//
// The ResourcePath() function returns the correct path to a resource
// directory/file that needs to be read or written.
//
// The policy for resource paths is simple. In development builds a
// .scenevm directory in the current working directory is used. Release
// builds (built with the release tag) use a scenevm directory in the user's
// configuration directory, as returned by os.UserConfigDir().
//
// In both cases the directory is created if it does not exist.
package paths
