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

package paths

import (
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The subPath argument should not include the leaf of the path. The file
// argument is the leaf. Either argument can be empty.
//
// The function ensures that the sub-path exists but the file does not need to.
func ResourcePath(subPath string, file string) (string, error) {
	base, err := getBasePath(subPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}
