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
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The scene name is included when
// it is not empty.
//
// Format of returned string is:
//
//	prepend_scene_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, scene string) string {
	n := time.Now()
	timestamp := n.Format("20060102_150405")

	if s := strings.TrimSpace(scene); s != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, s, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
