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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text.
type Prompt struct {
	Scene string
	Frame int

	// the scene has been left through an exit
	Exited bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	if p.Scene == "" {
		s.WriteString("no scene")
	} else {
		s.WriteString(fmt.Sprintf("%s %d", p.Scene, p.Frame))
	}
	if p.Exited {
		s.WriteString(" (exited)")
	}
	s.WriteString(" ] > ")
	return s.String()
}
