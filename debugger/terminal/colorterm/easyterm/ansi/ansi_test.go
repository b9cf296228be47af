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

package ansi_test

import (
	"testing"

	"github.com/scenevm/scenevm/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/scenevm/scenevm/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("white", "bold", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[37;1m")

	s, err = ansi.ColorBuild("", "underline", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[4m")

	_, err = ansi.ColorBuild("mauve", "", false)
	test.ExpectFailure(t, err)
	_, err = ansi.ColorBuild("", "blink", false)
	test.ExpectFailure(t, err)

	test.ExpectEquality(t, ansi.Pens["cyan"], "\033[96m")
	test.ExpectEquality(t, ansi.DimPens["cyan"], "\033[36m")
}
