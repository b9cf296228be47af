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

package memman

import (
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/test"
)

func TestVerifyBadTable(t *testing.T) {
	tab := NewTable(1000)
	a, err := tab.Allocate(100, CanFree)
	test.DemandSuccess(t, err)
	_, err = tab.Allocate(100, CanFree)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tab.Verify())

	tab.alloced++
	test.ExpectSuccess(t, curated.Is(tab.Verify(), BadTable))
	tab.alloced--

	prev := tab.blocks[a].prev
	tab.blocks[a].prev = a
	test.ExpectSuccess(t, curated.Is(tab.Verify(), BadTable))
	tab.blocks[a].prev = prev

	tab.blocks[a].listed = false
	test.ExpectSuccess(t, curated.Is(tab.Verify(), BadTable))
	tab.blocks[a].listed = true
	test.ExpectSuccess(t, tab.Verify())
}
