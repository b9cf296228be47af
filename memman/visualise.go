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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// the graph structures passed to memviz. the free list is presented as a
// linked structure so that the eviction order is visible in the graph.
type vizBlock struct {
	Handle    int
	Size      int
	Condition string
	Next      *vizBlock
}

type vizTable struct {
	Alloced  int
	MaxAlloc int
	FreeList *vizBlock
	Pinned   []*vizBlock
	Freed    []int
}

// Visualise writes a graphviz (dot) representation of the table to the
// writer. The free list is shown from head to tail.
func (tab *Table) Visualise(w io.Writer) {
	viz := vizTable{
		Alloced:  tab.alloced,
		MaxAlloc: tab.maxAlloc,
	}

	var last *vizBlock
	for h := tab.head; h != NoHandle; h = tab.blocks[h].next {
		b := &vizBlock{Handle: int(h), Size: tab.blocks[h].size, Condition: tab.blocks[h].cond.String()}
		if last == nil {
			viz.FreeList = b
		} else {
			last.Next = b
		}
		last = b
	}

	for i, b := range tab.blocks {
		switch b.cond {
		case DontFree:
			viz.Pinned = append(viz.Pinned, &vizBlock{Handle: i, Size: b.size, Condition: b.cond.String()})
		case Freed:
			viz.Freed = append(viz.Freed, i)
		}
	}

	memviz.Map(w, &viz)
}
