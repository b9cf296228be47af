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
	"fmt"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
)

// add block to the head of the free list. adding a block that is already
// listed is logged and ignored.
func (tab *Table) addToFreeList(h Handle) {
	b := &tab.blocks[h]
	if b.listed {
		logger.Logf(tab.Permission, "memman", "%s is already in the free list", h)
		return
	}

	b.prev = NoHandle
	b.next = tab.head
	if tab.head != NoHandle {
		tab.blocks[tab.head].prev = h
	}
	tab.head = h
	if tab.tail == NoHandle {
		tab.tail = h
	}
	b.listed = true
}

// remove block from the free list. removing a block that is not listed is
// logged and ignored.
func (tab *Table) removeFromFreeList(h Handle) {
	b := &tab.blocks[h]
	if !b.listed {
		logger.Logf(tab.Permission, "memman", "%s wasn't in the free list", h)
		return
	}

	if tab.head == h {
		tab.head = b.next
	}
	if tab.tail == h {
		tab.tail = b.prev
	}
	if b.next != NoHandle {
		tab.blocks[b.next].prev = b.prev
	}
	if b.prev != NoHandle {
		tab.blocks[b.prev].next = b.next
	}

	b.prev = NoHandle
	b.next = NoHandle
	b.listed = false
}

// FreeList returns the handles in the free list, from the most recently
// added to the next to be evicted.
func (tab *Table) FreeList() []Handle {
	l := make([]Handle, 0, len(tab.blocks))
	for h := tab.head; h != NoHandle; h = tab.blocks[h].next {
		l = append(l, h)
	}
	return l
}

// Freeable returns the number of blocks in the free list.
func (tab *Table) Freeable() int {
	var n int
	for h := tab.head; h != NoHandle; h = tab.blocks[h].next {
		n++
	}
	return n
}

// Verify checks the integrity of the table. A block must be in the free list
// if and only if it has the CanFree condition and holds data. The links of the
// list must agree in both directions and the running total must equal the
// sum of the live blocks.
func (tab *Table) Verify() error {
	seen := make(map[Handle]bool)

	prev := NoHandle
	for h := tab.head; h != NoHandle; h = tab.blocks[h].next {
		if seen[h] {
			return curated.Errorf(BadTable, fmt.Sprintf("free list has a loop at %s", h))
		}
		seen[h] = true

		b := tab.blocks[h]
		if b.prev != prev {
			return curated.Errorf(BadTable, fmt.Sprintf("%s has back link to %s but follows %s", h, b.prev, prev))
		}
		prev = h
	}
	if prev != tab.tail {
		return curated.Errorf(BadTable, fmt.Sprintf("free list ends at %s but tail is %s", prev, tab.tail))
	}

	var total int
	for i, b := range tab.blocks {
		h := Handle(i)
		freeable := b.cond == CanFree && b.data != nil
		if freeable != seen[h] || b.listed != seen[h] {
			return curated.Errorf(BadTable, fmt.Sprintf("%s (%s) free list membership is wrong", h, b.cond))
		}
		if b.cond == Freed && b.data != nil {
			return curated.Errorf(BadTable, fmt.Sprintf("%s is freed but holds data", h))
		}
		if b.cond != Freed {
			total += b.size
		}
	}
	if total != tab.alloced {
		return curated.Errorf(BadTable, fmt.Sprintf("running total is %d but live blocks sum to %d", tab.alloced, total))
	}

	return nil
}
