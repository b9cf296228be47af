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

// Handle is a reference to a block in the Table.
type Handle int

// NoHandle is used as the terminator of the free list and as the return
// value of a failed allocation.
const NoHandle Handle = -1

func (h Handle) String() string {
	if h == NoHandle {
		return "none"
	}
	return fmt.Sprintf("#%d", int(h))
}

// DefaultHardLimit is the largest single allocation permitted unless the
// HardLimit field of the Table is changed.
const DefaultHardLimit = 64 * 1024 * 1024

type block struct {
	data []byte
	size int
	cond Condition

	// links in the free list. listed is true while the block is in the list,
	// which allows the head and tail of the list (which have a NoHandle link)
	// to be distinguished from an unlisted block
	prev   Handle
	next   Handle
	listed bool
}

// Table of memory blocks with a running total of allocated bytes and a free
// list of evictable blocks.
type Table struct {
	blocks []block

	// head and tail of the free list
	head Handle
	tail Handle

	alloced  int
	maxAlloc int

	// HardLimit is the largest single allocation. Requests above this size
	// fail with the AllocationFailed error
	HardLimit int

	// Permission is used when logging. defaults to logger.Allow
	Permission logger.Permission

	// OnEvict is called after a block has been evicted by EnforceBudget()
	OnEvict func(h Handle, size int)
}

// NewTable is the preferred method of initialisation for the Table type. The
// maxAlloc argument is the budget in bytes.
func NewTable(maxAlloc int) *Table {
	return &Table{
		head:       NoHandle,
		tail:       NoHandle,
		maxAlloc:   maxAlloc,
		HardLimit:  DefaultHardLimit,
		Permission: logger.Allow,
	}
}

func (tab *Table) String() string {
	return fmt.Sprintf("%d/%d bytes in %d blocks (%d freeable)", tab.alloced, tab.maxAlloc, len(tab.blocks), tab.Freeable())
}

// SetMaxAlloc changes the budget. The budget is not enforced until the next
// allocation or call to EnforceBudget().
func (tab *Table) SetMaxAlloc(maxAlloc int) {
	tab.maxAlloc = maxAlloc
}

// MaxAlloc returns the budget in bytes.
func (tab *Table) MaxAlloc() int {
	return tab.maxAlloc
}

// Alloced returns the running total of allocated bytes.
func (tab *Table) Alloced() int {
	return tab.alloced
}

// Len returns the number of handles in the table.
func (tab *Table) Len() int {
	return len(tab.blocks)
}

func (tab *Table) block(h Handle) (*block, error) {
	if h < 0 || int(h) >= len(tab.blocks) {
		return nil, curated.Errorf(UnknownHandle, h)
	}
	return &tab.blocks[h], nil
}

// NewHandle returns a new and empty handle. The handle has the Freed
// condition until it is allocated with Reallocate().
func (tab *Table) NewHandle() Handle {
	tab.blocks = append(tab.blocks, block{
		cond: Freed,
		prev: NoHandle,
		next: NoHandle,
	})
	return Handle(len(tab.blocks) - 1)
}

// Allocate a zeroed block of size bytes with the specified condition. The
// budget is enforced after the allocation and so the returned block may
// already have been evicted if it is freeable and the table is over budget.
func (tab *Table) Allocate(size int, cond Condition) (Handle, error) {
	h := tab.NewHandle()
	if err := tab.Reallocate(h, size, cond); err != nil {
		return NoHandle, err
	}
	return h, nil
}

// Reallocate allocates a new block of memory for an existing handle. Any
// data currently held by the handle is released first.
func (tab *Table) Reallocate(h Handle, size int, cond Condition) error {
	b, err := tab.block(h)
	if err != nil {
		return curated.Errorf(AllocationFailed, err)
	}
	if !cond.Valid() {
		return curated.Errorf(AllocationFailed, curated.Errorf(IllegalCondition, cond))
	}
	if size < 0 || size > tab.HardLimit {
		return curated.Errorf(AllocationFailed, fmt.Sprintf("can't alloc %d bytes of memory", size))
	}

	if b.cond != Freed {
		tab.Release(h)
	}

	b.data = make([]byte, size)
	b.size = size
	b.cond = cond
	tab.alloced += size

	if cond == CanFree {
		tab.addToFreeList(h)
	} else if b.listed {
		// stale entry in the free list
		tab.removeFromFreeList(h)
	}

	tab.EnforceBudget()

	return nil
}

// Release the block held by the handle. Releasing a handle that has already
// been released (or evicted) has no effect.
func (tab *Table) Release(h Handle) {
	b, err := tab.block(h)
	if err != nil {
		logger.Log(tab.Permission, "memman", err)
		return
	}
	if b.cond == Freed {
		return
	}

	tab.alloced -= b.size
	if b.cond == CanFree {
		tab.removeFromFreeList(h)
	}
	b.data = nil
	b.cond = Freed
}

// SetCondition changes the condition of a block. Only CanFree and DontFree
// are allowed. Changing the condition of a released block has no effect.
func (tab *Table) SetCondition(h Handle, cond Condition) error {
	if !cond.Valid() {
		return curated.Errorf(IllegalCondition, cond)
	}

	b, err := tab.block(h)
	if err != nil {
		return err
	}

	if b.cond == cond {
		return nil
	}

	if b.cond == Freed {
		logger.Logf(tab.Permission, "memman", "condition of %s not changed to %s: block has been freed", h, cond)
		return nil
	}

	b.cond = cond
	switch cond {
	case CanFree:
		tab.addToFreeList(h)
	case DontFree:
		tab.removeFromFreeList(h)
	}

	return nil
}

// EnforceBudget evicts the oldest freeable blocks until the running total
// is within budget or there are no freeable blocks remaining. Returns the
// number of blocks evicted.
//
// It is not an error for the running total to remain above the budget.
func (tab *Table) EnforceBudget() int {
	var n int
	for tab.alloced > tab.maxAlloc && tab.tail != NoHandle {
		h := tab.tail
		b := &tab.blocks[h]

		tab.removeFromFreeList(h)
		tab.alloced -= b.size
		b.data = nil
		b.cond = Freed
		n++

		if tab.OnEvict != nil {
			tab.OnEvict(h, b.size)
		}
	}
	return n
}

// Data returns the buffer held by the handle. Returns nil if the handle has
// no data.
func (tab *Table) Data(h Handle) []byte {
	b, err := tab.block(h)
	if err != nil {
		return nil
	}
	return b.data
}

// Size returns the size of the most recent allocation for the handle.
func (tab *Table) Size(h Handle) int {
	b, err := tab.block(h)
	if err != nil {
		return 0
	}
	return b.size
}

// Condition returns the condition of the handle. An unknown handle is
// reported as Freed.
func (tab *Table) Condition(h Handle) Condition {
	b, err := tab.block(h)
	if err != nil {
		return Freed
	}
	return b.cond
}
