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

// Package memman is a budgeted resource allocator. Blocks of memory are
// allocated against handles and tagged with a Condition. Blocks with the
// CanFree condition are caches (decoded sound and sprite data for example)
// that can be regenerated from source assets and so may be evicted when the
// running total of allocated bytes exceeds the budget.
//
// Freeable blocks are kept in a doubly linked list. New entries are always
// added at the head of the list and eviction always takes from the tail, so
// the oldest freeable block is evicted first. Blocks that are made freeable
// again after being pinned go to the head of the list like any other.
//
// Handles are indexes into an arena owned by the Table. They remain valid
// for the lifetime of the Table, even after the block they refer to has been
// released or evicted.
//
// The Table is not safe for concurrent use. It is owned by the simulation
// and should be accessed only from the simulation goroutine.
package memman
