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

// Sentinal error patterns. Use curated.Is() to test for them.
//
// All errors returned by this package are fatal. They indicate a programming
// or configuration error rather than a recoverable condition.
const (
	AllocationFailed = "memman: allocation failed: %v"
	IllegalCondition = "memman: illegal condition: %v"
	UnknownHandle    = "memman: unknown handle: %v"
	BadTable         = "memman: bad table: %v"
)
