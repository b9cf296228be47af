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

package database

// Sentinal error patterns.
const (
	NotAvailable   = "database: file not available (%s)"
	DatabaseError  = "database: %v"
	KeyError       = "database: key not available (%d)"
	DuplicateType  = "database: duplicate entry type (%s)"
	UnknownType    = "database: unknown entry type (%s) for key %d"
	DuplicateKey   = "database: duplicate key (%d)"
	MalformedEntry = "database: malformed entry on line %d"
	IllegalField   = "database: field contains a separator (%q)"
	TooManyEntries = "database: maximum entries exceeded (max %d)"
	ReadOnly       = "database: session is read only"
	SelectEmpty    = "database: select empty"
)
