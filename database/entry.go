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

import (
	"strings"

	"github.com/scenevm/scenevm/curated"
)

// SerialisedEntry is the Entry data represented as an array of strings.
type SerialisedEntry []string

// Deserialiser extracts an Entry from the serialised fields. The leading
// fields used by the database itself are not included.
type Deserialiser func(fields SerialisedEntry) (Entry, error)

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type in
	// the database
	EntryType() string

	// String should return information about the entry in a human readable
	// format. the machine readable representation is returned by Serialise()
	String() string

	// return the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// a cleanup is performed when the entry is deleted from the database
	CleanUp() error
}

// RegisterEntryType tells the database what entries it may expect and how to
// deserialise them.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf(DuplicateType, id)
	}
	db.entryTypes[id] = des
	return nil
}

// check that none of the fields will corrupt the file
func checkFields(fields SerialisedEntry) error {
	for _, f := range fields {
		if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
			return curated.Errorf(IllegalField, f)
		}
	}
	return nil
}
