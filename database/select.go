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

import "github.com/scenevm/scenevm/curated"

// SelectAll entries in the database. onSelect can be nil. An empty database
// is not an error.
//
// The select process stops at the first error returned by onSelect(). The
// entry that caused the error is returned along with the error.
func (db *Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	if db.NumEntries() == 0 {
		return nil, nil
	}
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If the list of keys
// is empty then all keys are matched. onSelect can be nil.
//
// Returns the last matched entry in the selection or an error with the last
// entry matched before the error occurred.
func (db *Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return entry, curated.Errorf(KeyError, key)
		}
		entry = ent
		if err := onSelect(entry); err != nil {
			return entry, err
		}
	}

	if entry == nil {
		return nil, curated.Errorf(SelectEmpty)
	}

	return entry, nil
}
