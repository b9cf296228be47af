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

// Package database is a very simple flat-file store for structured entries of
// arbitrary type. Entries are kept one per line and are keyed by a small
// integer that is allocated when the entry is added.
//
// Use of a database requires starting a session, coupled with an EndSession()
// once the session is finished with:
//
//	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// The activity argument says what the session intends to do. ActivityCreating
// will create the database file if it doesn't already exist. ActivityReading
// sessions never write the file back to disk.
//
// The initialisation function registers the entry types the database should
// expect. Each entry type has an ID string that is stored alongside the entry
// and a Deserialiser that turns the stored fields back into an Entry:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("scene", deserialiseScene)
//	}
//
// Fields are plain strings and must not contain the field separator or a
// newline. Adding an entry with such a field is an error.
package database
