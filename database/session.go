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
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
)

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the abilities of
// the activities lower down the scale.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called before the database file is read and should register the entry
// types the database will contain.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf(DatabaseError, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if activity == ActivityCreating {
				return db, nil
			}
			return nil, curated.Errorf(NotAvailable, path)
		}
		return nil, curated.Errorf(DatabaseError, err)
	}
	defer f.Close()

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. The database file is only written if
// commit is true and the session is not a reading session.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	// write to a temporary file first so that a failed write doesn't destroy
	// the existing database
	tmp := db.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	err = db.write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf(DatabaseError, cerr)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, db.path); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func (db *Session) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	var line int
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}

		fields := strings.Split(s, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf(MalformedEntry, line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf(MalformedEntry, line)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(DuplicateKey, key)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf(UnknownType, fields[leaderFieldID], key)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

func (db *Session) write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		s := recordHeader(key, ent.EntryType())
		if len(fields) > 0 {
			s = s + fieldSep + strings.Join(fields, fieldSep)
		}

		if _, err := bw.WriteString(s + entrySep); err != nil {
			return curated.Errorf(DatabaseError, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}
