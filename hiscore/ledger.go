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

package hiscore

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/simulation"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS results (
	id       TEXT PRIMARY KEY,
	session  TEXT NOT NULL,
	scene    TEXT NOT NULL,
	original INTEGER NOT NULL,
	exit     INTEGER NOT NULL,
	score    INTEGER NOT NULL,
	hits     INTEGER NOT NULL,
	frames   INTEGER NOT NULL,
	abandon  INTEGER NOT NULL,
	created  INTEGER NOT NULL
)`

const columns = "id, session, scene, original, exit, score, hits, frames, abandon, created"

// Entry is a single result in the ledger.
type Entry struct {
	ID      string
	Session string
	Time    time.Time
	simulation.Result
}

func (e Entry) String() string {
	return fmt.Sprintf("%s [%s]", e.Result, e.Time.Format(time.DateTime))
}

// Ledger of scene results.
type Ledger struct {
	crit    sync.Mutex
	db      *sql.DB
	session string
}

// Open the ledger at the path. The database is created if it does not exist.
func Open(pth string) (*Ledger, error) {
	db, err := sql.Open("sqlite", pth)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}

	_, err = db.Exec("PRAGMA busy_timeout = 5000")
	if err != nil {
		db.Close()
		return nil, curated.Errorf(OpenError, err)
	}

	_, err = db.Exec(schema)
	if err != nil {
		db.Close()
		return nil, curated.Errorf(OpenError, err)
	}

	return &Ledger{
		db:      db,
		session: uuid.New().String(),
	}, nil
}

// Close the ledger.
func (l *Ledger) Close() error {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.db.Close()
}

// Session returns the ID of the session. Entries recorded by the ledger are
// tagged with this ID.
func (l *Ledger) Session() string {
	return l.session
}

// Record the result of a scene.
func (l *Ledger) Record(r simulation.Result) (Entry, error) {
	l.crit.Lock()
	defer l.crit.Unlock()

	e := Entry{
		ID:      uuid.New().String(),
		Session: l.session,
		Time:    time.Now(),
		Result:  r,
	}

	_, err := l.db.Exec("INSERT INTO results ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.Session, r.Scene, r.Original, r.Exit, r.Score, r.Hits, r.Frames, r.Abandon, e.Time.UnixNano())
	if err != nil {
		return Entry{}, curated.Errorf(RecordError, err)
	}

	return e, nil
}

// Best returns the best result for the scene. Returns the NoEntries error if
// there are no results for the scene.
func (l *Ledger) Best(scene string, original bool) (Entry, error) {
	l.crit.Lock()
	defer l.crit.Unlock()

	row := l.db.QueryRow("SELECT "+columns+" FROM results WHERE scene = ? AND original = ? ORDER BY score DESC, frames ASC, created ASC LIMIT 1",
		scene, original)

	e, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, curated.Errorf(NoEntries, scene)
		}
		return Entry{}, curated.Errorf(QueryError, err)
	}

	return e, nil
}

// Recent returns the most recent results, newest first. Only results from
// the current session are returned if sessionOnly is true.
func (l *Ledger) Recent(n int, sessionOnly bool) ([]Entry, error) {
	l.crit.Lock()
	defer l.crit.Unlock()

	var rows *sql.Rows
	var err error
	if sessionOnly {
		rows, err = l.db.Query("SELECT "+columns+" FROM results WHERE session = ? ORDER BY created DESC, rowid DESC LIMIT ?", l.session, n)
	} else {
		rows, err = l.db.Query("SELECT "+columns+" FROM results ORDER BY created DESC, rowid DESC LIMIT ?", n)
	}
	if err != nil {
		return nil, curated.Errorf(QueryError, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, curated.Errorf(QueryError, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(QueryError, err)
	}

	return entries, nil
}

// scanner is satisfied by both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (Entry, error) {
	var e Entry
	var created int64
	err := s.Scan(&e.ID, &e.Session, &e.Scene, &e.Original, &e.Exit, &e.Score,
		&e.Hits, &e.Frames, &e.Abandon, &created)
	if err != nil {
		return Entry{}, err
	}
	e.Time = time.Unix(0, created)
	return e, nil
}
