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

package hiscore_test

import (
	"path/filepath"
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/hiscore"
	"github.com/scenevm/scenevm/simulation"
	"github.com/scenevm/scenevm/test"
)

func TestLedger(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "hiscore.db")

	l, err := hiscore.Open(pth)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, l.Session(), "")

	_, err = l.Best("ps11", true)
	test.ExpectSuccess(t, curated.Is(err, hiscore.NoEntries))

	results := []simulation.Result{
		{Scene: "ps11", Original: true, Exit: 0, Score: 3, Hits: 4, Frames: 900},
		{Scene: "ps11", Original: true, Exit: 0, Score: 5, Hits: 6, Frames: 1200},
		{Scene: "ps11", Original: true, Exit: 1, Score: 5, Hits: 5, Frames: 1000},
		{Scene: "ps11", Original: false, Exit: 0, Score: 10, Hits: 10, Frames: 500},
		{Scene: "ps11", Original: true, Exit: 0, Score: -2, Frames: 10, Abandon: true},
	}
	for _, r := range results {
		e, err := l.Record(r)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, e.Session, l.Session())
		test.ExpectInequality(t, e.ID, "")
	}

	// equal scores are decided by the number of frames
	best, err := l.Best("ps11", true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, best.Result, results[2])

	best, err = l.Best("ps11", false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, best.Result, results[3])

	recent, err := l.Recent(2, true)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(recent), 2)
	test.ExpectEquality(t, recent[0].Result, results[4])
	test.ExpectEquality(t, recent[1].Result, results[3])

	test.ExpectSuccess(t, l.Close())
}

// results survive the closing of the ledger. a new session is started when
// the ledger is opened again
func TestSessions(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "hiscore.db")

	l, err := hiscore.Open(pth)
	test.DemandSuccess(t, err)
	first := l.Session()
	_, err = l.Record(simulation.Result{Scene: "ps11", Original: true, Score: 1})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, l.Close())

	l, err = hiscore.Open(pth)
	test.DemandSuccess(t, err)
	defer l.Close()
	test.ExpectInequality(t, l.Session(), first)

	recent, err := l.Recent(10, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(recent), 0)

	recent, err = l.Recent(10, false)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(recent), 1)
	test.ExpectEquality(t, recent[0].Session, first)
	test.ExpectEquality(t, recent[0].Score, 1)
}
