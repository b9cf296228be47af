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

package rewind_test

import (
	"bytes"
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/rewind"
	"github.com/scenevm/scenevm/scene"
	"github.com/scenevm/scenevm/simulation"
	"github.com/scenevm/scenevm/snapshot"
	"github.com/scenevm/scenevm/test"
)

func newState(t *testing.T) *simulation.State {
	t.Helper()
	sc, err := scene.Builtin("ps11", false)
	test.DemandSuccess(t, err)
	st := simulation.NewState(nil)
	st.Rand().ZeroSeed = true
	st.Silence(true)
	test.DemandSuccess(t, st.LoadScene(sc))
	return st
}

func encode(t *testing.T, st *simulation.State) []byte {
	t.Helper()
	b, err := snapshot.Marshal(st.Snapshot())
	test.DemandSuccess(t, err)
	return b
}

// run the simulation for n frames, recording every frame. returns the
// encoded state at every frame
func run(t *testing.T, st *simulation.State, r *rewind.Rewind, n int) map[int][]byte {
	t.Helper()
	states := make(map[int][]byte)
	for range n {
		test.DemandSuccess(t, st.Step())
		r.RecordFrame()
		states[st.Frame()] = encode(t, st)
	}
	return states
}

func TestNoEntries(t *testing.T) {
	st := simulation.NewState(nil)
	r := rewind.NewRewind(st, nil)
	r.Reset()
	_, err := r.GotoFrame(10)
	test.ExpectSuccess(t, curated.Is(err, rewind.NoEntries))
	test.ExpectSuccess(t, curated.Is(r.GotoLast(), rewind.NoEntries))
}

func TestGotoFrame(t *testing.T) {
	st := newState(t)
	r := rewind.NewRewind(st, nil)
	r.Reset()
	states := run(t, st, r, 300)

	f := r.GetFrames()
	test.ExpectEquality(t, f.Start, 0)
	test.ExpectEquality(t, f.End, 300)
	test.ExpectEquality(t, f.Current, 300)

	fn, err := r.GotoFrame(120)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 120)
	test.ExpectEquality(t, st.Frame(), 120)
	test.ExpectSuccess(t, bytes.Equal(encode(t, st), states[120]))

	// out of range requests are clamped
	fn, err = r.GotoFrame(1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 300)
	test.ExpectSuccess(t, bytes.Equal(encode(t, st), states[300]))

	fn, err = r.GotoFrame(-5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 0)
	test.ExpectEquality(t, st.Frame(), 0)

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, st.Frame(), 300)
}

// frames between entries are recreated by running the simulation
func TestFrequency(t *testing.T) {
	st := newState(t)
	prf := rewind.DefaultPreferences()
	test.DemandSuccess(t, prf.Freq.Set(10))
	r := rewind.NewRewind(st, prf)
	r.Reset()
	states := run(t, st, r, 100)

	fn, err := r.GotoFrame(55)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 55)
	test.ExpectEquality(t, st.Frame(), 55)
	test.ExpectSuccess(t, bytes.Equal(encode(t, st), states[55]))

	// the timeline is kept for every frame
	test.ExpectEquality(t, len(r.GetTimeline().FrameNum), 100)
}

func TestMaxEntries(t *testing.T) {
	st := newState(t)
	prf := rewind.DefaultPreferences()
	test.DemandSuccess(t, prf.MaxEntries.Set(20))
	r := rewind.NewRewind(st, prf)
	r.Reset()
	run(t, st, r, 50)

	f := r.GetFrames()
	test.ExpectEquality(t, f.Start, 31)
	test.ExpectEquality(t, f.End, 50)

	// reducing the maximum trims immediately
	test.DemandSuccess(t, prf.MaxEntries.Set(5))
	test.ExpectEquality(t, r.GetFrames().Start, 46)
}

// recording after a rewind forgets the frames that were rewound
func TestSplice(t *testing.T) {
	st := newState(t)
	r := rewind.NewRewind(st, nil)
	r.Reset()
	run(t, st, r, 100)

	_, err := r.GotoFrame(40)
	test.DemandSuccess(t, err)
	run(t, st, r, 1)

	f := r.GetFrames()
	test.ExpectEquality(t, f.End, 41)
	tl := r.GetTimeline()
	test.ExpectEquality(t, tl.FrameNum[len(tl.FrameNum)-1], 41)
	test.ExpectEquality(t, len(tl.FrameNum), 41)
}

func TestComparison(t *testing.T) {
	st := newState(t)
	r := rewind.NewRewind(st, nil)
	r.Reset()

	st.Globals()[100] = 7
	d := r.CompareGlobals()
	test.DemandEquality(t, len(d), 1)
	test.ExpectEquality(t, d[0], rewind.Difference{Global: 100, Was: 0, Now: 7})

	r.UpdateComparison()
	test.ExpectEquality(t, len(r.CompareGlobals()), 0)

	// a locked comparison point is not updated
	r.LockComparison(true)
	st.Globals()[100] = 8
	r.UpdateComparison()
	test.ExpectEquality(t, len(r.CompareGlobals()), 1)
	test.ExpectSuccess(t, r.GetComparisonState().Locked)
}
