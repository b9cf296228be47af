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

package random_test

import (
	"testing"

	"github.com/scenevm/scenevm/random"
	"github.com/scenevm/scenevm/test"
)

type frames struct {
	n int
}

func (f *frames) Frame() int {
	return f.n
}

func TestRandom(t *testing.T) {
	fa := &frames{n: 100}
	fb := &frames{n: 100}
	a := random.NewRandom(fa)
	b := random.NewRandom(fb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		if i%10 == 0 {
			fa.n++
			fb.n++
		}
	}
}

func TestRange(t *testing.T) {
	f := &frames{}
	rnd := random.NewRandom(f)

	// degenerate range collapses to a single value
	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, rnd.Range(5000, 5000), 5000)
	}

	for i := 0; i < 1000; i++ {
		v := rnd.Range(10, 20)
		test.ExpectSuccess(t, v >= 10 && v <= 20, v)
		f.n++
	}

	// reversed bounds
	for i := 0; i < 100; i++ {
		v := rnd.Range(20, 10)
		test.ExpectSuccess(t, v >= 10 && v <= 20, v)
	}

	test.ExpectEquality(t, rnd.Intn(0), 0)
}

// draws made after the frame counter is wound back repeat the draws made the
// first time the frame was seen
func TestReset(t *testing.T) {
	f := &frames{n: 10}
	rnd := random.NewRandom(f)
	rnd.ZeroSeed = true

	a := []int{rnd.Intn(1000), rnd.Intn(1000), rnd.Intn(1000)}
	rnd.Reset()
	b := []int{rnd.Intn(1000), rnd.Intn(1000), rnd.Intn(1000)}
	for i := range a {
		test.ExpectEquality(t, a[i], b[i])
	}
}
