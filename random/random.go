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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// FrameCounter is implemented by the simulation state.
type FrameCounter interface {
	Frame() int
}

// Random is a random number generator that is sensitive to the current frame
// of the simulation.
type Random struct {
	frames FrameCounter

	// draws made in the current frame
	frame int
	draws int64

	// use zero seed rather than the random base seed. this is only really
	// useful for tests and replays where random numbers must be predictable
	ZeroSeed bool

	// Seed replaces the base seed when ZeroSeed is false and Seed is non-zero
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frames FrameCounter) *Random {
	return &Random{
		frames: frames,
		frame:  -1,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	f := rnd.frames.Frame()
	if f != rnd.frame {
		rnd.frame = f
		rnd.draws = 0
	}
	rnd.draws++

	v := int64(f)<<16 ^ rnd.draws

	switch {
	case rnd.ZeroSeed:
	case rnd.Seed != 0:
		v += rnd.Seed
	default:
		v += baseSeed
	}

	return rand.New(rand.NewSource(v))
}

// Intn returns a number in the range [0, n). Returns zero if n is less than
// or equal to zero.
func (rnd *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rnd.rand().Intn(n)
}

// Range returns a number in the inclusive range [min, max]. If max is less
// than min then the two values are swapped. A degenerate range always
// returns min.
func (rnd *Random) Range(min int, max int) int {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + rnd.Intn(max-min+1)
}

// Reset forgets the draws made in the current frame. It should be called
// whenever the frame counter is moved backwards.
func (rnd *Random) Reset() {
	rnd.frame = -1
	rnd.draws = 0
}
