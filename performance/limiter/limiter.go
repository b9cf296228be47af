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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(66 * time.Millisecond)
//	defer lim.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		st.Step()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter will trigger once every period.
type Limiter struct {
	period atomic.Int64

	tick chan bool
	done chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(period time.Duration) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		done: make(chan bool),
	}
	lim.SetLimit(period)

	// run ticker concurrently. the sleep is adjusted every iteration to
	// account for the time taken by the previous iteration
	go func() {
		adjusted := lim.limit()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.limit()
			adjusted = max(0, min(adjusted, lim.limit()))
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the period of the Limiter.
func (lim *Limiter) SetLimit(period time.Duration) {
	lim.period.Store(int64(period))
}

func (lim *Limiter) limit() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the Limiter. Wait() must not be called after Close().
func (lim *Limiter) Close() {
	close(lim.done)
}
