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

package performance_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/scenevm/scenevm/performance"
	"github.com/scenevm/scenevm/test"
)

type stepper struct {
	frame int
	fail  int
}

func (s *stepper) Frame() int { return s.frame }

func (s *stepper) Step() error {
	if s.fail > 0 && s.frame >= s.fail {
		return errors.New("step failed")
	}
	s.frame++
	return nil
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(50*time.Millisecond, 40, 2*time.Second)
	test.ExpectApproximate(t, fps, 20.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(50*time.Millisecond, 40, time.Second)
	test.ExpectApproximate(t, fps, 40.0, 0.001)
	test.ExpectApproximate(t, accuracy, 200.0, 0.001)

	fps, _ = performance.CalcFPS(50*time.Millisecond, 40, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfileString("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfileString("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfileString("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	performance.Leadtime = 0

	w := &test.CompareWriter{}
	s := &stepper{}
	err := performance.Check(w, performance.ProfileNone, s, 66*time.Millisecond, "10ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, s.frame > 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), " fps ("))

	err = performance.Check(w, performance.ProfileNone, &stepper{fail: 10}, 66*time.Millisecond, "10ms")
	test.ExpectFailure(t, err)

	err = performance.Check(w, performance.ProfileNone, &stepper{}, 66*time.Millisecond, "ten seconds")
	test.ExpectFailure(t, err)
}
