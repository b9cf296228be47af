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

package performance

import (
	"fmt"
	"io"
	"time"
)

// Stepper is the simulation being measured. It is implemented by
// simulation.State.
type Stepper interface {
	Step() error
	Frame() int
}

// Leadtime is the time the simulation is run for before the measurement
// starts.
var Leadtime = 2 * time.Second

// Check the performance of the simulation.
//
// The simulation is run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. The frame duration is used to calculate the accuracy of
// the measurement.
func Check(output io.Writer, profile Profile, sim Stepper, frameDuration time.Duration, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startFrame int
	var elapsed time.Duration

	runner := func() error {
		lead := time.Now()
		for time.Since(lead) < Leadtime {
			if err := sim.Step(); err != nil {
				return err
			}
		}

		startFrame = sim.Frame()
		start := time.Now()
		for time.Since(start) < dur {
			if err := sim.Step(); err != nil {
				return err
			}
		}
		elapsed = time.Since(start)

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := sim.Frame() - startFrame
	fps, accuracy := CalcFPS(frameDuration, numFrames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)

	return nil
}
