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

package maze

import "fmt"

// Vector is a position in the world.
type Vector struct {
	X float64
	Y float64
	Z float64
}

func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v.X, v.Y, v.Z)
}

// lerp returns the point at fraction f of the way from a to b.
func lerp(a, b Vector, f float64) Vector {
	return Vector{
		X: a.X + (b.X-a.X)*f,
		Y: a.Y + (b.Y-a.Y)*f,
		Z: a.Z + (b.Z-a.Z)*f,
	}
}

// FullCircle is the number of angle units in a complete turn.
const FullCircle = 1024

func normaliseAngle(a int) int {
	a %= FullCircle
	if a < 0 {
		a += FullCircle
	}
	return a
}
