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

package regression

// Sentinal error patterns.
const (
	InvalidKey      = "regression: invalid key (%s)"
	RegressionError = "regression: %v"
	RegressionFail  = "regression: %d of %d tests did not succeed"
	BadEntry        = "regression: %s field: %v"
	NoFrames        = "regression: number of frames must be positive"
)
