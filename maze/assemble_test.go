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

package maze_test

import (
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/test"
)

func TestAssembleSymbols(t *testing.T) {
	sym := maze.Symbols{}
	sym.Add("PS11Target1", 9)
	sym.Add("PS11Target7", 15)
	sym.Add("Counter", 2)

	in, err := maze.Assemble("Activate counter 20", sym)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, in, maze.Instruction(maze.Activate{Var: 2, Max: 20}))

	in, err = maze.Assemble("pausedreset1of2 PS11Target7, PS11Target1", sym)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, in, maze.Instruction(maze.PausedReset1of2{A: 15, B: 9}))

	// integers are accepted wherever a symbol is
	in, err = maze.Assemble("pausedreset1of2 23 PS11Target1", sym)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, in, maze.Instruction(maze.PausedReset1of2{A: 23, B: 9}))

	_, err = maze.Assemble("obstacleset PS11Target99", sym)
	test.ExpectSuccess(t, curated.Is(err, maze.AssemblyError))
}

func TestAssembleErrors(t *testing.T) {
	for _, l := range []string{
		"",
		"jump 10",
		"restart 1",
		"move",
		"targetset 1 2",
		"wait -1",
		"waitrandom 10 -10",
	} {
		_, err := maze.Assemble(l, nil)
		test.ExpectSuccess(t, curated.Is(err, maze.AssemblyError), l)
	}
}

// the String() form of every instruction can be assembled back into the same
// instruction
func TestAssembleString(t *testing.T) {
	for _, in := range []maze.Instruction{
		maze.Activate{Var: 1, Max: 20},
		maze.VariableInc{Var: 1, Max: 20},
		maze.TargetSet{Item: 9, Value: true},
		maze.TargetSet{Item: 9, Value: false},
		maze.EnemySet{Item: 9},
		maze.EnemyReset{Item: 9},
		maze.ObstacleSet{Item: 9},
		maze.ObstacleReset{Item: 9},
		maze.Facing{Angle: 860},
		maze.Position{Point: 0},
		maze.Move{Point: 79},
		maze.Wait{Duration: 500},
		maze.WaitRandom{Min: 3000, Max: 6000},
		maze.Rotate{Angle: 644, Speed: 80},
		maze.Shoot{Sound: 27, Volume: 33},
		maze.PlaySound{Sound: 31, Volume: 33},
		maze.PausedSet{Item: 9},
		maze.PausedReset{Item: 12},
		maze.PausedReset1of2{A: 15, B: 10},
		maze.Restart{},
		maze.Leave{},
	} {
		out, err := maze.Assemble(in.String(), nil)
		test.ExpectSuccess(t, err, in)
		test.ExpectEquality(t, out, in)
	}
}

func TestAssembleProgram(t *testing.T) {
	prog, err := maze.AssembleProgram([]string{
		"# comment",
		"",
		"  facing 50 ",
		"restart",
	}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(prog), 2)

	_, err = maze.AssembleProgram([]string{"facing 50", "bogus"}, nil)
	test.ExpectFailure(t, err)
}
