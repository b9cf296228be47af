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

package script_test

import (
	"testing"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/script"
	"github.com/scenevm/scenevm/test"
)

func TestAssembleRoundTrip(t *testing.T) {
	lines := []string{
		"end",
		"yield",
		"restart",
		"wait 100",
		"waitrandom g1 l2",
		"set l0 -5",
		"add g10 l0",
		"jump 3",
		"jumpif g1 >= 10 0",
		"attach rel 2 7 30",
		"freeze proc -1 -1 9999 0",
		"load 1 g4 canfree",
		"release 1",
		"condition 1 dontfree",
		"sound 555 12 -20",
		"move l1 100 200",
		"animate 3 g2",
		"mazepause off",
	}

	for _, l := range lines {
		op, err := script.Assemble(l)
		if !test.ExpectSuccess(t, err, l) {
			continue
		}
		test.ExpectEquality(t, op.String(), l)
	}
}

func TestAssembleNormalisation(t *testing.T) {
	op, err := script.Assemble("  WAIT   G1   # comment")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, op, script.Op(script.Wait{Ticks: script.Global(1)}))

	op, err = script.Assemble("attach proc 1 2")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, op.String(), "attach proc 1 2 0")
}

func TestAssembleErrors(t *testing.T) {
	bad := []string{
		"",
		"# just a comment",
		"nosuchop",
		"end 1",
		"wait",
		"wait x",
		"set 1 2",
		"jumpif g1 ~ 2 0",
		"attach global 1 2",
		"load 1 10 maybe",
		"set l99 1",
		"mazepause sometimes",
	}

	for _, l := range bad {
		_, err := script.Assemble(l)
		test.ExpectSuccess(t, curated.Is(err, script.AssemblyError), l)
	}
}

func TestAssembleProgram(t *testing.T) {
	prg, err := script.AssembleProgram(1, 2, "intro", []string{
		"# intro script",
		"wait 10",
		"",
		"end # done",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(prg.Ops), 2)
	test.ExpectEquality(t, prg.String(), "intro (1:2)")

	_, err = script.AssembleProgram(1, 2, "", []string{"wait 10", "bad"})
	test.ExpectFailure(t, err)
}
