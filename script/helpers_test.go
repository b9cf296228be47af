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
	"fmt"

	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/script"
)

// env is a minimal implementation of script.Env. collaborator calls are
// recorded as strings
type env struct {
	globals []int
	lists   map[script.Kind]*script.List
	calls   []string
	random  func(min, max int) int
	loadErr error
}

func newEnv() *env {
	return &env{
		globals: make([]int, 16),
		lists: map[script.Kind]*script.List{
			script.Proc: script.NewList(script.Proc),
			script.Rel:  script.NewList(script.Rel),
		},
	}
}

func (e *env) Globals() []int {
	return e.globals
}

func (e *env) Random(min, max int) int {
	if e.random != nil {
		return e.random(min, max)
	}
	return min
}

func (e *env) Attach(kind script.Kind, overlay, scr, priority, relScript, relOverlay int) {
	e.lists[kind].Attach(overlay, scr, priority, relScript, relOverlay)
}

func (e *env) Retarget(kind script.Kind, overlay, scr, oldFreeze, newFreeze int) int {
	return e.lists[kind].Retarget(overlay, scr, oldFreeze, newFreeze)
}

func (e *env) Load(slot int, size int, cond memman.Condition) error {
	e.calls = append(e.calls, fmt.Sprintf("load %d %d %s", slot, size, cond))
	return e.loadErr
}

func (e *env) Release(slot int) error {
	e.calls = append(e.calls, fmt.Sprintf("release %d", slot))
	return nil
}

func (e *env) SetCondition(slot int, cond memman.Condition) error {
	e.calls = append(e.calls, fmt.Sprintf("condition %d %s", slot, cond))
	return nil
}

func (e *env) PlaySound(sound, volume, pan int) {
	e.calls = append(e.calls, fmt.Sprintf("sound %d %d %d", sound, volume, pan))
}

func (e *env) MoveSprite(object, x, y int) {
	e.calls = append(e.calls, fmt.Sprintf("move %d %d %d", object, x, y))
}

func (e *env) Animate(object, animation int) {
	e.calls = append(e.calls, fmt.Sprintf("animate %d %d", object, animation))
}

func (e *env) SetMazePaused(paused bool) {
	e.calls = append(e.calls, fmt.Sprintf("mazepause %v", paused))
}

// assemble a program from lines of source. panics on error
func program(overlay, scr int, lines ...string) *script.Program {
	prg, err := script.AssembleProgram(overlay, scr, "", lines)
	if err != nil {
		panic(err)
	}
	return prg
}

// recorder is an Executor that records the order in which instances are
// stepped
type recorder struct {
	stepped []int
	err     error
}

func (r *recorder) Step(inst *script.Instance) error {
	r.stepped = append(r.stepped, inst.Script)
	return r.err
}
