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

package simulation

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/script"
	"github.com/scenevm/scenevm/snapshot"
)

// Snapshot returns a copy of the dynamic state of the simulation. Returns nil
// if no scene is loaded.
func (st *State) Snapshot() *snapshot.Snapshot {
	st.crit.Lock()
	defer st.crit.Unlock()

	if st.sc == nil {
		return nil
	}

	s := &snapshot.Snapshot{
		Version:  snapshot.Version,
		Scene:    st.sc.Name,
		Original: st.sc.Original,
		Frame:    st.frame,
		Globals:  append([]int(nil), st.globals...),
		Rel:      instances(st.rel),
		Proc:     instances(st.proc),
		Maze:     st.mz.Save(),
		Exited:   st.exited,
		Ambient:  append([]int(nil), st.ambient.timers...),
	}

	age := make(map[memman.Handle]int)
	for i, h := range st.mem.FreeList() {
		age[h] = i
	}
	for slot, h := range st.slots {
		sl := snapshot.Slot{
			Slot: slot,
			Size: st.mem.Size(h),
			Cond: st.mem.Condition(h),
			Age:  snapshot.NotFreeable,
		}
		if sl.Cond == memman.Freed {
			sl.Size = 0
		}
		if a, ok := age[h]; ok {
			sl.Age = a
		}
		s.Slots = append(s.Slots, sl)
	}
	slices.SortFunc(s.Slots, func(a, b snapshot.Slot) int {
		return cmp.Compare(a.Slot, b.Slot)
	})

	return s
}

func instances(l *script.List) []script.Instance {
	var c []script.Instance
	for _, inst := range l.Instances() {
		c = append(c, *inst)
	}
	return c
}

func describe(name string, original bool) string {
	if original {
		return fmt.Sprintf("%s (original)", name)
	}
	return fmt.Sprintf("%s (fixed)", name)
}

// Restore the simulation to the snapshot. The snapshot must be of the scene
// that is loaded.
//
// Resource slots are reallocated with the size and condition they had when
// the snapshot was taken. Freeable slots are returned to the free list in the
// order they were in. The contents of the slots are not restored.
func (st *State) Restore(s *snapshot.Snapshot) error {
	st.crit.Lock()
	defer st.crit.Unlock()

	if st.sc == nil {
		return curated.Errorf(NoScene)
	}
	if s.Scene != st.sc.Name || s.Original != st.sc.Original {
		return curated.Errorf(SceneMismatch, describe(s.Scene, s.Original), describe(st.sc.Name, st.sc.Original))
	}

	st.frame = s.Frame
	st.rnd.Reset()
	clear(st.globals)
	copy(st.globals, s.Globals)

	st.rel.Clear()
	for _, inst := range s.Rel {
		st.rel.Restore(inst)
	}
	st.proc.Clear()
	for _, inst := range s.Proc {
		st.proc.Restore(inst)
	}

	st.mz.Restore(s.Maze)

	if err := st.restoreSlots(s.Slots); err != nil {
		return err
	}

	st.retargets = st.retargets[:0]
	st.exited = s.Exited

	st.audio.StopLoops()
	st.ambient = ambient{}
	if !st.exited {
		st.ambient.restore(st, st.sc.Ambient, s.Ambient)
	}

	st.renderer.UpdateTargets(st.targets())
	logger.Logf(st, "simulation", "restored to frame %d", st.frame)

	return nil
}

// the budget is not enforced until every slot has been reallocated. the
// snapshot was taken of a table that was already within budget
func (st *State) restoreSlots(slots []snapshot.Slot) error {
	st.releaseSlots()

	maxAlloc := st.mem.MaxAlloc()
	st.mem.SetMaxAlloc(math.MaxInt)
	defer func() {
		st.mem.SetMaxAlloc(maxAlloc)
		st.mem.EnforceBudget()
	}()

	// blocks are added to the head of the free list so the oldest block is
	// reallocated first
	slots = slices.Clone(slots)
	slices.SortStableFunc(slots, func(a, b snapshot.Slot) int {
		return cmp.Compare(b.Age, a.Age)
	})

	for _, sl := range slots {
		if sl.Cond == memman.Freed {
			st.slots[sl.Slot] = st.mem.NewHandle()
			continue
		}
		if err := st.Load(sl.Slot, sl.Size, sl.Cond); err != nil {
			return err
		}
	}

	return nil
}
