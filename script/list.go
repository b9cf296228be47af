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

package script

import (
	"github.com/scenevm/scenevm/curated"
)

// Executor advances an instance by one step.
type Executor interface {
	Step(inst *Instance) error
}

// the index of the sentinel head and the value of a link at the end of the
// list
const (
	head = 0
	end  = -1
)

// List of script instances. The list is an arena of instances linked by
// index. Slots freed by SweepFinished() are reused by Attach().
type List struct {
	kind   Kind
	nodes  []*Instance
	unused []int
	tail   int
	serial int
}

// NewList is the preferred method of initialisation for the List type.
func NewList(kind Kind) *List {
	return &List{
		kind: kind,
		nodes: []*Instance{
			{Kind: kind, Script: Finished, next: end},
		},
		tail: head,
	}
}

// Kind returns the kind of every instance in the list.
func (l *List) Kind() Kind {
	return l.kind
}

// Len returns the number of nodes in the list, including the head.
func (l *List) Len() int {
	n := 1
	for i := l.nodes[head].next; i != end; i = l.nodes[i].next {
		n++
	}
	return n
}

// Attach a new instance at the tail of the list.
func (l *List) Attach(overlay, script, priority, relScript, relOverlay int) *Instance {
	l.serial++
	inst := &Instance{
		ID:             l.serial,
		Overlay:        overlay,
		Script:         script,
		Priority:       priority,
		Kind:           l.kind,
		RelatedScript:  relScript,
		RelatedOverlay: relOverlay,
		next:           end,
	}

	var idx int
	if n := len(l.unused); n > 0 {
		idx = l.unused[n-1]
		l.unused = l.unused[:n-1]
		l.nodes[idx] = inst
	} else {
		idx = len(l.nodes)
		l.nodes = append(l.nodes, inst)
	}

	l.nodes[l.tail].next = idx
	l.tail = idx

	return inst
}

// AdvanceAll steps every instance after the head that is not frozen and not
// finished. Instances attached during the pass are stepped in the same pass.
//
// The pass stops at the first error. The error is returned with the context
// of the failing instance.
func (l *List) AdvanceAll(ex Executor) error {
	for i := l.nodes[head].next; i != end; i = l.nodes[i].next {
		inst := l.nodes[i]
		if inst.Freeze > 0 || inst.IsFinished() {
			continue
		}
		if err := ex.Step(inst); err != nil {
			return curated.Errorf(InstanceFault, inst, err)
		}
	}
	return nil
}

// SweepFinished unlinks every finished instance. The head is never removed.
// Returns the number of instances removed.
func (l *List) SweepFinished() int {
	var n int

	prev := head
	for i := l.nodes[head].next; i != end; {
		next := l.nodes[i].next
		if l.nodes[i].IsFinished() {
			l.nodes[prev].next = next
			l.nodes[i] = nil
			l.unused = append(l.unused, i)
			n++
		} else {
			prev = i
		}
		i = next
	}
	l.tail = prev

	return n
}

// Retarget changes the freeze value of every matching instance from
// oldFreeze to newFreeze. A value of -1 for overlay, script or oldFreeze
// matches any value. Returns the number of instances changed.
func (l *List) Retarget(overlay, script, oldFreeze, newFreeze int) int {
	var n int
	for i := l.nodes[head].next; i != end; i = l.nodes[i].next {
		inst := l.nodes[i]
		if (overlay == -1 || inst.Overlay == overlay) &&
			(script == -1 || inst.Script == script) &&
			(oldFreeze == -1 || inst.Freeze == oldFreeze) {
			inst.Freeze = newFreeze
			n++
		}
	}
	return n
}

// Instances returns the instances in the list in execution order. The head
// is not included.
func (l *List) Instances() []*Instance {
	s := make([]*Instance, 0, len(l.nodes))
	for i := l.nodes[head].next; i != end; i = l.nodes[i].next {
		s = append(s, l.nodes[i])
	}
	return s
}

// Find returns the first unfinished instance of the script. Returns nil if
// there is no such instance.
func (l *List) Find(overlay, script int) *Instance {
	for i := l.nodes[head].next; i != end; i = l.nodes[i].next {
		inst := l.nodes[i]
		if inst.Overlay == overlay && inst.Script == script {
			return inst
		}
	}
	return nil
}

// Clear removes every instance from the list.
func (l *List) Clear() {
	l.nodes = l.nodes[:1]
	l.nodes[head].next = end
	l.unused = l.unused[:0]
	l.tail = head
}

// Restore appends a previously captured instance to the tail of the list.
// The serial number of the list is advanced past the instance ID if
// necessary.
func (l *List) Restore(inst Instance) *Instance {
	n := l.Attach(inst.Overlay, inst.Script, inst.Priority, inst.RelatedScript, inst.RelatedOverlay)
	n.ID = inst.ID
	n.PC = inst.PC
	n.Freeze = inst.Freeze
	n.Wait = inst.Wait
	n.Locals = inst.Locals
	if inst.ID > l.serial {
		l.serial = inst.ID
	}
	return n
}
