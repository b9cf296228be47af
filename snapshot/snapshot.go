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

package snapshot

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/script"
)

// Version of the snapshot format. Unmarshal() rejects other versions.
const Version = 2

// NotFreeable is the Age of a slot that is not in the free list.
const NotFreeable = -1

// Slot is a resource slot and the condition of the block it holds. The data
// in the block is not saved. A slot that was loaded is reallocated with the
// same size and condition on restore. A slot with the Freed condition has
// been released or evicted.
type Slot struct {
	Slot int
	Size int
	Cond memman.Condition

	// position in the free list. zero is the most recently added block and
	// the highest value is the next to be evicted
	Age int
}

// Snapshot of a simulation.
type Snapshot struct {
	Version int

	// the scene being played and the instruction tables in use
	Scene    string
	Original bool

	Frame   int
	Globals []int

	Rel  []script.Instance
	Proc []script.Instance

	Maze maze.MazeState

	Slots []Slot

	// the player has left the scene
	Exited bool

	// milliseconds until each ambient random sound is next played
	Ambient []int
}

func (s *Snapshot) String() string {
	mode := "fixed"
	if s.Original {
		mode = "original"
	}
	return fmt.Sprintf("%s (%s) frame %d: %d rel, %d proc, %d tracks", s.Scene, mode, s.Frame, len(s.Rel), len(s.Proc), len(s.Maze.Tracks))
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("snapshot: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Marshal the snapshot to CBOR.
func Marshal(s *Snapshot) ([]byte, error) {
	b, err := encMode.Marshal(s)
	if err != nil {
		return nil, curated.Errorf(EncodeError, err)
	}
	return b, nil
}

// Unmarshal a snapshot from CBOR.
func Unmarshal(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}
	if s.Version != Version {
		return nil, curated.Errorf(VersionMismatch, s.Version, Version)
	}
	return &s, nil
}

// Write the snapshot to w.
func Write(w io.Writer, s *Snapshot) error {
	b, err := Marshal(s)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}

// Read a snapshot from r.
func Read(r io.Reader) (*Snapshot, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}
	return Unmarshal(b)
}

// Save the snapshot to a file.
func Save(path string, s *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}

// Load a snapshot from a file.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}
	defer f.Close()
	return Read(f)
}
