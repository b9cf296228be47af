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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/snapshot"
)

// Snapshotter is implemented by the simulation state.
type Snapshotter interface {
	Snapshot() *snapshot.Snapshot
}

// Snapshot produces a chained digest of the simulation state. The canonical
// CBOR encoding of the snapshot is used so the same state always produces
// the same hash.
type Snapshot struct {
	src    Snapshotter
	digest [sha1.Size]byte
	buffer []byte
	frames int
}

// NewSnapshot is the preferred method of initialisation for the Snapshot
// type.
func NewSnapshot(src Snapshotter) *Snapshot {
	return &Snapshot{src: src}
}

// Hash implements the Digest interface.
func (dig *Snapshot) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Snapshot) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of updates since the last reset.
func (dig *Snapshot) Frames() int {
	return dig.frames
}

// Update the digest with the current state. Should be called once per frame.
func (dig *Snapshot) Update() error {
	b, err := snapshot.Marshal(dig.src.Snapshot())
	if err != nil {
		return curated.Errorf(SnapshotDigest, err)
	}

	// the previous digest value is at the head of the buffer
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, b...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++

	return nil
}
