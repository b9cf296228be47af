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
	"encoding/binary"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024

// the buffer starts with the previous digest value
const audioBufferStart = sha1.Size

// each request is an opcode and three values
const audioEventLength = 1 + 3*4

// request opcodes
const (
	audioPlay byte = iota + 1
	audioLoop
	audioStop
)

// Player is the audio interface of the simulation.
type Player interface {
	PlaySound(sound, volume, pan int)
	PlayLoop(sound, volume int)
	StopLoops()
}

// Audio implements the audio interface of the simulation by producing a
// digest of every request made. Requests are also passed on to the next
// audio implementation, if there is one.
type Audio struct {
	next Player

	digest   [sha1.Size]byte
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// next argument can be nil.
func NewAudio(next Player) *Audio {
	return &Audio{
		next:     next,
		buffer:   make([]byte, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Any pending requests are flushed
// into the digest first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

func (dig *Audio) event(op byte, a, b, c int) {
	if dig.bufferCt+audioEventLength > len(dig.buffer) {
		dig.flush()
	}
	dig.buffer[dig.bufferCt] = op
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+1:], uint32(int32(a)))
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+5:], uint32(int32(b)))
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+9:], uint32(int32(c)))
	dig.bufferCt += audioEventLength
}

func (dig *Audio) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}

// PlaySound implements the simulation Audio interface.
func (dig *Audio) PlaySound(sound, volume, pan int) {
	dig.event(audioPlay, sound, volume, pan)
	if dig.next != nil {
		dig.next.PlaySound(sound, volume, pan)
	}
}

// PlayLoop implements the simulation Audio interface.
func (dig *Audio) PlayLoop(sound, volume int) {
	dig.event(audioLoop, sound, volume, 0)
	if dig.next != nil {
		dig.next.PlayLoop(sound, volume)
	}
}

// StopLoops implements the simulation Audio interface.
func (dig *Audio) StopLoops() {
	dig.event(audioStop, 0, 0, 0)
	if dig.next != nil {
		dig.next.StopLoops()
	}
}
