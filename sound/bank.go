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

package sound

import (
	"encoding/binary"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/memman"
)

// Mixer plays decoded samples.
type Mixer interface {
	Play(s Sample, volume, pan int)
	Loop(s Sample, volume int)
	StopLoops()
}

// NullMixer discards every sample.
type NullMixer struct{}

func (NullMixer) Play(_ Sample, _, _ int) {}
func (NullMixer) Loop(_ Sample, _ int)    {}
func (NullMixer) StopLoops()              {}

// sound in the resource table
type entry struct {
	h    memman.Handle
	rate int
}

// Bank of sounds held in the resource table.
type Bank struct {
	dir   string
	mem   *memman.Table
	mixer Mixer

	sounds map[int]entry

	// log entries are made if permission allows it
	Permission logger.Permission

	// number of times a sound file has been decoded
	decodes int
}

// NewBank is the preferred method of initialisation for the Bank type. Sound
// files are loaded from the directory.
func NewBank(mem *memman.Table, dir string, mixer Mixer) *Bank {
	return &Bank{
		dir:        dir,
		mem:        mem,
		mixer:      mixer,
		sounds:     make(map[int]entry),
		Permission: logger.Allow,
	}
}

// Decodes returns the number of times a sound file has been decoded.
func (b *Bank) Decodes() int {
	return b.decodes
}

// Load returns the sound with the ID. The sound is decoded if it is not in
// the resource table.
//
// A sound that is used is moved to the head of the free list so that sounds
// that are used often are not evicted.
func (b *Bank) Load(id int) (Sample, error) {
	e, ok := b.sounds[id]
	if ok && b.mem.Condition(e.h) == memman.CanFree {
		// lock and unlock to move the block to the head of the free list
		if err := b.mem.SetCondition(e.h, memman.DontFree); err != nil {
			return Sample{}, curated.Errorf(BankLoadFail, id, err)
		}
		s := Sample{ID: id, Rate: e.rate, Data: unpack(b.mem.Data(e.h))}
		if err := b.mem.SetCondition(e.h, memman.CanFree); err != nil {
			return Sample{}, curated.Errorf(BankLoadFail, id, err)
		}
		return s, nil
	}

	pth, err := find(b.dir, id)
	if err != nil {
		return Sample{}, err
	}
	s, err := Decode(pth)
	if err != nil {
		return Sample{}, err
	}
	s.ID = id
	b.decodes++

	if !ok {
		e = entry{h: b.mem.NewHandle()}
	}
	e.rate = s.Rate
	b.sounds[id] = e

	if err := b.mem.Reallocate(e.h, len(s.Data)*2, memman.CanFree); err != nil {
		return Sample{}, curated.Errorf(BankLoadFail, id, err)
	}

	// a sound larger than the budget is evicted immediately. the decoded
	// sample is still good
	if data := b.mem.Data(e.h); data != nil {
		pack(data, s.Data)
	} else {
		logger.Logf(b.Permission, "sound", "sound %d is larger than the budget", id)
	}

	return s, nil
}

// PlaySound implements the simulation.Audio interface.
func (b *Bank) PlaySound(sound, volume, pan int) {
	s, err := b.Load(sound)
	if err != nil {
		logger.Log(b.Permission, "sound", err)
		return
	}
	b.mixer.Play(s, volume, pan)
}

// PlayLoop implements the simulation.Audio interface.
func (b *Bank) PlayLoop(sound, volume int) {
	s, err := b.Load(sound)
	if err != nil {
		logger.Log(b.Permission, "sound", err)
		return
	}
	b.mixer.Loop(s, volume)
}

// StopLoops implements the simulation.Audio interface.
func (b *Bank) StopLoops() {
	b.mixer.StopLoops()
}

func pack(dst []byte, src []int16) {
	for i, v := range src {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(v))
	}
}

func unpack(src []byte) []int16 {
	d := make([]int16, len(src)/2)
	for i := range d {
		d[i] = int16(binary.LittleEndian.Uint16(src[i*2:]))
	}
	return d
}
