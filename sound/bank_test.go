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

package sound_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/memman"
	"github.com/scenevm/scenevm/sound"
	"github.com/scenevm/scenevm/test"
)

// write a stereo wav file. the left channel counts up from one and the right
// channel is always -1
func writeWav(t *testing.T, dir string, id int, samples int, bitDepth int) {
	t.Helper()

	f, err := os.Create(filepath.Join(dir, fmt.Sprintf("%d.wav", id)))
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 11025, bitDepth, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 11025},
		SourceBitDepth: bitDepth,
	}
	for i := range samples {
		buf.Data = append(buf.Data, i+1, -1)
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

// mixer records the sounds played
type mixer struct {
	played  []int
	looped  []int
	stopped int
}

func (m *mixer) Play(s sound.Sample, _, _ int) { m.played = append(m.played, s.ID) }
func (m *mixer) Loop(s sound.Sample, _ int)    { m.looped = append(m.looped, s.ID) }
func (m *mixer) StopLoops()                    { m.stopped++ }

func TestDecodeWav(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, 1, 100, 16)

	s, err := sound.Decode(filepath.Join(dir, "1.wav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 11025)
	test.DemandEquality(t, len(s.Data), 100)

	// only the left channel is kept
	test.ExpectEquality(t, s.Data[0], int16(1))
	test.ExpectEquality(t, s.Data[99], int16(100))
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"1.ogg", "2.wav", "3.mp3"} {
		pth := filepath.Join(dir, name)
		test.DemandSuccess(t, os.WriteFile(pth, []byte("not a sound file"), 0o600))
		_, err := sound.Decode(pth)
		test.ExpectSuccess(t, curated.Is(err, sound.DecodeError), name)
	}

	_, err := sound.Decode(filepath.Join(dir, "missing.wav"))
	test.ExpectSuccess(t, curated.Is(err, sound.DecodeError))
}

func TestBank(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, 10, 100, 16)
	writeWav(t, dir, 11, 100, 16)

	tab := memman.NewTable(1000)
	mix := &mixer{}
	bank := sound.NewBank(tab, dir, mix)

	bank.PlaySound(10, 50, 0)
	bank.PlayLoop(11, 50)
	test.ExpectEquality(t, bank.Decodes(), 2)
	test.ExpectEquality(t, tab.Alloced(), 400)
	test.ExpectEquality(t, len(tab.FreeList()), 2)

	// cached sounds are not decoded again
	bank.PlaySound(10, 50, 0)
	test.ExpectEquality(t, bank.Decodes(), 2)

	s, err := bank.Load(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Data[99], int16(100))
	test.ExpectEquality(t, s.Rate, 11025)

	bank.StopLoops()
	test.ExpectEquality(t, len(mix.played), 2)
	test.ExpectEquality(t, len(mix.looped), 1)
	test.ExpectEquality(t, mix.stopped, 1)

	// unknown sounds are logged and not played
	bank.PlaySound(99, 50, 0)
	test.ExpectEquality(t, len(mix.played), 2)
	_, err = bank.Load(99)
	test.ExpectSuccess(t, curated.Is(err, sound.NoSoundFile))
}

// sounds are evicted when the budget is exceeded and decoded again when next
// played. recently used sounds are evicted last
func TestBankEviction(t *testing.T) {
	dir := t.TempDir()
	for id := 1; id <= 3; id++ {
		writeWav(t, dir, id, 100, 16)
	}

	tab := memman.NewTable(450)
	bank := sound.NewBank(tab, dir, &mixer{})

	_, err := bank.Load(1)
	test.DemandSuccess(t, err)
	_, err = bank.Load(2)
	test.DemandSuccess(t, err)

	// using sound 1 moves it to the head of the free list
	_, err = bank.Load(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bank.Decodes(), 2)

	// loading sound 3 evicts sound 2
	_, err = bank.Load(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Alloced(), 400)
	test.ExpectSuccess(t, tab.Verify())

	_, err = bank.Load(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bank.Decodes(), 3)

	s, err := bank.Load(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bank.Decodes(), 4)
	test.ExpectEquality(t, len(s.Data), 100)
}

// a sound larger than the budget is still played
func TestBankOverBudget(t *testing.T) {
	dir := t.TempDir()
	writeWav(t, dir, 1, 100, 16)

	tab := memman.NewTable(10)
	bank := sound.NewBank(tab, dir, &mixer{})

	s, err := bank.Load(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(s.Data), 100)
	test.ExpectEquality(t, tab.Alloced(), 0)
}
