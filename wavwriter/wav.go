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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/logger"
	"github.com/scenevm/scenevm/sound"
)

// SampleFreq is the sample rate of the output.
const SampleFreq = 22050

// a sound being played
type voice struct {
	s     sound.Sample
	pos   int
	left  float64
	right float64
	loop  bool
}

// WavWriter implements the sound.Mixer interface.
type WavWriter struct {
	filename string

	// interleaved stereo samples
	buffer []int

	voices []*voice

	// fractional output samples carried between calls to Advance()
	carry int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// gain for each channel. pan ranges from -100 (left) to 100 (right)
func gain(volume, pan int) (float64, float64) {
	v := float64(min(max(volume, 0), 100)) / 100
	p := float64(min(max(pan, -100), 100))
	return v * min(1, (100-p)/100), v * min(1, (100+p)/100)
}

// samples without data can not be played
func playable(s sound.Sample) bool {
	return len(s.Data) > 0 && s.Rate > 0
}

// Play implements the sound.Mixer interface.
func (aw *WavWriter) Play(s sound.Sample, volume, pan int) {
	if !playable(s) {
		return
	}
	l, r := gain(volume, pan)
	aw.voices = append(aw.voices, &voice{s: s, left: l, right: r})
}

// Loop implements the sound.Mixer interface.
func (aw *WavWriter) Loop(s sound.Sample, volume int) {
	if !playable(s) {
		return
	}
	l, r := gain(volume, 0)
	aw.voices = append(aw.voices, &voice{s: s, left: l, right: r, loop: true})
}

// StopLoops implements the sound.Mixer interface.
func (aw *WavWriter) StopLoops() {
	v := aw.voices[:0]
	for _, vc := range aw.voices {
		if !vc.loop {
			v = append(v, vc)
		}
	}
	aw.voices = v
}

// Advance mixes the playing sounds for the number of milliseconds.
func (aw *WavWriter) Advance(ms int) {
	n := (ms*SampleFreq + aw.carry) / 1000
	aw.carry = (ms*SampleFreq + aw.carry) % 1000

	for range n {
		var l, r float64
		for _, vc := range aw.voices {
			// nearest sample of the source
			i := vc.pos * vc.s.Rate / SampleFreq
			if i >= len(vc.s.Data) {
				if !vc.loop {
					continue
				}
				vc.pos = 0
				i = 0
			}
			v := float64(vc.s.Data[i])
			l += v * vc.left
			r += v * vc.right
			vc.pos++
		}
		aw.buffer = append(aw.buffer, clip(l), clip(r))
	}

	// remove finished voices
	v := aw.voices[:0]
	for _, vc := range aw.voices {
		if vc.loop || vc.pos*vc.s.Rate/SampleFreq < len(vc.s.Data) {
			v = append(v, vc)
		}
	}
	aw.voices = v
}

func clip(v float64) int {
	return int(min(max(v, -32768), 32767))
}

// Len returns the number of stereo samples that have been mixed.
func (aw *WavWriter) Len() int {
	return len(aw.buffer) / 2
}

// EndMixing writes the mixed audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: SampleFreq},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset removes all mixed audio and stops all sounds.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.voices = aw.voices[:0]
	aw.carry = 0
}
