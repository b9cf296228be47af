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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/scenevm/scenevm/curated"
)

// Sample is a decoded sound.
type Sample struct {
	ID   int
	Rate int

	// mono 16 bit data
	Data []int16
}

func (s Sample) String() string {
	return fmt.Sprintf("sound %d: %d samples at %dHz", s.ID, len(s.Data), s.Rate)
}

// the file extensions that are searched for, in order
var extensions = []string{".wav", ".mp3"}

// find the file for a sound in the directory
func find(dir string, id int) (string, error) {
	for _, ext := range extensions {
		pth := filepath.Join(dir, fmt.Sprintf("%d%s", id, ext))
		if _, err := os.Stat(pth); err == nil {
			return pth, nil
		}
	}
	return "", curated.Errorf(NoSoundFile, id)
}

// Decode a sound file. The format is decided by the file extension.
func Decode(pth string) (Sample, error) {
	f, err := os.Open(pth)
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, pth, err)
	}
	defer f.Close()

	var s Sample
	switch strings.ToLower(filepath.Ext(pth)) {
	case ".wav":
		s, err = decodeWav(f)
	case ".mp3":
		s, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type")
	}
	if err != nil {
		return Sample{}, curated.Errorf(DecodeError, pth, err)
	}

	return s, nil
}

func decodeWav(r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if dec == nil {
		return Sample{}, fmt.Errorf("wav: error decoding")
	}
	if !dec.IsValidFile() {
		return Sample{}, fmt.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, fmt.Errorf("wav: %w", err)
	}

	chans := max(1, int(dec.NumChans))
	shift := int(dec.BitDepth) - 16

	// copy first channel only of data stream
	s := Sample{
		Rate: int(dec.SampleRate),
		Data: make([]int16, 0, len(buf.Data)/chans),
	}
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch {
		case dec.BitDepth == 8:
			// 8 bit wav data is unsigned
			v = (v - 128) << 8
		case shift > 0:
			v >>= shift
		case shift < 0:
			v <<= -shift
		}
		s.Data = append(s.Data, int16(v))
	}

	return s, nil
}

func decodeMP3(r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian with two channels
	s := Sample{
		Rate: dec.SampleRate(),
	}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		// index increment of 4 because there are two bytes per sample per
		// channel and we only want the left channel
		for i := 0; i+1 < n; i += 4 {
			s.Data = append(s.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Sample{}, fmt.Errorf("mp3: %w", err)
		}
	}

	return s, nil
}
