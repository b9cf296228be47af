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

package regression

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/database"
	"github.com/scenevm/scenevm/digest"
	"github.com/scenevm/scenevm/scene"
	"github.com/scenevm/scenevm/simulation"
)

const sceneEntryType = "scene"

const (
	sceneFieldName int = iota
	sceneFieldOriginal
	sceneFieldFrames
	sceneFieldClicks
	sceneFieldExit
	sceneFieldStateDigest
	sceneFieldAudioDigest
	sceneFieldNotes
	numSceneFields
)

// clicks are stored with a different separator to the database field
// separator
const clickSep = ";"

// progress is reported every progressFrames frames
const progressFrames = 100

// NoExit indicates that the run does not leave the scene.
const NoExit = -1

// SceneRegression is a scripted run of a scene.
type SceneRegression struct {
	Scene    string
	Original bool
	Frames   int
	Clicks   []simulation.Click

	// the exit taken after the last frame. NoExit if the scene is not left
	Exit int

	// freeform notes. the notes cannot contain a comma or a newline
	Notes string

	stateDigest string
	audioDigest string
}

// NewSceneRegression is the preferred method of initialisation for the
// SceneRegression type. The clicks are sorted by frame.
func NewSceneRegression(name string, original bool, frames int, clicks []simulation.Click, exit int) *SceneRegression {
	clicks = slices.Clone(clicks)
	slices.SortStableFunc(clicks, func(a, b simulation.Click) int {
		return a.Frame - b.Frame
	})
	return &SceneRegression{
		Scene:    strings.ToUpper(name),
		Original: original,
		Frames:   frames,
		Clicks:   clicks,
		Exit:     exit,
	}
}

func deserialiseSceneEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numSceneFields {
		return nil, curated.Errorf(BadEntry, "number of", len(fields))
	}

	reg := &SceneRegression{
		Scene:       fields[sceneFieldName],
		stateDigest: fields[sceneFieldStateDigest],
		audioDigest: fields[sceneFieldAudioDigest],
		Notes:       fields[sceneFieldNotes],
	}

	var err error

	reg.Original, err = strconv.ParseBool(fields[sceneFieldOriginal])
	if err != nil {
		return nil, curated.Errorf(BadEntry, "original", err)
	}

	reg.Frames, err = strconv.Atoi(fields[sceneFieldFrames])
	if err != nil {
		return nil, curated.Errorf(BadEntry, "frames", err)
	}

	reg.Clicks, err = simulation.ParseClicks(strings.ReplaceAll(fields[sceneFieldClicks], clickSep, ","))
	if err != nil {
		return nil, curated.Errorf(BadEntry, "clicks", err)
	}

	reg.Exit, err = strconv.Atoi(fields[sceneFieldExit])
	if err != nil {
		return nil, curated.Errorf(BadEntry, "exit", err)
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg *SceneRegression) EntryType() string {
	return sceneEntryType
}

// Serialise implements the database.Entry interface.
func (reg *SceneRegression) Serialise() (database.SerialisedEntry, error) {
	clicks := make([]string, len(reg.Clicks))
	for i, c := range reg.Clicks {
		clicks[i] = c.String()
	}

	return database.SerialisedEntry{
		reg.Scene,
		strconv.FormatBool(reg.Original),
		strconv.Itoa(reg.Frames),
		strings.Join(clicks, clickSep),
		strconv.Itoa(reg.Exit),
		reg.stateDigest,
		reg.audioDigest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *SceneRegression) CleanUp() error {
	return nil
}

func (reg *SceneRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s", sceneEntryType, reg.Scene))
	if reg.Original {
		s.WriteString(" (original)")
	}
	s.WriteString(fmt.Sprintf(" %d frames", reg.Frames))
	if len(reg.Clicks) > 0 {
		s.WriteString(fmt.Sprintf(", %d clicks", len(reg.Clicks)))
	}
	if reg.Exit != NoExit {
		s.WriteString(fmt.Sprintf(", exit %d", reg.Exit))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Digests returns the recorded state and audio digests. Both are empty if the
// regression has not been run.
func (reg *SceneRegression) Digests() (string, string) {
	return reg.stateDigest, reg.audioDigest
}

func (reg *SceneRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	if reg.Frames <= 0 {
		return false, curated.Errorf(NoFrames)
	}

	fmt.Fprintf(output, "\r%s", msg)

	sc, err := scene.Open(reg.Scene, reg.Original)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}

	st := simulation.NewState(nil)
	st.Rand().ZeroSeed = true
	st.Silence(true)

	aud := digest.NewAudio(nil)
	st.AttachAudio(aud)

	if err := st.LoadScene(sc); err != nil {
		return false, curated.Errorf(RegressionError, err)
	}

	dig := digest.NewSnapshot(st)
	clicks := reg.Clicks

	for dig.Frames() < reg.Frames {
		clicks, err = st.Run(1, clicks)
		if err != nil {
			return false, curated.Errorf(RegressionError, err)
		}
		if err := dig.Update(); err != nil {
			return false, curated.Errorf(RegressionError, err)
		}
		if dig.Frames()%progressFrames == 0 {
			fmt.Fprintf(output, "\r%s [%d/%d]", msg, dig.Frames(), reg.Frames)
		}
	}

	if reg.Exit != NoExit {
		if _, err := st.Exit(reg.Exit); err != nil {
			return false, curated.Errorf(RegressionError, err)
		}
		if err := dig.Update(); err != nil {
			return false, curated.Errorf(RegressionError, err)
		}
	}

	if newRegression {
		reg.stateDigest = dig.Hash()
		reg.audioDigest = aud.Hash()
		return true, nil
	}

	if dig.Hash() != reg.stateDigest {
		return false, nil
	}
	if aud.Hash() != reg.audioDigest {
		return false, nil
	}

	return true, nil
}
