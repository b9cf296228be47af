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

package scene

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/script"
)

// Exit is a way out of the scene.
type Exit struct {
	ID int `toml:"id"`

	// leaving through this exit penalises the player for every target that
	// has not yet appeared
	Abandon bool `toml:"abandon"`
}

// Loop is an ambient sound that plays continuously.
type Loop struct {
	Sound  int `toml:"sound"`
	Volume int `toml:"volume"`
}

// RandomSound is an ambient sound played at random intervals. Times are in
// seconds.
type RandomSound struct {
	Sound     int `toml:"sound"`
	MinTime   int `toml:"min_time"`
	MaxTime   int `toml:"max_time"`
	MinVolume int `toml:"min_volume"`
	MaxVolume int `toml:"max_volume"`
}

// Ambient sounds of the scene.
type Ambient struct {
	Loops  []Loop        `toml:"loops"`
	Random []RandomSound `toml:"random"`
}

// Attachment is a script instance created when the scene is installed.
type Attachment struct {
	Kind     script.Kind
	Overlay  int
	Script   int
	Priority int
}

// Target is an item placed in the world when the scene is installed.
type Target struct {
	Item     int
	Name     string
	Position maze.Vector
	Facing   int
	Click    *maze.ClickSound
}

// Track is an assembled track program for an item.
type Track struct {
	Item    int
	Start   maze.Vector
	End     maze.Vector
	Steps   int
	Primary bool
	Program []maze.Instruction
}

// Scene is a loaded scene description.
type Scene struct {
	Name        string
	Description string

	// the instruction tables of the original release were selected
	Original bool

	Symbols maze.Symbols

	// indexes into the globals. a negative index means the value is not kept
	Score   int
	Hits    int
	Counter int

	// number of targets that appear in the scene
	Count int

	Groups  [][]int
	Scripts []*script.Program
	Attach  []Attachment
	Exits   []Exit
	Ambient Ambient
	Targets []Target
	Tracks  []Track
}

func (sc *Scene) String() string {
	mode := "fixed"
	if sc.Original {
		mode = "original"
	}
	return fmt.Sprintf("%s (%s): %d targets, %d tracks, %d scripts", sc.Name, mode, len(sc.Targets), len(sc.Tracks), len(sc.Scripts))
}

// LoadFile loads a scene description from a file.
func LoadFile(path string, original bool) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()
	return Load(f, original)
}

// Load a scene description. The original argument selects the instruction
// tables of the original release.
func Load(r io.Reader, original bool) (*Scene, error) {
	var raw rawScene
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, curated.Errorf(LoadError, fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")))
	}
	return raw.build(original)
}

// Exit returns the exit with the ID.
func (sc *Scene) Exit(id int) (Exit, bool) {
	for _, e := range sc.Exits {
		if e.ID == id {
			return e, true
		}
	}
	return Exit{}, false
}

// MazeConfig returns cfg with the score and hit counters of the scene and the
// behaviour that matches the selected instruction tables.
func (sc *Scene) MazeConfig(cfg maze.Config) maze.Config {
	cfg.ScoreVar = sc.Score
	cfg.HitsVar = sc.Hits
	cfg.StrictOriginalBehavior = sc.Original
	return cfg
}
