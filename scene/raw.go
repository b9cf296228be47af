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
	"strings"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/script"
)

// the TOML form of a scene description
type rawScene struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Symbols     map[string]int `toml:"symbols"`
	Maze        rawMaze        `toml:"maze"`
	Scripts     []rawScript    `toml:"script"`
	Attach      []rawAttach    `toml:"attach"`
	Exits       []Exit         `toml:"exit"`
	Ambient     Ambient        `toml:"ambient"`
	Targets     []rawTarget    `toml:"target"`
	Tracks      []rawTrack     `toml:"track"`
}

type rawMaze struct {
	Score   string     `toml:"score"`
	Hits    string     `toml:"hits"`
	Counter string     `toml:"counter"`
	Count   string     `toml:"count"`
	Groups  [][]string `toml:"groups"`
}

type rawScript struct {
	Overlay int      `toml:"overlay"`
	Script  int      `toml:"script"`
	Name    string   `toml:"name"`
	Program []string `toml:"program"`
}

type rawAttach struct {
	Kind     string `toml:"kind"`
	Overlay  int    `toml:"overlay"`
	Script   int    `toml:"script"`
	Priority int    `toml:"priority"`
}

type rawClick struct {
	Sound  int `toml:"sound"`
	Volume int `toml:"volume"`
}

type rawTarget struct {
	Item     string    `toml:"item"`
	Position []float64 `toml:"position"`
	Facing   int       `toml:"facing"`
	Click    *rawClick `toml:"click"`
}

type rawTrack struct {
	Item    string    `toml:"item"`
	Start   []float64 `toml:"start"`
	End     []float64 `toml:"end"`
	Steps   int       `toml:"steps"`
	Primary bool      `toml:"primary"`
	Program []string  `toml:"program"`
}

func vector(v []float64) (maze.Vector, error) {
	if len(v) != 3 {
		return maze.Vector{}, fmt.Errorf("vector must have three components")
	}
	return maze.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
}

// program lines prefixed by these strings are specific to one set of
// instruction tables
const (
	prefixFixed    = "fixed:"
	prefixOriginal = "original:"
)

// variant strips the prefix and any comment from a line. returns false if
// the line does not belong to the selected tables or is empty.
func variant(line string, original bool) (string, bool) {
	if i := strings.IndexRune(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	if s, ok := strings.CutPrefix(line, prefixFixed); ok {
		if original {
			return "", false
		}
		line = strings.TrimSpace(s)
	} else if s, ok := strings.CutPrefix(line, prefixOriginal); ok {
		if !original {
			return "", false
		}
		line = strings.TrimSpace(s)
	}

	return line, line != ""
}

// optional resolves a symbol that may be left empty
func optional(sym maze.Symbols, s string) (int, error) {
	if s == "" {
		return -1, nil
	}
	return sym.Resolve(s)
}

func (raw *rawScene) build(original bool) (*Scene, error) {
	if raw.Name == "" {
		return nil, curated.Errorf(LoadError, "scene has no name")
	}

	sc := &Scene{
		Name:        raw.Name,
		Description: raw.Description,
		Original:    original,
		Symbols:     maze.Symbols{},
		Exits:       raw.Exits,
		Ambient:     raw.Ambient,
	}
	for k, v := range raw.Symbols {
		sc.Symbols.Add(k, v)
	}

	fail := func(err error) (*Scene, error) {
		return nil, curated.Errorf(DefinitionError, raw.Name, err)
	}

	var err error
	if sc.Score, err = optional(sc.Symbols, raw.Maze.Score); err != nil {
		return fail(err)
	}
	if sc.Hits, err = optional(sc.Symbols, raw.Maze.Hits); err != nil {
		return fail(err)
	}
	if sc.Counter, err = optional(sc.Symbols, raw.Maze.Counter); err != nil {
		return fail(err)
	}
	if sc.Count, err = optional(sc.Symbols, raw.Maze.Count); err != nil {
		return fail(err)
	}

	for _, g := range raw.Maze.Groups {
		var grp []int
		for _, s := range g {
			id, err := sc.Symbols.Resolve(s)
			if err != nil {
				return fail(err)
			}
			grp = append(grp, id)
		}
		sc.Groups = append(sc.Groups, grp)
	}

	for _, s := range raw.Scripts {
		prg, err := script.AssembleProgram(s.Overlay, s.Script, s.Name, s.Program)
		if err != nil {
			return fail(err)
		}
		sc.Scripts = append(sc.Scripts, prg)
	}

	for _, a := range raw.Attach {
		kind, err := script.ParseKind(a.Kind)
		if err != nil {
			return fail(err)
		}
		sc.Attach = append(sc.Attach, Attachment{
			Kind:     kind,
			Overlay:  a.Overlay,
			Script:   a.Script,
			Priority: a.Priority,
		})
	}

	for _, t := range raw.Targets {
		id, err := sc.Symbols.Resolve(t.Item)
		if err != nil {
			return fail(err)
		}
		pos, err := vector(t.Position)
		if err != nil {
			return fail(fmt.Errorf("target %s: %w", t.Item, err))
		}
		tgt := Target{
			Item:     id,
			Name:     t.Item,
			Position: pos,
			Facing:   t.Facing,
		}
		if t.Click != nil {
			tgt.Click = &maze.ClickSound{Sound: t.Click.Sound, Volume: t.Click.Volume}
		}
		sc.Targets = append(sc.Targets, tgt)
	}

	for _, t := range raw.Tracks {
		trk, err := raw.track(t, sc.Symbols, original)
		if err != nil {
			return fail(fmt.Errorf("track %s: %w", t.Item, err))
		}
		sc.Tracks = append(sc.Tracks, trk)
	}

	return sc, nil
}

func (raw *rawScene) track(t rawTrack, sym maze.Symbols, original bool) (Track, error) {
	id, err := sym.Resolve(t.Item)
	if err != nil {
		return Track{}, err
	}
	start, err := vector(t.Start)
	if err != nil {
		return Track{}, err
	}
	end, err := vector(t.End)
	if err != nil {
		return Track{}, err
	}

	var lines []string
	for _, l := range t.Program {
		if l, ok := variant(l, original); ok {
			lines = append(lines, l)
		}
	}
	prog, err := maze.AssembleProgram(lines, sym)
	if err != nil {
		return Track{}, err
	}

	return Track{
		Item:    id,
		Start:   start,
		End:     end,
		Steps:   t.Steps,
		Primary: t.Primary,
		Program: prog,
	}, nil
}
