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

package simulation

import (
	"errors"

	"github.com/scenevm/scenevm/curated"
	"github.com/scenevm/scenevm/maze"
	"github.com/scenevm/scenevm/paths"
	"github.com/scenevm/scenevm/prefs"
	"github.com/scenevm/scenevm/script"
)

// DefaultMaxAlloc is the default budget of the resource table.
const DefaultMaxAlloc = 6 * 1024 * 1024

// DefaultFrameDuration is the number of milliseconds in a frame.
const DefaultFrameDuration = 66

// Preferences for the simulation.
type Preferences struct {
	dsk *prefs.Disk

	// budget of the resource table in bytes
	MaxAlloc prefs.Int

	// play scenes with the instruction tables of the original release
	StrictOriginalBehavior prefs.Bool

	// script wait ticks that pass in a frame
	FrameTicks prefs.Int

	// milliseconds that pass in a frame. the maze is ticked by this amount
	FrameDuration prefs.Int

	// instruction ceilings
	ScriptLimit prefs.Int
	TrackLimit  prefs.Int

	ShotDamage   prefs.Int
	SpinDuration prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "preferences not saved to disk"
	}
	return p.dsk.String()
}

// DefaultPreferences returns preferences that are not backed by a file. Load()
// and Save() will fail with the NoPrefsDisk error.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.setDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := DefaultPreferences()

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memman.maxAlloc", &p.MaxAlloc)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("maze.strictOriginalBehavior", &p.StrictOriginalBehavior)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("frame.ticks", &p.FrameTicks)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("frame.duration", &p.FrameDuration)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("script.instructionLimit", &p.ScriptLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("maze.instructionLimit", &p.TrackLimit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("maze.shotDamage", &p.ShotDamage)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("maze.spinDuration", &p.SpinDuration)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func (p *Preferences) setDefaults() {
	p.MaxAlloc.Set(DefaultMaxAlloc)
	p.StrictOriginalBehavior.Set(false)
	p.FrameTicks.Set(1)
	p.FrameDuration.Set(DefaultFrameDuration)
	p.ScriptLimit.Set(script.DefaultInstructionLimit)
	p.TrackLimit.Set(maze.DefaultInstructionLimit)
	p.ShotDamage.Set(1)
	p.SpinDuration.Set(1000)
}

// Reset all preferences to the default values.
func (p *Preferences) Reset() error {
	p.setDefaults()
	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsDisk)
	}
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NoPrefsDisk)
	}
	return p.dsk.Save()
}

// MazeConfig returns the maze configuration described by the preferences.
// The score and hit counters are not set.
func (p *Preferences) MazeConfig() maze.Config {
	cfg := maze.DefaultConfig()
	cfg.StrictOriginalBehavior = p.StrictOriginalBehavior.Get().(bool)
	cfg.Limit = p.TrackLimit.Get().(int)
	cfg.ShotDamage = p.ShotDamage.Get().(int)
	cfg.SpinDuration = p.SpinDuration.Get().(int)
	return cfg
}
