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

package rewind

import (
	"errors"

	"github.com/scenevm/scenevm/paths"
	"github.com/scenevm/scenevm/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of entries to store before the earliest entries are
	// forgotten
	MaxEntries prefs.Int

	// how often a snapshot is recorded, in frames
	Freq prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "preferences not saved to disk"
	}
	return p.dsk.String()
}

const (
	maxEntries   = 500
	snapshotFreq = 1
)

// DefaultPreferences returns preferences that are not backed by a file.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	p.MaxEntries.Set(maxEntries)
	p.Freq.Set(snapshotFreq)
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := DefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.snapshotFreq", &p.Freq)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// Load rewind preferences from disk. Does nothing if the preferences are not
// backed by a file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save rewind preferences to disk. Does nothing if the preferences are not
// backed by a file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

func (p *Preferences) maxEntries() int {
	return max(1, p.MaxEntries.Get().(int))
}

func (p *Preferences) freq() int {
	return max(1, p.Freq.Get().(int))
}
