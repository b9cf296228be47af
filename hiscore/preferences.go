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

package hiscore

import (
	"errors"

	"github.com/scenevm/scenevm/paths"
	"github.com/scenevm/scenevm/prefs"
)

// DefaultDatabase is the filename of the database in the resource directory.
const DefaultDatabase = "hiscore.db"

// Preferences for the hiscore ledger.
type Preferences struct {
	dsk *prefs.Disk

	// path to the database. an empty path means the default database in the
	// resource directory
	Database prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hiscore.database", &p.Database)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// Path returns the path to the database.
func (p *Preferences) Path() (string, error) {
	if pth := p.Database.String(); pth != "" {
		return pth, nil
	}
	return paths.ResourcePath("", DefaultDatabase)
}

// Save hiscore preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
