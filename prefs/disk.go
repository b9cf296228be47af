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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file while SceneVM is running ***"

// the separator between key and value in the preferences file.
const separator = " :: "

// NoPrefsFile is returned by Load() when the preferences file does not exist.
var NoPrefsFile = errors.New("prefs: no prefs file")

// keys that were used in previous versions and which should be dropped from
// the preferences file on the next save.
var defunct = map[string]bool{
	"memman.budget": true,
}

// Disk represents preference values as stored on disk. Values from other
// Disk instances that share the same file are preserved on save.
type Disk struct {
	path    string
	entries map[string]pref

	// keys set from the command line. these are not overwritten by Load()
	overridden map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]bool),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the preference value in the file. Values on the
// top of the command line stack override the value from the file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) != key || key == "" {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
		dsk.overridden[key] = true
	}

	return nil
}

// String returns the current value of every entry in key order.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the existing file into a map of raw strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NoPrefsFile
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	raw := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate || strings.TrimSpace(line) == "" {
			continue
		}
		k, v, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		raw[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return raw, nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	raw, err := dsk.read()
	if err != nil {
		if !errors.Is(err, NoPrefsFile) {
			return err
		}
		raw = make(map[string]string)
	}

	for k, p := range dsk.entries {
		raw[k] = p.String()
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		if !defunct[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, raw[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnNoFile is true then a missing
// file is created from the current values and no error is returned.
func (dsk *Disk) Load(saveOnNoFile bool) error {
	raw, err := dsk.read()
	if err != nil {
		if errors.Is(err, NoPrefsFile) && saveOnNoFile {
			return dsk.Save()
		}
		return err
	}

	for k, v := range raw {
		if dsk.overridden[k] {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Reset all entries to their zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return err
		}
	}
	return nil
}
