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
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/scenevm/scenevm/curated"
)

//go:embed data/*.toml
var builtin embed.FS

// Builtins returns the names of the embedded scenes.
func Builtins() []string {
	var names []string
	ents, _ := fs.ReadDir(builtin, "data")
	for _, e := range ents {
		if n, ok := strings.CutSuffix(e.Name(), ".toml"); ok {
			names = append(names, strings.ToUpper(n))
		}
	}
	sort.Strings(names)
	return names
}

// Builtin loads an embedded scene. Scene names are not case sensitive.
func Builtin(name string, original bool) (*Scene, error) {
	f, err := builtin.Open(path.Join("data", strings.ToLower(name)+".toml"))
	if err != nil {
		return nil, curated.Errorf(UnknownScene, name)
	}
	defer f.Close()
	return Load(f, original)
}

// Open loads a scene by name. Names with a .toml extension are loaded from
// the filesystem, otherwise the name refers to a builtin scene.
func Open(name string, original bool) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		return LoadFile(name, original)
	}
	return Builtin(name, original)
}
