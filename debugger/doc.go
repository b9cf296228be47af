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

// Package debugger implements a command line interface to a running scene.
// The scene is advanced a frame at a time and can be inspected, rewound,
// saved and restored between frames.
//
// The debugger requires an instance of terminal.Terminal. The plainterm
// package is suitable for scripted input, as well as for simple interactive
// use. The colorterm package is better for interactive use.
//
// Commands are case insensitive. The HELP command lists every command.
package debugger
