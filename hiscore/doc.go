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

// Package hiscore records the result of each scene in an SQLite database.
//
// Every Ledger has a session ID, which is a UUID created when the ledger is
// opened. Results recorded by the ledger are tagged with the session ID and
// so the results of a single run of the program can be told apart from
// earlier runs.
//
// The best result for a scene is the result with the highest score. Ties are
// broken by the number of frames taken to reach the exit.
package hiscore
