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

// Package sound loads sound effects on demand and keeps them in the resource
// table. Sounds are held in CanFree blocks and so are evicted, oldest first,
// when the table is over budget. An evicted sound is decoded again the next
// time it is played.
//
// Sound files are found in an asset directory and are named by their ID, for
// example "387.wav" or "54.mp3". Decoded sounds are 16 bit mono. Only the
// left channel of a stereo file is kept.
//
// The Bank type implements the simulation.Audio interface. Decoded samples
// are forwarded to a Mixer for playback.
package sound
