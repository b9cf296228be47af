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
	"fmt"
	"strconv"
	"strings"
)

// Click is a shot at an item in a particular frame. Used to script a run of
// a scene.
type Click struct {
	Frame int
	Item  int
}

func (c Click) String() string {
	return fmt.Sprintf("%d:%d", c.Frame, c.Item)
}

// ParseClicks parses a list of clicks in the form "frame:item, frame:item".
// The list is not sorted.
func ParseClicks(s string) ([]Click, error) {
	var clicks []Click
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		fs, is, ok := strings.Cut(c, ":")
		if !ok {
			return nil, fmt.Errorf("click should be frame:item (%s)", c)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(fs))
		if err != nil {
			return nil, fmt.Errorf("click frame: %w", err)
		}
		item, err := strconv.Atoi(strings.TrimSpace(is))
		if err != nil {
			return nil, fmt.Errorf("click item: %w", err)
		}
		clicks = append(clicks, Click{Frame: frame, Item: item})
	}
	return clicks, nil
}

// FormatClicks is the inverse of ParseClicks().
func FormatClicks(clicks []Click) string {
	s := make([]string, len(clicks))
	for i, c := range clicks {
		s[i] = c.String()
	}
	return strings.Join(s, ", ")
}

// Run the simulation for the number of frames. Clicks are made at the end of
// the frame they name. Clicks for frames that have already passed are made
// at the end of the first frame. Returns the clicks that were not made.
func (st *State) Run(frames int, clicks []Click) ([]Click, error) {
	for range frames {
		if err := st.Step(); err != nil {
			return clicks, err
		}
		for len(clicks) > 0 && clicks[0].Frame <= st.Frame() {
			if _, err := st.Click(clicks[0].Item); err != nil {
				return clicks, err
			}
			clicks = clicks[1:]
		}
	}
	return clicks, nil
}
