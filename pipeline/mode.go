// This file is part of Glowmask.
//
// Glowmask is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glowmask is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glowmask.  If not, see <https://www.gnu.org/licenses/>.

package pipeline

import (
	"fmt"
	"strings"
)

// DisplayMode selects what is written to the visible surface.
type DisplayMode int

// List of valid DisplayMode values.
const (
	// all three passes with the result of the VerticalBlur pass on the
	// surface
	Pipeline DisplayMode = iota

	// the Threshold pass only, written directly to the surface
	RawThreshold
)

// DisplayModes is the list of display modes in the order they should be
// presented to the user.
var DisplayModes = []DisplayMode{Pipeline, RawThreshold}

func (m DisplayMode) String() string {
	switch m {
	case Pipeline:
		return "pipeline"
	case RawThreshold:
		return "raw"
	}
	return fmt.Sprintf("unknown display mode (%d)", int(m))
}

// ParseDisplayMode returns the DisplayMode named by the string. The name is
// case insensitive. "threshold" is accepted as an alternative to "raw".
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pipeline":
		return Pipeline, nil
	case "raw", "threshold":
		return RawThreshold, nil
	}
	return Pipeline, fmt.Errorf("unrecognised display mode (%s)", s)
}

// ModeSelector is read once every frame by the Driver.
type ModeSelector interface {
	DisplayMode() DisplayMode
}

type fixedMode DisplayMode

func (m fixedMode) DisplayMode() DisplayMode {
	return DisplayMode(m)
}

// FixedMode returns a ModeSelector that always returns the same DisplayMode.
func FixedMode(m DisplayMode) ModeSelector {
	return fixedMode(m)
}
