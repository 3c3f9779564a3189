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

// Pass identifies one of the three render passes.
type Pass int

// List of valid Pass values, in the order they are run.
const (
	Threshold Pass = iota
	HorizontalBlur
	VerticalBlur

	// the number of passes
	NumPasses
)

func (p Pass) String() string {
	switch p {
	case Threshold:
		return "threshold"
	case HorizontalBlur:
		return "horizontal"
	case VerticalBlur:
		return "vertical"
	}
	return fmt.Sprintf("unknown pass (%d)", int(p))
}

// ParsePass returns the Pass named by the string. The name is case
// insensitive.
func ParsePass(s string) (Pass, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p := Threshold; p < NumPasses; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return Threshold, fmt.Errorf("unrecognised pass (%s)", s)
}

// LastPass returns the final pass run for the display mode.
func (m DisplayMode) LastPass() Pass {
	if m == RawThreshold {
		return Threshold
	}
	return VerticalBlur
}
