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
)

// Status of the Driver.
type Status int

// List of valid Status values.
const (
	Uninitialized Status = iota
	Ready
	Loading
	LoadFailed
	Running
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Loading:
		return "loading"
	case LoadFailed:
		return "load failed"
	case Running:
		return "running"
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// the permitted transitions between states. Running to Running is a reload
// of the source image while the previous image is still being displayed.
var transitions = map[Status][]Status{
	Uninitialized: {Ready},
	Ready:         {Loading, Uninitialized},
	Loading:       {Running, LoadFailed, Uninitialized},
	LoadFailed:    {Loading, Uninitialized},
	Running:       {Running, Uninitialized},
}

func (s Status) canTransition(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}
