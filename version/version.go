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

// Package version reports the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Glowmask"

// if number is empty then the project was probably not built using the makefile
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
//
// If the version string is "unreleased" then the project has been built
// without a version number but with vcs information. If the version string is
// "local" then there is no version number and no vcs information. This can
// happen when running with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name with the version, suitable for a window
// title.
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	version, revision = fromBuildInfo(number, info)
}

// fromBuildInfo decides the version and revision strings from the version
// number and the vcs settings in the build information. info may be nil.
func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
