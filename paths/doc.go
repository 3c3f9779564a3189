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

// Package paths contains functions to prepare paths for files written and
// read by the application. Preferences and screenshots live under the
// resource path.
//
//	pth, err := paths.ResourcePath("", "preferences.toml")
//
// The base of the resource path depends on the build. In development builds
// the base is the directory ".glowmask" in the current working directory. In
// release builds (built with the "release" tag) the base is the "glowmask"
// directory in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the example above will
// return:
//
//	/home/user/.config/glowmask/preferences.toml
//
// The directory part of the path will be created if it does not exist.
package paths
