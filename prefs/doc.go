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

// Package prefs facilitates the storage of preferential values. Preference
// values are registered with a Disk instance under a dotted key. For
// example, "display.mode". The Disk instance writes and reads the values to
// and from a TOML file. The dotted key becomes a TOML table path.
//
//	var mode prefs.String
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("display.mode", &mode)
//	err = dsk.Load()
//
// Values can be set at any time but only the values registered with a Disk
// instance will be written when Save() is called. Values in the file that
// are not registered with the Disk instance are preserved when saving.
//
// Values can also be overridden on the command line with the command line
// stack. A prefs string is a semi-colon separated list of key::value pairs.
// After PushCommandLineStack() the next call to Load() will use the values
// in the prefs string in preference to the values in the file.
//
// The types provided by the package can be given hook functions that are
// run before and after a new value has been stored. A pre-hook that returns
// an error prevents the value from being stored.
package prefs
