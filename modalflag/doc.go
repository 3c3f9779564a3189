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

// Package modalflag is a wrapper for the pflag package. It provides a
// convenient method of handling program modes (and sub-modes) and allows
// different flags for each mode.
//
// Unlike pflag.FlagSet, where Parse() is called with the arguments, with
// modalflag the arguments are first given to NewArgs() and then Parse() is
// called with no arguments. This allows the arguments to be parsed in stages,
// one stage for each mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "RENDER", "SHADERS")
//	p, err := md.Parse()
//
// After Parse() the selected mode is returned by Mode(). If no sub-mode was
// given on the command line then the first sub-mode is the default. Flags for
// the selected mode are then added after a call to NewMode() and the
// remaining arguments parsed with another call to Parse().
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		out := md.AddString("out", "", "output file")
//		p, err := md.Parse()
//	}
//
// Flags are in the GNU style, with two dashes for long flag names.
// Requesting help with --help or -h causes Parse() to print the flags and
// the sub-modes for the current mode and to return ParseHelp.
package modalflag
