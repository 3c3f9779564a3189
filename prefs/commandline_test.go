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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/glowmask/prefs"
	"github.com/jetsetilly/glowmask/test"
)

func TestCommandLineStackValues(t *testing.T) {
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("display.mode::raw")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.mode::raw")

	// whitespace is trimmed
	prefs.PushCommandLineStack("   display.mode:: raw ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.mode::raw")

	// remaining string is sorted
	prefs.PushCommandLineStack("image.fit::false; display.mode::raw")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.mode::raw; image.fit::false")

	// malformed pairs are ignored
	prefs.PushCommandLineStack("display.mode_raw")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("display.mode_raw;image.fit::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "image.fit::false")

	// a retrieved value is removed from the group
	prefs.PushCommandLineStack("display.mode::raw;image.fit::false")
	ok, v := prefs.GetCommandLinePref("display.mode")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "raw")
	ok, _ = prefs.GetCommandLinePref("display.mode")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "image.fit::false")
}

func TestCommandLineStack(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)

	prefs.PushCommandLineStack("display.mode::raw")
	prefs.PushCommandLineStack("image.watch::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the top group is consulted
	ok, _ := prefs.GetCommandLinePref("display.mode")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "image.watch::true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "display.mode::raw")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
