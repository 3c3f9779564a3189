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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glowmask/prefs"
	"github.com/jetsetilly/glowmask/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences.toml")
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test.a", &v))
	test.ExpectSuccess(t, dsk.Add("test.b", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectSuccess(t, dsk.Save())

	var v2, w2, x2 prefs.Bool
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("test.a", &v2))
	test.ExpectSuccess(t, dsk.Add("test.b", &w2))
	test.ExpectSuccess(t, dsk.Add("testC", &x2))
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, w2.Get().(bool), false)
	test.ExpectEquality(t, x2.Get().(bool), true)
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("display.mode", &v))
	test.ExpectSuccess(t, v.Set("raw"))
	test.ExpectSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(data), prefs.WarningBoilerPlate))
	test.ExpectSuccess(t, strings.Contains(string(data), "[display]"))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.String(), "raw")
}

func TestIntAndFloat(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, dsk.Add("scale", &f))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))
	test.ExpectSuccess(t, f.Set(1.5))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectSuccess(t, v.Reset())
	test.ExpectSuccess(t, w.Reset())
	test.ExpectSuccess(t, f.Reset())
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, w.Get().(int), 99)
	test.ExpectApproximate(t, f.Get().(float64), 1.5, 0.0001)
	test.ExpectEquality(t, f.String(), "1.500")

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectFailure(t, f.Set(true))
}

func TestPreservedValues(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("image.watch", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	// a second disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("display.mode", &s))
	test.ExpectSuccess(t, s.Set("pipeline"))
	test.ExpectSuccess(t, dsk.Save())

	// a third instance sees the values of both
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v2 prefs.Bool
	var s2 prefs.String
	test.ExpectSuccess(t, dsk.Add("image.watch", &v2))
	test.ExpectSuccess(t, dsk.Add("display.mode", &s2))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v2.Get().(bool), true)
	test.ExpectEquality(t, s2.String(), "pipeline")
}

func TestMissingFile(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Add("image.fit", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var a, b, c, d prefs.Bool
	test.ExpectSuccess(t, dsk.Add("image.fit", &a))
	test.ExpectFailure(t, dsk.Add("image.fit", &b))
	test.ExpectFailure(t, dsk.Add("image", &c))
	test.ExpectFailure(t, dsk.Add("image.fit.more", &c))
	test.ExpectFailure(t, dsk.Add("image..watch", &d))
	test.ExpectFailure(t, dsk.Add("", &d))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("display.mode", &s))
	test.ExpectSuccess(t, s.Set("pipeline"))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("display.mode::raw")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "raw")

	// the command line value is consumed by the first load
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, s.String(), "pipeline")
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var seen string

	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "bad" {
			return errors.New("bad value")
		}
		return nil
	})
	s.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})

	test.ExpectSuccess(t, s.Set("good"))
	test.ExpectEquality(t, seen, "good")

	// a failing pre-hook prevents the value being stored
	test.ExpectFailure(t, s.Set("bad"))
	test.ExpectEquality(t, s.String(), "good")
	test.ExpectEquality(t, seen, "good")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length will not result in cropped string
	// information reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestCommandLineNotSaved(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	var fit prefs.Bool
	test.ExpectSuccess(t, dsk.Add("display.mode", &s))
	test.ExpectSuccess(t, dsk.Add("image.fit", &fit))
	test.ExpectSuccess(t, s.Set("pipeline"))
	test.ExpectSuccess(t, dsk.Save())

	// image.fit is written by the first save so remove it from the file
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[display]\nmode = \"pipeline\"\n"), 0o600))

	prefs.PushCommandLineStack("display.mode::raw; image.fit::true")
	test.ExpectSuccess(t, dsk.Load())
	prefs.PopCommandLineStack()
	test.ExpectEquality(t, s.String(), "raw")
	test.ExpectEquality(t, fit.Get().(bool), true)

	test.ExpectSuccess(t, dsk.Save())

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, strings.Contains(string(data), "fit"))

	var s2 prefs.String
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk2.Add("display.mode", &s2))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "pipeline")

	// a value changed after the load is saved as normal
	test.ExpectSuccess(t, s.Set("threshold"))
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "threshold")
}

func TestRejectedValues(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[display]\nmode = \"bogus\"\n\n[image]\nwatch = true\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var mode prefs.String
	var watch prefs.Bool
	mode.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case "pipeline", "raw":
			return nil
		}
		return errors.New("unrecognised display mode")
	})
	test.ExpectSuccess(t, mode.Set("pipeline"))
	test.ExpectSuccess(t, dsk.Add("display.mode", &mode))
	test.ExpectSuccess(t, dsk.Add("image.watch", &watch))

	// the rejected value is ignored and the remaining values are loaded
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, mode.String(), "pipeline")
	test.ExpectEquality(t, watch.Get().(bool), true)

	// a rejected command line value falls back to the value in the file
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[display]\nmode = \"raw\"\n"), 0o600))
	prefs.PushCommandLineStack("display.mode::foo")
	defer prefs.PopCommandLineStack()
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, mode.String(), "raw")
}
