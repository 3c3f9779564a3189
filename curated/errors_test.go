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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/test"
)

const (
	setupPattern   = "setup: %v"
	compilePattern = "compile: %v"
)

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(setupPattern, "foo")
	test.ExpectEquality(t, e.Error(), "setup: foo")

	// wrapping an error with the same leading part does not repeat it
	f := curated.Errorf(setupPattern, e)
	test.ExpectEquality(t, f.Error(), "setup: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(setupPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, setupPattern))
	test.ExpectFailure(t, curated.Is(e, compilePattern))

	// plain errors are never curated
	p := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, setupPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(compilePattern, "syntax error")
	f := curated.Errorf(setupPattern, e)

	test.ExpectSuccess(t, curated.Has(f, compilePattern))
	test.ExpectSuccess(t, curated.Has(f, setupPattern))
	test.ExpectFailure(t, curated.Is(f, compilePattern))
	test.ExpectEquality(t, f.Error(), "setup: compile: syntax error")
}

func TestUnwrap(t *testing.T) {
	p := errors.New("plain")
	e := curated.Errorf(setupPattern, p)
	test.ExpectSuccess(t, errors.Is(e, p))
}
