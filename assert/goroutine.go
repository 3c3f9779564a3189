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

// Package assert contains checks that are useful for catching programming
// errors during development and testing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It should
// only ever be used for checking that functions are called from the expected
// goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the identity of the goroutine that created it.
type Goroutine struct {
	id uint64
}

// CurrentGoroutine returns a Goroutine for the calling goroutine.
func CurrentGoroutine() Goroutine {
	return Goroutine{id: GoroutineID()}
}

// IsCurrent returns true if the calling goroutine is the same goroutine that
// created the Goroutine value.
func (g Goroutine) IsCurrent() bool {
	return g.id == GoroutineID()
}
