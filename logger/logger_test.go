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

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "pipeline", "ready")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "pipeline: ready\n")

	w.Reset()
	log.Log(logger.Allow, "imageload", "loading")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "pipeline: ready\nimageload: loading\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "pipeline: ready\nimageload: loading\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "imageload: loading\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "pipeline", "frame")
	log.Log(logger.Allow, "pipeline", "frame")
	log.Log(logger.Allow, "pipeline", "frame")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "pipeline: frame (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Logf(logger.Allow, "tag", "wrapped: %v", errors.New("test error"))
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: wrapped: test error\ntag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "before", "echo")

	tw := &test.Writer{}
	log.SetEcho(tw, true)
	log.Log(logger.Allow, "after", "echo")
	test.ExpectSuccess(t, tw.Compare("before: echo\nafter: echo\n"))

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "silent", "echo")
	test.ExpectSuccess(t, tw.Compare("before: echo\nafter: echo\n"))
}
