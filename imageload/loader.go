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

package imageload

import (
	"image"
	"sync/atomic"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
)

// LoadError is the pattern for all errors returned by the package.
const LoadError = "imageload: %v"

// Result is sent on the channel returned by Loader.Request(). One and only
// one of Image and Err will be nil.
type Result struct {
	Path  string
	Image *image.RGBA
	Err   error
}

// Load opens and decodes the named file. If dimension is greater than zero
// the image is letterboxed into a canvas of that size with Fit().
func Load(path string, dimension int) (*image.RGBA, error) {
	if path == "" {
		return nil, curated.Errorf(LoadError, "no filename")
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if img.Bounds().Empty() {
		return nil, curated.Errorf(LoadError, "image has no pixels")
	}

	if dimension > 0 {
		return Fit(img, dimension, Margin), nil
	}

	return clone.AsRGBA(img), nil
}

// Loader loads images in the background.
type Loader struct {
	// the dimension of the canvas used when fitting is enabled
	dimension int
	fit       atomic.Bool

	// the number of requests that have not yet completed
	pending atomic.Int32
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(dimension int) *Loader {
	return &Loader{
		dimension: dimension,
	}
}

// SetFit changes whether images are letterboxed. The change affects requests
// made after the call.
func (ld *Loader) SetFit(fit bool) {
	ld.fit.Store(fit)
}

// Pending returns the number of requests that have not completed.
func (ld *Loader) Pending() int {
	return int(ld.pending.Load())
}

// Request loading of the named file. The Result is sent on the returned
// channel, which is buffered so the request never blocks waiting for the
// result to be received.
func (ld *Loader) Request(path string) <-chan Result {
	dim := 0
	if ld.fit.Load() {
		dim = ld.dimension
	}

	ld.pending.Add(1)

	ch := make(chan Result, 1)
	go func() {
		img, err := Load(path, dim)
		if err != nil {
			logger.Log(logger.Allow, "imageload", err)
		} else {
			logger.Logf(logger.Allow, "imageload", "%s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
		}

		ld.pending.Add(-1)
		ch <- Result{Path: path, Image: img, Err: err}
		close(ch)
	}()

	return ch
}
