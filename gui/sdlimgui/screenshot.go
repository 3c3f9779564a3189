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

package sdlimgui

import (
	"github.com/anthonynsimon/bild/imgio"
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/paths"
)

// screenshot saves the visible surface as a PNG file. An empty filename is
// replaced with a unique filename in the working directory.
func (img *SdlImgui) screenshot(filename string) error {
	if filename == "" {
		filename = paths.UniqueFilename("screenshot", img.path, "png")
	}

	// render again without the overlay so that it doesn't appear in the
	// screenshot. the back buffer is read before it is swapped
	img.glsl.preRender()
	err := img.drv.RenderFrame()
	if err != nil {
		return err
	}

	shot, err := img.dev.ReadPixels(nil)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	err = imgio.Save(filename, shot, imgio.PNGEncoder())
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	logger.Logf(logger.Allow, "sdlimgui", "screenshot saved to %s", filename)

	return nil
}
