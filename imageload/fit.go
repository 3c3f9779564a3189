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
	"image/color"

	"golang.org/x/image/draw"
)

// Margin is the number of pixels left between a fitted image and the edge of
// the canvas.
const Margin = 32

// Fit draws the image into a square canvas of the given dimension. The image
// is scaled so that it fits inside the margin while keeping its aspect ratio
// and is centred in the canvas. The canvas is white and the image is
// composited over it.
func Fit(img image.Image, dimension int, margin int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, dimension, dimension))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	b := img.Bounds()
	avail := dimension - 2*margin
	if avail <= 0 || b.Empty() {
		return canvas
	}

	// scale the largest side of the image to the available space
	w, h := avail, avail
	if b.Dx() > b.Dy() {
		h = max(1, (b.Dy()*avail+b.Dx()/2)/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, (b.Dx()*avail+b.Dy()/2)/b.Dy())
	}

	x := (dimension - w) / 2
	y := (dimension - h) / 2
	dest := image.Rect(x, y, x+w, y+h)

	draw.CatmullRom.Scale(canvas, dest, img, b, draw.Over, nil)

	return canvas
}
