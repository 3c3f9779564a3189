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

package pipeline

import (
	"image"

	"golang.org/x/image/draw"
)

// StraightRGBA converts the image to straight (non-premultiplied) alpha with
// the order of the rows reversed. The first row of the returned pixels is the
// bottom row of the image, which is the order expected by texture storage.
// The bounds of the returned image start at the origin.
func StraightRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()

	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)

	flipped := image.NewNRGBA(nrgba.Bounds())
	FlipRows(flipped.Pix, nrgba.Pix, nrgba.Stride, b.Dy())

	return flipped
}

// FlipRows copies src to dest with the order of the rows reversed.
func FlipRows(dest []uint8, src []uint8, stride int, rows int) {
	for y := 0; y < rows; y++ {
		s := src[y*stride : (y+1)*stride]
		d := dest[(rows-1-y)*stride : (rows-y)*stride]
		copy(d, s)
	}
}
