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

// Package imageload supplies source images to the pipeline. Images are
// loaded asynchronously with Loader.Request(), which returns a channel on
// which exactly one Result will be sent. There is no timeout and no
// cancellation of a request.
//
// Decoders for PNG, JPEG, GIF, BMP, TIFF and WebP are registered by the
// package.
//
// The Fit() function letterboxes an image into a square white canvas, keeping
// the aspect ratio of the image. Images that are not fitted are passed to the
// pipeline unchanged and are stretched over the render area by the quad
// geometry.
//
// A Watcher reports changes to an image file so that the image can be
// reloaded or a failed load can be retried.
package imageload
