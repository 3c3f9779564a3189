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

// Package cpu implements the pipeline.Device interface in software. The
// passes are run with the same vertex transform and the same per-texel
// algorithms as the GLSL programs in the shaders package. Textures are 8 bits
// per channel, sampled with nearest filtering and clamped to the edge.
//
// Rows of each pass are shaded concurrently but a call to Execute() does not
// return until the pass is complete.
//
// The device is used by the tests of the pipeline and by the headless render
// mode of the application.
package cpu
