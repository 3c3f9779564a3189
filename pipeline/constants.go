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

// Dimension is the width and height of the offscreen targets in texels.
const Dimension = 768

// SampleRadius is the number of texels covered on each side of the centre
// texel by the blur passes. The weight of a sample at distance k is
// (1 - k/SampleRadius) so samples at the radius contribute nothing.
const SampleRadius = 30

// ThresholdLength is the length of an opaque RGB vector at or above which a
// texel is considered to be background. The length of pure white is the square
// root of three (1.7320508) so pure white is always background.
const ThresholdLength = 1.71

// The halo band of the VerticalBlur pass. Texels with a blur value strictly
// between HaloLow and HaloHigh are output as opaque white.
const (
	HaloLow  = 0.4
	HaloHigh = 1.0
)

// NumTargets is the number of offscreen targets allocated by the pipeline.
const NumTargets = 2

// indexes into the list of targets.
const (
	targetA = iota
	targetB
)
