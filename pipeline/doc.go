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

// Package pipeline renders a source image through a fixed chain of three
// render passes and presents the result to a visible surface.
//
// The passes are run in the same order every frame:
//
//	Threshold       source   -> target A
//	HorizontalBlur  target A -> target B
//	VerticalBlur    target B -> surface
//
// The Threshold pass binarises the source into a mask held in the red
// channel. The two blur passes are directional max-filters over that mask,
// the weight of each sample falling linearly with distance. The VerticalBlur
// pass also remaps the soft band of the result to opaque white.
//
// When the display mode is RawThreshold only the Threshold pass is run and
// it writes directly to the surface.
//
// The pipeline does not talk to a graphics API directly. The Device
// interface is implemented by the opengl package for use with a real window
// and by the cpu package, which runs the same passes in software and is used
// for testing and headless rendering.
//
// The Driver type owns the PipelineState and moves through the following
// states:
//
//	Uninitialized -> Ready -> Loading -> Running
//	                             |  ^
//	                             v  |
//	                          LoadFailed
//
// Setup() compiles the programs, builds the geometry and allocates the
// offscreen targets before any image is requested. Image arrival is purely
// an update of the source texture.
package pipeline
