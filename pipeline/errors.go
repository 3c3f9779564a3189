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

// Error patterns for use with the curated package.
const (
	// an unrecoverable error during setup: no context, compilation or link
	// failure, incomplete framebuffer
	SetupFatal = "setup: %v"

	// the source image could not be loaded or decoded. the driver can
	// recover from this with Retry()
	ImageLoadFailure = "image load: %v"

	// an error reported by the device while rendering a frame
	FrameFatal = "frame: %v"

	// a pass has been asked to read from the target it is writing to
	FeedbackLoop = "feedback loop: %v pass reads from its destination (%v)"

	// the driver has been asked to make a state change that isn't possible
	InvalidTransition = "invalid transition: %v -> %v"
)
