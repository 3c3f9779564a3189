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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, just like fmt.Errorf(), but the
// pattern is kept with the error so that it can be used to identify the error
// later on:
//
//	e := curated.Errorf("setup: %v", "framebuffer incomplete")
//
//	if curated.Is(e, "setup: %v") {
//		fmt.Println("true")
//	}
//
// Has() is similar but checks if the pattern occurs anywhere in the chain of
// curated errors.
//
//	e := curated.Errorf("compile: %v", "syntax error")
//	f := curated.Errorf("setup: %v", e)
//
//	if curated.Has(f, "compile: %v") {
//		fmt.Println("true")
//	}
//
// When an error is wrapped by an error with the same leading part, the
// message is de-duplicated. An error created with "setup: %v" wrapping
// another "setup: %v" error prints "setup: ..." only once.
//
// Error patterns that matter to callers should be exported as constants by
// the package that creates them. For example, the pipeline package exports
// SetupFatal and ImageLoadFailure.
package curated
