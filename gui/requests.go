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

package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. changing the display mode.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else an InvalidFeatureArgs error is returned.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// load the image at the named path and start rendering it. if an image is
	// already being rendered then it will continue to be rendered until the
	// new image has loaded.
	ReqLoadImage FeatureReq = "ReqLoadImage" // string

	// retry the most recent image load. only valid if the most recent load
	// failed.
	ReqRetry FeatureReq = "ReqRetry" // none

	// set or get the display mode.
	ReqDisplayMode FeatureReq = "ReqDisplayMode" // pipeline.DisplayMode

	// get the state of the pipeline driver.
	ReqStatus FeatureReq = "ReqStatus" // pipeline.Status

	// whether presentation should be synchronised with the monitor refresh.
	ReqVSync FeatureReq = "ReqVSync" // bool

	// show or hide the overlay window.
	ReqOverlay FeatureReq = "ReqOverlay" // bool

	// save the visible surface to the named PNG file. an empty string will
	// cause a unique filename to be generated.
	ReqScreenshot FeatureReq = "ReqScreenshot" // string
)
