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
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/gui"
	"github.com/jetsetilly/glowmask/pipeline"
)

// requests are serviced by the main thread so a request made from the main
// thread would never complete.
const requestFromMainThread = "sdlimgui: %v requested from the main thread"

// SetFeature implements gui.GUI interface.
//
// MUST NOT be called from the main thread.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	if img.mainThread.IsCurrent() {
		return curated.Errorf(requestFromMainThread, request)
	}
	img.polling.featureSet <- featureRequest{request: request, args: args}
	return <-img.polling.featureSetErr
}

// GetFeature implements gui.GUI interface.
//
// MUST NOT be called from the main thread.
func (img *SdlImgui) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	if img.mainThread.IsCurrent() {
		return nil, curated.Errorf(requestFromMainThread, request)
	}
	img.polling.featureGet <- featureRequest{request: request}
	return <-img.polling.featureGetData, <-img.polling.featureGetErr
}

// serviceRequests is called from the service loop.
func (img *SdlImgui) serviceRequests() {
	select {
	case r := <-img.polling.featureSet:
		img.polling.featureSetErr <- img.serviceSetFeature(r)
	case r := <-img.polling.featureGet:
		d, err := img.serviceGetFeature(r)
		img.polling.featureGetData <- d
		img.polling.featureGetErr <- err
	default:
	}
}

func (img *SdlImgui) serviceSetFeature(request featureRequest) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf(gui.InvalidFeatureArgs, request.request)
		}
	}()

	switch request.request {
	case gui.ReqLoadImage:
		return img.loadImage(request.args[0].(string))

	case gui.ReqRetry:
		return img.retry()

	case gui.ReqDisplayMode:
		return img.prefs.setDisplayMode(request.args[0].(pipeline.DisplayMode))

	case gui.ReqVSync:
		return img.prefs.vsync.Set(request.args[0].(bool))

	case gui.ReqOverlay:
		return img.prefs.overlay.Set(request.args[0].(bool))

	case gui.ReqScreenshot:
		return img.screenshot(request.args[0].(string))
	}

	return curated.Errorf(gui.UnsupportedGuiFeature, request.request)
}

func (img *SdlImgui) serviceGetFeature(request featureRequest) (gui.FeatureReqData, error) {
	switch request.request {
	case gui.ReqDisplayMode:
		return img.prefs.DisplayMode(), nil

	case gui.ReqStatus:
		return img.drv.Status(), nil

	case gui.ReqVSync:
		return img.prefs.vsync.Get(), nil

	case gui.ReqOverlay:
		return img.prefs.overlay.Get(), nil
	}

	return nil, curated.Errorf(gui.UnsupportedGuiFeature, request.request)
}
