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
	"fmt"
	"path/filepath"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/pipeline"
)

const overlayTitle = "Glowmask"

var (
	overlayErrorColor = imgui.Vec4{X: 1.0, Y: 0.4, Z: 0.4, W: 1.0}
	overlayDimColor   = imgui.Vec4{X: 0.7, Y: 0.7, Z: 0.7, W: 1.0}
)

func displayModeLabel(m pipeline.DisplayMode) string {
	switch m {
	case pipeline.Pipeline:
		return "Glow (all passes)"
	case pipeline.RawThreshold:
		return "Threshold only"
	}
	return m.String()
}

// drawOverlay draws the overlay window. the overlay is the only way of
// changing the display mode other than the keyboard shortcut.
func (img *SdlImgui) drawOverlay() {
	if !img.prefs.overlay.Get().(bool) {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowBgAlpha(0.8)
	open := imgui.BeginV(overlayTitle, nil, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoCollapse)
	defer imgui.End()
	if !open {
		return
	}

	var err error

	mode := img.prefs.DisplayMode()
	for _, m := range pipeline.DisplayModes {
		if imgui.RadioButton(displayModeLabel(m), mode == m) {
			err = img.prefs.setDisplayMode(m)
		}
	}

	imgui.Separator()

	status := img.drv.Status()
	if img.path != "" {
		imgui.Text(filepath.Base(img.path))
	}
	imgui.PushStyleColor(imgui.StyleColorText, overlayDimColor)
	imgui.Text(status.String())
	imgui.PopStyleColor()

	if status == pipeline.LoadFailed {
		imgui.PushStyleColor(imgui.StyleColorText, overlayErrorColor)
		imgui.PushTextWrapPosV(300)
		imgui.Text(fmt.Sprintf("%v", img.drv.LoadErr()))
		imgui.PopTextWrapPos()
		imgui.PopStyleColor()
		if imgui.Button("Retry") {
			err = img.retry()
		}
	}

	imgui.Separator()

	vsync := img.prefs.vsync.Get().(bool)
	if imgui.Checkbox("VSync", &vsync) {
		err = img.prefs.vsync.Set(vsync)
	}

	fit := img.prefs.fit.Get().(bool)
	if imgui.Checkbox("Fit image to canvas", &fit) {
		err = img.prefs.fit.Set(fit)
	}

	watch := img.prefs.watch.Get().(bool)
	if imgui.Checkbox("Reload on change", &watch) {
		err = img.prefs.watch.Set(watch)
	}

	if imgui.Button("Screenshot") {
		err = img.screenshot("")
	}

	imgui.PushStyleColor(imgui.StyleColorText, overlayDimColor)
	imgui.Text(fmt.Sprintf("%.1f fps", img.io.Framerate()))
	imgui.PopStyleColor()

	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
}
