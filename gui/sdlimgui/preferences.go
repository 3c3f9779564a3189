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
	"github.com/jetsetilly/glowmask/paths"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/prefs"
)

type preferences struct {
	img *SdlImgui
	dsk *prefs.Disk

	// the display mode is stored as a string and parsed when read. the pre
	// hook makes sure that only valid names are stored
	displayMode prefs.String

	vsync   prefs.Bool
	overlay prefs.Bool
	fit     prefs.Bool
	watch   prefs.Bool
}

func newPreferences(img *SdlImgui) (*preferences, error) {
	p := &preferences{img: img}

	// defaults
	p.displayMode.Set(pipeline.Pipeline.String())
	p.vsync.Set(true)
	p.overlay.Set(true)
	p.fit.Set(false)
	p.watch.Set(false)

	p.displayMode.SetHookPre(func(v prefs.Value) error {
		_, err := pipeline.ParseDisplayMode(v.(string))
		return err
	})

	p.vsync.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			p.img.plt.setSwapInterval(syncWithVerticalRetrace)
		} else {
			p.img.plt.setSwapInterval(syncImmediateUpdate)
		}
		return nil
	})

	p.fit.SetHookPost(func(v prefs.Value) error {
		p.img.loader.SetFit(v.(bool))
		return nil
	})

	p.watch.SetHookPost(func(v prefs.Value) error {
		return p.img.setWatch(v.(bool))
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.mode", &p.displayMode)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.vsync", &p.vsync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.overlay", &p.overlay)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("image.fit", &p.fit)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("image.watch", &p.watch)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// DisplayMode implements the pipeline.ModeSelector interface.
func (p *preferences) DisplayMode() pipeline.DisplayMode {
	m, _ := pipeline.ParseDisplayMode(p.displayMode.Get().(string))
	return m
}

func (p *preferences) setDisplayMode(m pipeline.DisplayMode) error {
	return p.displayMode.Set(m.String())
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
