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

package imageload

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
)

// Watcher reports changes to a single image file.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string

	// changed is buffered with a length of one. changes that happen before
	// the previous change has been received are coalesced
	changed chan string

	done chan bool
}

// NewWatcher starts watching the named file. The directory containing the
// file is watched rather than the file itself, so that files replaced by an
// editor (rather than written in place) are noticed.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	err = w.Add(filepath.Dir(abs))
	if err != nil {
		_ = w.Close()
		return nil, curated.Errorf(LoadError, err)
	}

	wtc := &Watcher{
		watcher: w,
		path:    abs,
		changed: make(chan string, 1),
		done:    make(chan bool),
	}

	go wtc.run()

	return wtc, nil
}

func (wtc *Watcher) run() {
	defer close(wtc.done)

	for {
		select {
		case ev, ok := <-wtc.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != wtc.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case wtc.changed <- wtc.path:
			default:
			}

		case err, ok := <-wtc.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "imageload", curated.Errorf(LoadError, err))
		}
	}
}

// Changed returns the channel on which the path of the watched file is sent
// whenever it is written to or created.
func (wtc *Watcher) Changed() <-chan string {
	return wtc.changed
}

// Path returns the absolute path of the watched file.
func (wtc *Watcher) Path() string {
	return wtc.path
}

// Close stops watching the file. Calling Close() again after it has returned
// does nothing. Close() must not be called from more than one goroutine at
// the same time; the GUI only calls it from the main thread.
func (wtc *Watcher) Close() error {
	select {
	case <-wtc.done:
		return nil
	default:
	}
	err := wtc.watcher.Close()
	<-wtc.done
	return err
}
