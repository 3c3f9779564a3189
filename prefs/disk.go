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

package prefs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/glowmask/logger"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences.toml"

// WarningBoilerPlate is written to the head of every prefs file.
const WarningBoilerPlate = "# this file is written by glowmask. edits may be lost"

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// keys that took their value from the command line stack during the most
	// recent Load(). the override is not written to disk by Save()
	overrides map[string]override
}

type override struct {
	// the value of the pref immediately after the command line value was set
	value Value

	// the value in the prefs file at the time of the Load(). if inFile is false
	// the key was not present in the file
	file   Value
	inFile bool
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for preferences file")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]override),
	}, nil
}

// Add preference value to list of values to store/load. The key must be
// unique and must not be a prefix of another key.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") || strings.Contains(key, "..") {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already added (%s)", key)
	}
	for k := range dsk.entries {
		if strings.HasPrefix(k, key+".") || strings.HasPrefix(key, k+".") {
			return fmt.Errorf("prefs: key (%s) conflicts with existing key (%s)", key, k)
		}
	}

	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk. Values in the existing file that
// have not been added to the Disk instance are preserved.
//
// A value that was taken from the command line is not saved unless it has
// been changed since. The value from the file is written instead.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v := p.Get()
		if o, ok := dsk.overrides[k]; ok {
			if fmt.Sprint(v) == fmt.Sprint(o.value) {
				if o.inFile {
					flat[k] = o.file
				} else {
					delete(flat, k)
				}
				continue
			}
			delete(dsk.overrides, k)
		}
		flat[k] = v
	}

	data, err := toml.Marshal(nest(flat))
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	b := bytes.Buffer{}
	b.WriteString(WarningBoilerPlate)
	b.WriteString("\n\n")
	b.Write(data)

	err = os.WriteFile(dsk.path, b.Bytes(), 0o600)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error. Values
// on the top of the command line stack are used in preference to the values
// in the file.
//
// A value that is rejected by the preference is logged and the preference is
// left unchanged. A rejected command line value falls back to the value in
// the file.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	flat, err := dsk.read()
	if err != nil {
		return err
	}

	// sorted keys so that hooks run in a predictable order
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p := dsk.entries[k]
		delete(dsk.overrides, k)

		fv, inFile := flat[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				logger.Logf(logger.Allow, "prefs", "command line: %s: %v", k, err)
			} else {
				dsk.overrides[k] = override{
					value:  p.Get(),
					file:   fv,
					inFile: inFile,
				}
				continue
			}
		}

		if inFile {
			if err := p.Set(fv); err != nil {
				logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
			}
		}
	}

	return nil
}

// read the prefs file and return the values as a flat map of dotted keys.
func (dsk *Disk) read() (map[string]Value, error) {
	flat := make(map[string]Value)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return flat, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	var tree map[string]any
	err = toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, tree map[string]any, flat map[string]Value) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if t, ok := v.(map[string]any); ok {
			flatten(key, t, flat)
		} else {
			flat[key] = v
		}
	}
}

func nest(flat map[string]Value) map[string]any {
	tree := make(map[string]any)
	for k, v := range flat {
		parts := strings.Split(k, ".")
		t := tree
		for _, p := range parts[:len(parts)-1] {
			n, ok := t[p].(map[string]any)
			if !ok {
				n = make(map[string]any)
				t[p] = n
			}
			t = n
		}
		t[parts[len(parts)-1]] = v
	}
	return tree
}
