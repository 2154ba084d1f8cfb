// Package bookmarks persists named directory shortcuts.
package bookmarks

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kk-code-lab/dpane/internal/trash"
)

// Bookmark is one saved directory shortcut.
type Bookmark struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Icon string `yaml:"icon,omitempty"`
}

// Manager holds the user's bookmarks and where they are stored.
type Manager struct {
	Bookmarks []Bookmark

	path string
}

// Load reads the bookmark file at path. A missing file yields an empty
// manager; a malformed file is an error.
func Load(path string) (*Manager, error) {
	m := &Manager{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("cannot read bookmarks %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &m.Bookmarks); err != nil {
		return nil, fmt.Errorf("cannot parse bookmarks %s: %w", path, err)
	}
	return m, nil
}

// Save writes the bookmarks back to disk.
func (m *Manager) Save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(m.Bookmarks)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0644)
}

// Add appends a bookmark unless the path is already bookmarked. It reports
// whether the bookmark was added.
func (m *Manager) Add(name, path, icon string) bool {
	for _, b := range m.Bookmarks {
		if b.Path == path {
			return false
		}
	}
	m.Bookmarks = append(m.Bookmarks, Bookmark{Name: name, Path: path, Icon: icon})
	return true
}

// Remove deletes the bookmark at index. Out-of-range indices are ignored.
func (m *Manager) Remove(index int) {
	if index < 0 || index >= len(m.Bookmarks) {
		return
	}
	m.Bookmarks = append(m.Bookmarks[:index], m.Bookmarks[index+1:]...)
}

// QuickAccess returns the well-known user directories that exist on this
// machine, for the jump menu alongside the saved bookmarks.
func QuickAccess() []Bookmark {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	candidates := []Bookmark{
		{Name: "Home", Path: home},
		{Name: "Documents", Path: filepath.Join(home, "Documents")},
		{Name: "Downloads", Path: filepath.Join(home, "Downloads")},
		{Name: "Pictures", Path: filepath.Join(home, "Pictures")},
		{Name: "Music", Path: filepath.Join(home, "Music")},
		{Name: "Videos", Path: filepath.Join(home, "Videos")},
		{Name: "Desktop", Path: filepath.Join(home, "Desktop")},
	}
	if trashPath, ok := trash.Path(); ok {
		candidates = append(candidates, Bookmark{Name: trash.DisplayName(), Path: trashPath})
	}

	var out []Bookmark
	for _, c := range candidates {
		if info, err := os.Stat(c.Path); err == nil && info.IsDir() {
			out = append(out, c)
		}
	}
	return out
}
