package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParentEntry returns the synthetic ".." sentinel that heads every listing.
func ParentEntry() Entry {
	return Entry{Name: ParentDirName, FullPath: ParentDirName, IsDir: true}
}

// List reads the immediate children of path.
//
// The first entry is always the ".." sentinel; callers suppress it at
// filesystem roots. Children whose metadata cannot be read are skipped
// silently — only a failure to open the directory itself is reported.
func List(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	items := make([]Entry, 0, len(dirEntries)+1)
	items = append(items, ParentEntry())

	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			continue
		}

		rawName := e.Name()
		fullPath := filepath.Join(path, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		isDir := e.IsDir()

		// For symlinks, classify by the target.
		if info.Mode()&os.ModeSymlink != 0 {
			if targetInfo, err := os.Stat(fullPath); err == nil {
				isDir = targetInfo.IsDir()
			}
		}

		items = append(items, Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
			IsDir:    isDir,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	SortDefault(items[1:])
	return items, nil
}

// SortDefault orders entries directories-first, then by case-insensitive name.
func SortDefault(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}

// IsRoot reports whether path has no parent directory.
func IsRoot(path string) bool {
	return filepath.Dir(path) == path
}
