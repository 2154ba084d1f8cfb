// Package trash locates the platform trash directory and moves files into it.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Path returns the trash directory for this platform and whether one exists.
// On Linux the XDG location is preferred with ~/.Trash as a fallback; Windows
// has no plain-directory trash we can rename into.
func Path() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, ".Trash"), true
	case "windows":
		return "", false
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "Trash", "files"), true
		}
		candidate := filepath.Join(home, ".local", "share", "Trash", "files")
		if _, err := os.Stat(filepath.Dir(candidate)); err == nil {
			return candidate, true
		}
		return filepath.Join(home, ".Trash"), true
	}
}

// IsTrashPath reports whether path is the trash directory or inside it.
func IsTrashPath(path string) bool {
	trashDir, ok := Path()
	if !ok {
		return false
	}
	rel, err := filepath.Rel(trashDir, path)
	if err != nil {
		return false
	}
	return rel == "." || !isDotDot(rel)
}

func isDotDot(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

// DisplayName is the label used for the trash in menus and prompts.
func DisplayName() string {
	if runtime.GOOS == "windows" {
		return "Recycle Bin"
	}
	return "Trash"
}

// MoveToTrash renames path into the trash directory, uniquifying the name if
// an entry with the same name is already there.
func MoveToTrash(path string) error {
	trashDir, ok := Path()
	if !ok {
		return fmt.Errorf("no trash directory on %s", runtime.GOOS)
	}
	if err := os.MkdirAll(trashDir, 0700); err != nil {
		return fmt.Errorf("cannot create trash directory: %w", err)
	}

	base := filepath.Base(path)
	target := filepath.Join(trashDir, base)
	for n := 1; ; n++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		}
		target = filepath.Join(trashDir, fmt.Sprintf("%s.%d", base, n))
	}

	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("cannot move %s to trash: %w", path, err)
	}
	return nil
}
