// Package vcs decorates directory listings with git working-tree status.
//
// Status is read by shelling out to git. Machines without git, or
// directories outside any repository, simply get no decoration.
package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/dpane/internal/fs"
)

// runGit is replaceable in tests.
var runGit = func(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Output()
}

// FindRepoRoot walks up from path looking for a .git entry. It reports the
// repository root and whether one was found.
func FindRepoRoot(path string) (string, bool) {
	dir := path
	for {
		if _, err := os.Lstat(filepath.Join(dir, ".git")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// StatusMap runs `git status --porcelain` at root and maps absolute paths to
// their status codes.
func StatusMap(root string) (map[string]fs.Status, error) {
	out, err := runGit(root, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]fs.Status)
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		code := statusCode(line[0], line[1])
		if code == "" {
			continue
		}

		relPath := line[3:]
		// Renames are reported as "old -> new"; the new path is the one on
		// disk.
		if idx := strings.Index(relPath, " -> "); idx >= 0 {
			relPath = relPath[idx+4:]
		}
		relPath = strings.Trim(relPath, `"`)
		relPath = strings.TrimSuffix(relPath, "/")

		statuses[filepath.Join(root, filepath.FromSlash(relPath))] = code
	}
	return statuses, nil
}

// statusCode collapses the two porcelain columns into a single display code.
// The worktree column wins over the index column.
func statusCode(index, worktree byte) fs.Status {
	if index == '?' && worktree == '?' {
		return "?"
	}
	if index == '!' && worktree == '!' {
		return "!"
	}
	for _, c := range []byte{worktree, index} {
		switch c {
		case 'M', 'T':
			return "M"
		case 'A':
			return "A"
		case 'D':
			return "D"
		case 'R':
			return "R"
		case 'C':
			return "C"
		case 'U':
			return "U"
		}
	}
	return ""
}

// Decorate annotates the entries listed from dir with their git status. It
// is shaped to hang off a pane's Decorate hook and never fails: outside a
// repository, or when git is unavailable, entries are left untouched.
func Decorate(dir string, entries []fs.Entry) {
	root, ok := FindRepoRoot(dir)
	if !ok {
		return
	}
	statuses, err := StatusMap(root)
	if err != nil {
		return
	}

	for i := range entries {
		if entries[i].IsParent() {
			continue
		}
		if code, ok := statuses[entries[i].FullPath]; ok {
			entries[i].VCSStatus = code
		}
	}
}
