// Package search walks a directory subtree and collects entries matching a
// set of attribute and content criteria. Each call is self-contained; the
// engine holds no state between calls.
package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	fsutil "github.com/kk-code-lab/dpane/internal/fs"
)

// TypeFilter restricts which entry kinds a search may return. Filtering never
// prunes recursion: a files-only search still descends into every directory.
type TypeFilter int

const (
	AllEntries TypeFilter = iota
	FilesOnly
	DirectoriesOnly
)

// Criteria describes one recursive search below Root.
//
// FilenameSubstring is plain substring containment, not a glob. Zero values
// disable the corresponding bound: a zero MinSize/MaxSize means unbounded,
// a zero ModifiedAfter/ModifiedBefore means no time bound.
type Criteria struct {
	Root              string
	FilenameSubstring string
	ContentSubstring  string
	MinSize           int64
	MaxSize           int64
	ModifiedAfter     time.Time
	ModifiedBefore    time.Time
	Type              TypeFilter
	CaseSensitive     bool
	IncludeHidden     bool
}

// Search walks the subtree under c.Root depth-first in pre-order and returns
// matching entries in visitation order.
//
// Entries failing a criterion are excluded from results, but directories are
// still recursed into; a matched directory is emitted and recursed as well.
// Unreadable subdirectories and children with unreadable metadata are skipped
// silently. Only an unreadable root is fatal.
func Search(c Criteria) ([]fsutil.Entry, error) {
	dirEntries, err := os.ReadDir(c.Root)
	if err != nil {
		return nil, fmt.Errorf("cannot search %s: %w", c.Root, err)
	}

	results := []fsutil.Entry{}
	walkEntries(c.Root, dirEntries, c, &results)
	return results, nil
}

func walk(dir string, c Criteria, results *[]fsutil.Entry) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	walkEntries(dir, dirEntries, c, results)
}

func walkEntries(dir string, dirEntries []os.DirEntry, c Criteria, results *[]fsutil.Entry) {
	for _, de := range dirEntries {
		name := de.Name()
		if !c.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		fullPath := filepath.Join(dir, name)
		isDir := info.IsDir()

		if matches(name, fullPath, info, isDir, c) {
			*results = append(*results, fsutil.Entry{
				Name:     norm.NFC.String(name),
				FullPath: fullPath,
				IsDir:    isDir,
				Size:     info.Size(),
				Modified: info.ModTime(),
			})
		}

		if isDir {
			walk(fullPath, c, results)
		}
	}
}

func matches(name, fullPath string, info fs.FileInfo, isDir bool, c Criteria) bool {
	switch c.Type {
	case FilesOnly:
		if isDir {
			return false
		}
	case DirectoriesOnly:
		if !isDir {
			return false
		}
	}

	if c.FilenameSubstring != "" && !containsSubstring(name, c.FilenameSubstring, c.CaseSensitive) {
		return false
	}

	size := info.Size()
	if c.MinSize > 0 && size < c.MinSize {
		return false
	}
	if c.MaxSize > 0 && size > c.MaxSize {
		return false
	}

	modified := info.ModTime()
	if !c.ModifiedAfter.IsZero() && modified.Before(c.ModifiedAfter) {
		return false
	}
	if !c.ModifiedBefore.IsZero() && modified.After(c.ModifiedBefore) {
		return false
	}

	// Content matching applies to files only; directories pass through.
	if c.ContentSubstring != "" && !isDir && !contentMatches(fullPath, c.ContentSubstring, c.CaseSensitive) {
		return false
	}

	return true
}

// contentMatches reads the whole file and substring-tests it. Unreadable and
// non-UTF-8 files count as non-matching, never as errors.
func contentMatches(path, needle string, caseSensitive bool) bool {
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if !utf8.Valid(content) {
		return false
	}
	return containsSubstring(string(content), needle, caseSensitive)
}

func containsSubstring(haystack, needle string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(haystack, needle)
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
