// Package pane holds the state machine behind one directory-browsing session:
// current listing, cursor, sort order, display filter, navigation history, and
// shift-extend selection. Two panes never share mutable state.
package pane

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kk-code-lab/dpane/internal/fs"
)

// ErrInvalidPath marks navigation targets that do not exist or cannot be
// resolved to a canonical absolute path.
var ErrInvalidPath = errors.New("invalid path")

// History never grows beyond this; the oldest entry is evicted first.
const maxHistory = 50

// listFn mirrors fs.List but is overridable in tests.
var listFn = fs.List

// Selection is a contiguous anchor-to-active index span into Entries.
type Selection struct {
	Anchor int
	Active int
}

// Bounds returns the inclusive low/high indexes covered by the selection.
func (s Selection) Bounds() (lo, hi int) {
	if s.Anchor <= s.Active {
		return s.Anchor, s.Active
	}
	return s.Active, s.Anchor
}

// Pane is one independent browsing session.
type Pane struct {
	CurrentPath   string
	Entries       []fs.Entry
	Cursor        int
	ScrollOffset  int
	SortKey       SortKey
	SortDirection SortDirection
	Filter        string
	HideHidden    bool
	History       []string
	HistoryIndex  int
	Selected      *Selection

	// Decorate, when set, annotates freshly listed entries in place
	// (e.g. VCS status). Listing errors never reach it.
	Decorate func(dir string, entries []fs.Entry)
}

// New creates a pane rooted at path and performs the initial listing.
func New(path string) (*Pane, error) {
	p := &Pane{
		CurrentPath: path,
		History:     []string{path},
	}
	if err := p.Refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// StartPath picks the initial directory: home, then the working directory,
// then the filesystem root.
func StartPath() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return string(filepath.Separator)
}

// Refresh re-lists CurrentPath and re-applies the active sort.
//
// Transactional: on a listing failure the previous Entries and Cursor are
// left untouched and the error is returned, so a pane never goes blank
// because of a transient read failure.
func (p *Pane) Refresh() error {
	entries, err := listFn(p.CurrentPath)
	if err != nil {
		return err
	}

	// The lister always prepends the ".." sentinel; the root has no parent.
	if fs.IsRoot(p.CurrentPath) && len(entries) > 0 && entries[0].IsParent() {
		entries = entries[1:]
	}

	p.Entries = entries
	p.applySort()

	if p.Decorate != nil {
		p.Decorate(p.CurrentPath, p.Entries)
	}

	p.Cursor = clampIndex(p.Cursor, len(p.Entries))
	p.clampSelection()
	return nil
}

// NavigateTo switches the pane to path and records it in history. On failure
// the pane is left exactly as it was.
func (p *Pane) NavigateTo(path string) error {
	prevPath := p.CurrentPath
	p.CurrentPath = path
	if err := p.Refresh(); err != nil {
		p.CurrentPath = prevPath
		return err
	}

	p.Cursor = 0
	p.ScrollOffset = 0
	p.Selected = nil
	p.pushHistory(path)
	return nil
}

// NavigateBack moves one step back in history. At the oldest entry it is a
// no-op returning nil.
func (p *Pane) NavigateBack() error {
	if p.HistoryIndex <= 0 {
		return nil
	}
	return p.goToHistory(p.HistoryIndex - 1)
}

// NavigateForward moves one step forward in history. At the newest entry it
// is a no-op returning nil.
func (p *Pane) NavigateForward() error {
	if p.HistoryIndex >= len(p.History)-1 {
		return nil
	}
	return p.goToHistory(p.HistoryIndex + 1)
}

func (p *Pane) goToHistory(index int) error {
	prevPath, prevIndex := p.CurrentPath, p.HistoryIndex

	p.HistoryIndex = index
	p.CurrentPath = p.History[index]
	if err := p.Refresh(); err != nil {
		p.CurrentPath, p.HistoryIndex = prevPath, prevIndex
		return err
	}

	p.Cursor = 0
	p.ScrollOffset = 0
	p.Selected = nil
	return nil
}

// CanGoBack reports whether history has an older entry.
func (p *Pane) CanGoBack() bool {
	return p.HistoryIndex > 0
}

// CanGoForward reports whether history has a newer entry.
func (p *Pane) CanGoForward() bool {
	return p.HistoryIndex < len(p.History)-1
}

// EnterSelected descends into the directory under the cursor. The ".."
// sentinel resolves to the parent of CurrentPath. Non-directories are a
// no-op; opening files belongs to the front end.
func (p *Pane) EnterSelected() error {
	if p.Cursor >= len(p.Entries) {
		return nil
	}
	entry := p.Entries[p.Cursor]
	if !entry.IsDir {
		return nil
	}

	target := entry.FullPath
	if entry.IsParent() {
		target = filepath.Dir(p.CurrentPath)
	}

	resolved, err := canonicalize(target)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPath, target, err)
	}
	return p.NavigateTo(resolved)
}

// MoveCursor moves the cursor by delta, clamped to the listing. Any simple
// cursor move drops the selection.
func (p *Pane) MoveCursor(delta int) {
	p.Selected = nil
	p.Cursor = clampIndex(p.Cursor+delta, len(p.Entries))
}

// ExtendSelection moves the cursor by delta while growing the selection span
// from its anchor. The anchor is planted at the current cursor on first use.
func (p *Pane) ExtendSelection(delta int) {
	if len(p.Entries) == 0 {
		return
	}
	if p.Selected == nil {
		p.Selected = &Selection{Anchor: p.Cursor, Active: p.Cursor}
	}
	p.Cursor = clampIndex(p.Cursor+delta, len(p.Entries))
	p.Selected.Active = p.Cursor
}

// ClearSelection drops the selection span unconditionally.
func (p *Pane) ClearSelection() {
	p.Selected = nil
}

// IsSelected reports whether index lies inside the selection span.
func (p *Pane) IsSelected(index int) bool {
	if p.Selected == nil {
		return false
	}
	lo, hi := p.Selected.Bounds()
	return index >= lo && index <= hi
}

// SelectedEntries returns the entries covered by the selection, or the single
// entry under the cursor when no selection exists.
func (p *Pane) SelectedEntries() []fs.Entry {
	if len(p.Entries) == 0 {
		return nil
	}
	if p.Selected == nil {
		return []fs.Entry{p.Entries[p.Cursor]}
	}
	lo, hi := p.Selected.Bounds()
	lo = clampIndex(lo, len(p.Entries))
	hi = clampIndex(hi, len(p.Entries))
	out := make([]fs.Entry, hi-lo+1)
	copy(out, p.Entries[lo:hi+1])
	return out
}

// ApplyFilter stores a case-insensitive display filter. The filter is
// presentational only; Entries is never mutated by it.
func (p *Pane) ApplyFilter(substring string) {
	p.Filter = substring
}

// UpdateScroll keeps the cursor inside a viewport of the given height.
func (p *Pane) UpdateScroll(viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	if p.Cursor < p.ScrollOffset {
		p.ScrollOffset = p.Cursor
	} else if p.Cursor >= p.ScrollOffset+viewportHeight {
		p.ScrollOffset = p.Cursor - viewportHeight + 1
	}
}

func (p *Pane) pushHistory(path string) {
	if len(p.History) == 0 {
		p.History = []string{path}
		p.HistoryIndex = 0
		return
	}

	// Truncate any forward entries before appending.
	if p.HistoryIndex < len(p.History)-1 {
		p.History = p.History[:p.HistoryIndex+1]
	}

	if p.History[p.HistoryIndex] == path {
		return
	}

	p.History = append(p.History, path)
	p.HistoryIndex = len(p.History) - 1

	if len(p.History) > maxHistory {
		p.History = p.History[len(p.History)-maxHistory:]
		p.HistoryIndex = len(p.History) - 1
	}
}

func (p *Pane) clampSelection() {
	if p.Selected == nil {
		return
	}
	if len(p.Entries) == 0 {
		p.Selected = nil
		return
	}
	p.Selected.Anchor = clampIndex(p.Selected.Anchor, len(p.Entries))
	p.Selected.Active = clampIndex(p.Selected.Active, len(p.Entries))
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func clampIndex(index, length int) int {
	if length <= 0 || index < 0 {
		return 0
	}
	if index > length-1 {
		return length - 1
	}
	return index
}
