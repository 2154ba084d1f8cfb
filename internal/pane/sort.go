package pane

import (
	"sort"
	"strings"

	"github.com/kk-code-lab/dpane/internal/fs"
)

// SortKey selects the attribute a pane sorts on.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByDate
)

// SortDirection flips the ordering of a sort key.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// ToggleSort flips the direction when key is already active, otherwise
// switches to key ascending, then re-sorts the listing in place.
func (p *Pane) ToggleSort(key SortKey) {
	if p.SortKey == key {
		if p.SortDirection == Ascending {
			p.SortDirection = Descending
		} else {
			p.SortDirection = Ascending
		}
	} else {
		p.SortKey = key
		p.SortDirection = Ascending
	}
	p.applySort()
}

// applySort sorts Entries with the ".." sentinel pinned at index 0.
func (p *Pane) applySort() {
	items := p.Entries
	if len(items) > 0 && items[0].IsParent() {
		items = items[1:]
	}
	sort.SliceStable(items, func(i, j int) bool {
		return p.entryLess(items[i], items[j])
	})
}

// entryLess implements the pane comparator. Name sorting keeps directories
// before files in both directions; the direction flip applies only to the
// name ordering among same-kind entries. Size and Date are plain reversible
// comparisons with no directories-first rule.
func (p *Pane) entryLess(a, b fs.Entry) bool {
	descending := p.SortDirection == Descending

	switch p.SortKey {
	case SortBySize:
		if descending {
			return a.Size > b.Size
		}
		return a.Size < b.Size
	case SortByDate:
		if descending {
			return a.Modified.After(b.Modified)
		}
		return a.Modified.Before(b.Modified)
	default:
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		nameA, nameB := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if descending {
			return nameA > nameB
		}
		return nameA < nameB
	}
}

// DisplayEntries returns the listing with the display filter and the hidden
// toggle applied. The sentinel is always kept visible.
func (p *Pane) DisplayEntries() []fs.Entry {
	if p.Filter == "" && !p.HideHidden {
		return p.Entries
	}
	needle := strings.ToLower(p.Filter)
	out := make([]fs.Entry, 0, len(p.Entries))
	for _, e := range p.Entries {
		if e.IsParent() {
			out = append(out, e)
			continue
		}
		if p.HideHidden && e.IsHidden() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(e.Name), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}
