// Package render draws the dual-pane view onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/dpane/internal/app"
	"github.com/kk-code-lab/dpane/internal/fs"
	"github.com/kk-code-lab/dpane/internal/pane"
	"github.com/kk-code-lab/dpane/internal/textutil"
)

// sizeColumn reserves columns at the right edge of a pane row for the
// size/status block.
const sizeColumn = 12

// Renderer draws the whole screen from the application state.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a renderer using the named theme.
func NewRenderer(screen tcell.Screen, themeName string) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  Theme(themeName),
	}
}

// Render draws both panes, the header, and the status line.
func (r *Renderer) Render(a *app.App) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < 4 || h < 4 {
		r.screen.Show()
		return
	}

	paneWidth := (w - 1) / 2
	listHeight := h - 3 // header, pane header, status line

	a.Left.UpdateScroll(listHeight)
	a.Right.UpdateScroll(listHeight)

	r.drawHeader(a, w)
	r.drawPane(a.Left, 0, paneWidth, listHeight, a.ActiveSide() == app.LeftSide)
	r.drawSeparator(paneWidth, h)
	r.drawPane(a.Right, paneWidth+1, w-paneWidth-1, listHeight, a.ActiveSide() == app.RightSide)
	r.drawStatusLine(a, w, h)

	r.screen.Show()
}

func (r *Renderer) drawHeader(a *app.App, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	title := " dpane  " + textutil.Sanitize(a.ActivePane().CurrentPath)
	r.drawLine(0, 0, w, textutil.Pad(title, w), style)
}

func (r *Renderer) drawSeparator(x, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.InactiveFg)
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(x, y, '│', nil, style)
	}
}

func (r *Renderer) drawPane(p *pane.Pane, x, width, listHeight int, active bool) {
	r.drawPaneHeader(p, x, width, active)

	// The display list can be narrower than Entries when a filter or the
	// hidden toggle is active, so cursor and selection are matched by path.
	cursorPath := ""
	if p.Cursor < len(p.Entries) {
		cursorPath = p.Entries[p.Cursor].FullPath
	}
	selected := make(map[string]bool)
	if p.Selected != nil {
		for _, e := range p.SelectedEntries() {
			selected[e.FullPath] = true
		}
	}

	entries := p.DisplayEntries()
	for row := 0; row < listHeight; row++ {
		idx := p.ScrollOffset + row
		if idx >= len(entries) {
			break
		}
		e := entries[idx]
		r.drawEntryRow(e, x, 2+row, width, active,
			e.FullPath == cursorPath, selected[e.FullPath])
	}
}

func (r *Renderer) drawPaneHeader(p *pane.Pane, x, width int, active bool) {
	style := tcell.StyleDefault.Foreground(r.theme.InactiveFg)
	if active {
		style = tcell.StyleDefault.Foreground(r.theme.HeaderFg).Bold(true)
	}

	text := textutil.Sanitize(p.CurrentPath) + sortIndicator(p)
	if p.Filter != "" {
		text += " /" + textutil.Sanitize(p.Filter)
	}
	r.drawLine(x, 1, width, textutil.Pad(" "+text, width), style)
}

func sortIndicator(p *pane.Pane) string {
	var key string
	switch p.SortKey {
	case pane.SortBySize:
		key = "size"
	case pane.SortByDate:
		key = "date"
	default:
		key = "name"
	}
	arrow := "↑"
	if p.SortDirection == pane.Descending {
		arrow = "↓"
	}
	return "  [" + key + arrow + "]"
}

func (r *Renderer) drawEntryRow(entry fs.Entry, x, y, width int, active, isCursor, isSelected bool) {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch {
	case entry.IsDir:
		style = style.Foreground(r.theme.DirectoryFg)
	case entry.IsHidden():
		style = style.Foreground(r.theme.HiddenFg)
	}
	if !active {
		style = style.Foreground(r.theme.InactiveFg)
	}
	if active && isSelected {
		style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}
	if active && isCursor {
		style = tcell.StyleDefault.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
	}

	name := textutil.Sanitize(entry.Name)
	if entry.IsDir && !entry.IsParent() {
		name += "/"
	}

	meta := ""
	if !entry.IsParent() {
		if entry.IsDir {
			meta = "<dir>"
		} else {
			meta = fs.FormatSize(entry.Size)
		}
		if entry.VCSStatus != "" {
			meta = string(entry.VCSStatus) + " " + meta
		}
	}

	nameWidth := width - sizeColumn - 2
	if nameWidth < 1 {
		nameWidth = width - 1
	}
	// The meta block is ASCII, so byte padding equals column padding.
	line := " " + textutil.Pad(name, nameWidth) + fmt.Sprintf("%*s", sizeColumn, meta) + " "
	r.drawLine(x, y, width, textutil.Pad(line, width), style)
}

func (r *Renderer) drawStatusLine(a *app.App, w, h int) {
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)

	text := a.StatusMsg
	if text == "" {
		p := a.ActivePane()
		stats := fs.Summarize(p.Entries)
		text = fmt.Sprintf("%d items  %d folders  %d files  %s",
			stats.TotalItems(), stats.Folders, stats.Files, fs.FormatSize(stats.TotalSize))
		if p.Cursor < len(p.Entries) && !p.Entries[p.Cursor].IsParent() {
			text += "  │  " + fs.FormatDate(p.Entries[p.Cursor].Modified)
		}
	}
	r.drawLine(0, h-1, w, textutil.Pad(" "+text, w), style)
}

// drawLine writes text at (x, y), clipped to width columns.
func (r *Renderer) drawLine(x, y, width int, text string, style tcell.Style) {
	col := x
	for _, ru := range text {
		rw := textutil.Width(string(ru))
		if col+rw > x+width {
			break
		}
		r.screen.SetContent(col, y, ru, nil, style)
		col += rw
	}
}
