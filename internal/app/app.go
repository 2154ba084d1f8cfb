// Package app orchestrates the two panes and the file operations between them.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/kk-code-lab/dpane/internal/bookmarks"
	"github.com/kk-code-lab/dpane/internal/config"
	"github.com/kk-code-lab/dpane/internal/fs"
	"github.com/kk-code-lab/dpane/internal/pane"
	"github.com/kk-code-lab/dpane/internal/trash"
	"github.com/kk-code-lab/dpane/internal/vcs"
)

// Side identifies one of the two panes.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

// App is the dual-pane session: two independent panes, one of which is
// active, plus the bookmarks and settings shared between them.
type App struct {
	Left  *pane.Pane
	Right *pane.Pane

	active Side
	cfg    *config.Config
	log    zerolog.Logger

	Marks *bookmarks.Manager

	// StatusMsg is the transient message shown in the status line.
	StatusMsg string
}

// New builds the session from the configuration. Both panes fall back to the
// default start path when their configured directory cannot be listed.
func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	left, err := openPane(cfg.LeftPath, log)
	if err != nil {
		return nil, err
	}
	right, err := openPane(cfg.RightPath, log)
	if err != nil {
		return nil, err
	}

	left.HideHidden = !cfg.ShowHidden
	right.HideHidden = !cfg.ShowHidden
	left.Decorate = vcs.Decorate
	right.Decorate = vcs.Decorate

	marks, err := bookmarks.Load(filepath.Join(config.Dir(), "bookmarks.yaml"))
	if err != nil {
		log.Warn().Err(err).Msg("bookmarks unavailable")
		marks = &bookmarks.Manager{}
	}

	a := &App{
		Left:  left,
		Right: right,
		cfg:   cfg,
		log:   log,
		Marks: marks,
	}
	// Decoration only runs on refresh; apply it to the initial listings.
	if err := a.RefreshBoth(); err != nil {
		return nil, err
	}
	return a, nil
}

func openPane(path string, log zerolog.Logger) (*pane.Pane, error) {
	if path != "" {
		p, err := pane.New(path)
		if err == nil {
			return p, nil
		}
		log.Warn().Err(err).Str("path", path).Msg("configured pane path unusable, falling back")
	}
	return pane.New(pane.StartPath())
}

// ActivePane returns the pane holding the focus.
func (a *App) ActivePane() *pane.Pane {
	if a.active == RightSide {
		return a.Right
	}
	return a.Left
}

// TargetPane returns the pane opposite the focus, the destination of copy
// and move operations.
func (a *App) TargetPane() *pane.Pane {
	if a.active == RightSide {
		return a.Left
	}
	return a.Right
}

// ActiveSide reports which pane holds the focus.
func (a *App) ActiveSide() Side {
	return a.active
}

// SwitchPane moves the focus to the other pane.
func (a *App) SwitchPane() {
	if a.active == LeftSide {
		a.active = RightSide
	} else {
		a.active = LeftSide
	}
}

// ToggleHidden flips hidden-file visibility on both panes.
func (a *App) ToggleHidden() {
	hide := !a.Left.HideHidden
	a.Left.HideHidden = hide
	a.Right.HideHidden = hide
}

// RefreshBoth re-lists both panes. The first failure is returned but the
// other pane is still refreshed.
func (a *App) RefreshBoth() error {
	errLeft := a.Left.Refresh()
	errRight := a.Right.Refresh()
	if errLeft != nil {
		return errLeft
	}
	return errRight
}

// CopySelected copies the active pane's selected entries into the other
// pane's directory, then refreshes it.
func (a *App) CopySelected() error {
	src := a.ActivePane()
	dst := a.TargetPane()

	for _, entry := range src.SelectedEntries() {
		if entry.IsParent() {
			continue
		}
		target := filepath.Join(dst.CurrentPath, entry.Name)
		if err := copyEntry(entry, target); err != nil {
			return err
		}
		a.log.Info().Str("from", entry.FullPath).Str("to", target).Msg("copied")
	}
	return dst.Refresh()
}

// MoveSelected moves the active pane's selected entries into the other
// pane's directory, then refreshes both.
func (a *App) MoveSelected() error {
	src := a.ActivePane()
	dst := a.TargetPane()

	for _, entry := range src.SelectedEntries() {
		if entry.IsParent() {
			continue
		}
		target := filepath.Join(dst.CurrentPath, entry.Name)
		if err := os.Rename(entry.FullPath, target); err != nil {
			// Renames fail across filesystems; fall back to copy+delete.
			if copyErr := copyEntry(entry, target); copyErr != nil {
				return fmt.Errorf("cannot move %s: %w", entry.FullPath, err)
			}
			if rmErr := os.RemoveAll(entry.FullPath); rmErr != nil {
				return rmErr
			}
		}
		a.log.Info().Str("from", entry.FullPath).Str("to", target).Msg("moved")
	}
	src.ClearSelection()
	return a.RefreshBoth()
}

// DeleteSelected moves the active pane's selected entries to the trash,
// deleting permanently when no trash directory exists.
func (a *App) DeleteSelected() error {
	src := a.ActivePane()

	for _, entry := range src.SelectedEntries() {
		if entry.IsParent() {
			continue
		}
		if err := trash.MoveToTrash(entry.FullPath); err != nil {
			a.log.Debug().Err(err).Str("path", entry.FullPath).Msg("trash unavailable, deleting")
			if rmErr := os.RemoveAll(entry.FullPath); rmErr != nil {
				return rmErr
			}
		}
		a.log.Info().Str("path", entry.FullPath).Msg("deleted")
	}
	src.ClearSelection()
	return src.Refresh()
}

// MakeDir creates a directory named name in the active pane and refreshes it.
func (a *App) MakeDir(name string) error {
	src := a.ActivePane()
	if err := os.Mkdir(filepath.Join(src.CurrentPath, name), 0755); err != nil {
		return err
	}
	return src.Refresh()
}

// RenameCurrent renames the entry under the active cursor.
func (a *App) RenameCurrent(newName string) error {
	src := a.ActivePane()
	if src.Cursor >= len(src.Entries) {
		return nil
	}
	entry := src.Entries[src.Cursor]
	if entry.IsParent() {
		return nil
	}
	target := filepath.Join(src.CurrentPath, newName)
	if err := os.Rename(entry.FullPath, target); err != nil {
		return fmt.Errorf("cannot rename %s: %w", entry.FullPath, err)
	}
	return src.Refresh()
}

// SaveConfig persists the current pane paths and settings.
func (a *App) SaveConfig() error {
	a.cfg.LeftPath = a.Left.CurrentPath
	a.cfg.RightPath = a.Right.CurrentPath
	a.cfg.ShowHidden = !a.Left.HideHidden
	return a.cfg.Save()
}

func copyEntry(entry fs.Entry, target string) error {
	if entry.IsDir {
		return copyTree(entry.FullPath, target)
	}
	return copyFile(entry.FullPath, target)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("cannot copy to %s: %w", dst, err)
	}
	return out.Close()
}

func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}

	children, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("cannot read directory %s: %w", src, err)
	}
	for _, child := range children {
		srcPath := filepath.Join(src, child.Name())
		dstPath := filepath.Join(dst, child.Name())
		if child.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}
