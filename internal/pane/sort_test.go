package pane

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kk-code-lab/dpane/internal/fs"
)

func sortFixture() *Pane {
	now := time.Now()
	return &Pane{
		CurrentPath: string(filepath.Separator) + "x",
		Entries: []fs.Entry{
			fs.ParentEntry(),
			{Name: "zoo", IsDir: true, Modified: now.Add(-3 * time.Hour)},
			{Name: "Apps", IsDir: true, Modified: now.Add(-1 * time.Hour)},
			{Name: "big.bin", Size: 9000, Modified: now.Add(-4 * time.Hour)},
			{Name: "Small.txt", Size: 10, Modified: now},
		},
	}
}

func TestToggleSort_NameKeepsDirectoriesFirstBothWays(t *testing.T) {
	p := sortFixture()

	// Name is already the active key, so the first toggle flips direction.
	p.ToggleSort(SortByName)
	if p.SortDirection != Descending {
		t.Fatalf("First toggle should flip to Descending")
	}

	got := names(p.Entries)
	want := []string{"..", "zoo", "Apps", "Small.txt", "big.bin"}
	if !equalStrings(got, want) {
		t.Errorf("Descending name order = %v, want %v", got, want)
	}

	// Second toggle returns to ascending.
	p.ToggleSort(SortByName)
	if p.SortDirection != Ascending {
		t.Fatalf("Second toggle should return to Ascending")
	}
	got = names(p.Entries)
	want = []string{"..", "Apps", "zoo", "big.bin", "Small.txt"}
	if !equalStrings(got, want) {
		t.Errorf("Ascending name order = %v, want %v", got, want)
	}
}

func TestToggleSort_SwitchingKeyResetsDirection(t *testing.T) {
	p := sortFixture()
	p.ToggleSort(SortByName)
	if p.SortDirection != Descending {
		t.Fatalf("Setup: expected Descending")
	}

	p.ToggleSort(SortBySize)
	if p.SortKey != SortBySize || p.SortDirection != Ascending {
		t.Errorf("Switching key should reset to Ascending, got key=%v dir=%v", p.SortKey, p.SortDirection)
	}
}

func TestToggleSort_SizeIgnoresKind(t *testing.T) {
	p := sortFixture()
	p.ToggleSort(SortBySize)

	got := names(p.Entries)
	// Directories have size 0 and sort among the smallest; no dirs-first rule.
	want := []string{"..", "zoo", "Apps", "Small.txt", "big.bin"}
	if !equalStrings(got, want) {
		t.Errorf("Size ascending = %v, want %v", got, want)
	}

	p.ToggleSort(SortBySize)
	got = names(p.Entries)
	want = []string{"..", "big.bin", "Small.txt", "zoo", "Apps"}
	if !equalStrings(got, want) {
		t.Errorf("Size descending = %v, want %v", got, want)
	}
}

func TestToggleSort_DateOrdersTemporally(t *testing.T) {
	p := sortFixture()
	p.ToggleSort(SortByDate)

	got := names(p.Entries)
	want := []string{"..", "big.bin", "zoo", "Apps", "Small.txt"}
	if !equalStrings(got, want) {
		t.Errorf("Date ascending = %v, want %v", got, want)
	}
}

func TestToggleSort_SentinelPinnedAtZero(t *testing.T) {
	p := sortFixture()
	for _, key := range []SortKey{SortByName, SortBySize, SortByDate} {
		p.ToggleSort(key)
		if !p.Entries[0].IsParent() {
			t.Errorf("Sentinel displaced after sorting by %v", key)
		}
		p.ToggleSort(key)
		if !p.Entries[0].IsParent() {
			t.Errorf("Sentinel displaced after reverse sorting by %v", key)
		}
	}
}

func TestExtendSelection_ThreeStepsFromTop(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	p, err := New(tmpDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// Sentinel + three files.
	if len(p.Entries) != 4 {
		t.Fatalf("Expected 4 entries, got %v", names(p.Entries))
	}

	p.Cursor = 0
	p.ExtendSelection(1)
	p.ExtendSelection(1)
	p.ExtendSelection(1)

	lo, hi := p.Selected.Bounds()
	if lo != 0 || hi != 3 {
		t.Errorf("Selection = [%d,%d], want [0,3]", lo, hi)
	}
}
