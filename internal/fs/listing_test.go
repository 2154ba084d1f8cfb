package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestList_SentinelAndOrdering(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dpane-listing-")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	// Mixed case names so the case-insensitive ordering is observable.
	if err := os.Mkdir(filepath.Join(tmpDir, "Zeta"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "alpha"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "Beta.txt"), []byte("b"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "aaa.txt"), []byte("a"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	entries, err := List(tmpDir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"..", "alpha", "Zeta", "aaa.txt", "Beta.txt"}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}

	if !entries[0].IsParent() || !entries[0].IsDir || entries[0].Size != 0 {
		t.Errorf("Sentinel entry malformed: %+v", entries[0])
	}
	if !entries[1].IsDir || !entries[2].IsDir {
		t.Errorf("Directories should precede files")
	}
	if entries[3].IsDir || entries[4].IsDir {
		t.Errorf("Files should follow directories")
	}
}

func TestList_EntryMetadata(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "dpane-listing-meta-")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	content := []byte("hello world")
	path := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	entries, err := List(tmpDir)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected sentinel + 1 entry, got %d", len(entries))
	}

	e := entries[1]
	if e.FullPath != path {
		t.Errorf("FullPath = %q, want %q", e.FullPath, path)
	}
	if e.Size != int64(len(content)) {
		t.Errorf("Size = %d, want %d", e.Size, len(content))
	}
	if e.Modified.IsZero() {
		t.Errorf("Modified should be set")
	}
	if e.VCSStatus != "" {
		t.Errorf("VCSStatus should be empty after a plain listing, got %q", e.VCSStatus)
	}
}

func TestList_MissingDirectoryFails(t *testing.T) {
	if _, err := List(filepath.Join(os.TempDir(), "dpane-does-not-exist-xyz")); err == nil {
		t.Fatalf("List of missing directory should fail")
	}
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		ParentEntry(),
		{Name: "dir", IsDir: true},
		{Name: "a.txt", Size: 100},
		{Name: "b.txt", Size: 200},
	}
	stats := Summarize(entries)
	if stats.Folders != 1 || stats.Files != 2 || stats.TotalSize != 300 {
		t.Errorf("Summarize = %+v, want 1 folder, 2 files, 300 bytes", stats)
	}
	if stats.TotalItems() != 3 {
		t.Errorf("TotalItems = %d, want 3", stats.TotalItems())
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.size); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("Zero time should render empty, got %q", got)
	}
	when := time.Date(2026, 8, 23, 9, 30, 0, 0, time.Local)
	if got := FormatDate(when); got != "2026-08-23 09:30" {
		t.Errorf("FormatDate = %q", got)
	}
}
