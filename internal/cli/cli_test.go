package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kk-code-lab/dpane/internal/diff"
)

func TestSearchCommand_PrintsMatches(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "report.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "other.log"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"search", root, "--name", "report"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("search command failed: %v", err)
	}
	if !strings.Contains(out.String(), "report.txt") {
		t.Errorf("Output missing match: %q", out.String())
	}
	if strings.Contains(out.String(), "other.log") {
		t.Errorf("Output contains non-match: %q", out.String())
	}
}

func TestSearchCommand_RejectsBadType(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"search", t.TempDir(), "--type", "socket"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("Unknown --type should fail")
	}
}

func TestDiffCommand_ReportsCounts(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	if err := os.WriteFile(left, []byte("a\nb\n"), 0644); err != nil {
		t.Fatalf("Failed to write left: %v", err)
	}
	if err := os.WriteFile(right, []byte("a\nc\n"), 0644); err != nil {
		t.Fatalf("Failed to write right: %v", err)
	}

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"diff", left, right})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("diff command failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 equal, 0 added, 0 removed, 1 modified") {
		t.Errorf("Output missing counts: %q", out.String())
	}
}

func TestPrintDiff_IdenticalMessage(t *testing.T) {
	var out bytes.Buffer
	printDiff(&out, &diff.Result{LeftPath: "a", RightPath: "b", Identical: true})
	if !strings.Contains(out.String(), "identical") {
		t.Errorf("Identical result should say so, got %q", out.String())
	}
}

func TestParseTimeFlag(t *testing.T) {
	if got, err := parseTimeFlag(""); err != nil || !got.IsZero() {
		t.Errorf("Empty flag should parse to zero time, got %v, %v", got, err)
	}

	got, err := parseTimeFlag("2026-08-01")
	if err != nil {
		t.Fatalf("Date parse failed: %v", err)
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Parsed %v, want %v", got, want)
	}

	if _, err := parseTimeFlag("not-a-date"); err == nil {
		t.Errorf("Garbage time should fail")
	}
}
