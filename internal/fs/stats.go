package fs

import (
	"fmt"
	"time"
)

// Stats summarizes one directory listing for status-line display.
type Stats struct {
	Folders   int
	Files     int
	TotalSize int64
}

// TotalItems returns the number of real entries (sentinel excluded).
func (s Stats) TotalItems() int {
	return s.Folders + s.Files
}

// Summarize counts folders, files, and file bytes in entries, skipping the
// ".." sentinel.
func Summarize(entries []Entry) Stats {
	var stats Stats
	for _, e := range entries {
		if e.IsParent() {
			continue
		}
		if e.IsDir {
			stats.Folders++
		} else {
			stats.Files++
			stats.TotalSize += e.Size
		}
	}
	return stats
}

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

// FormatSize renders a byte count for humans.
func FormatSize(size int64) string {
	switch {
	case size >= gb:
		return fmt.Sprintf("%.2f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// FormatDate renders a modification time for display. The zero time renders
// empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
