package fs

import "time"

// ParentDirName is the display name of the synthetic parent entry.
const ParentDirName = ".."

// Status is an opaque per-entry version-control annotation. It is populated
// by a collaborator (internal/vcs); the zero value means unmodified or not
// under version control.
type Status string

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	Size      int64
	Modified  time.Time
	VCSStatus Status
}

// IsParent reports whether the entry is the synthetic ".." sentinel.
func (e Entry) IsParent() bool {
	return e.Name == ParentDirName
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}
