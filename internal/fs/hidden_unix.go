//go:build !windows

package fs

// IsHidden reports whether name is hidden by the dot-prefix convention.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing is a no-op outside Windows; hidden entries are a
// display concern, not a listing one.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
