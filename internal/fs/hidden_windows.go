//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// IsHidden reports whether the entry carries the Windows hidden attribute,
// falling back to the dot-prefix convention when attributes are unreadable.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}

// ShouldHideFromListing reports whether an entry must never appear in
// listings even when hidden files are shown. System reparse points are the
// compatibility junctions that hang ordinary traversal.
func ShouldHideFromListing(fullPath, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}

// fileAttributes resolves attributes for fullPath, retrying with the bare
// name when the full path has gone stale.
func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	attrs, err := syscall.GetFileAttributes(ptr)
	if err == nil {
		return attrs, nil
	}

	if os.IsNotExist(err) && fullPath != "" && fullPath != name {
		if ptrAlt, convErr := syscall.UTF16PtrFromString(name); convErr == nil {
			if attrsAlt, errAlt := syscall.GetFileAttributes(ptrAlt); errAlt == nil {
				return attrsAlt, nil
			}
		}
	}
	return 0, err
}
