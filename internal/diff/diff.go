// Package diff aligns two files line by line with a greedy bounded-lookahead
// heuristic. It trades minimal edit scripts for predictable output: after a
// mismatch it scans a small window for a resync point and otherwise pairs the
// two lines as a modification.
package diff

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrIsDirectory is returned when a comparison target is not a regular file.
var ErrIsDirectory = errors.New("cannot compare directories")

// lookahead bounds the resync window after a mismatch.
const lookahead = 5

// Kind classifies one aligned line.
type Kind int

const (
	Equal Kind = iota
	Added
	Removed
	Modified
)

// Line pairs one left/right line in the aligned output. A zero line number
// means that side has no corresponding line.
type Line struct {
	Kind      Kind
	LeftNum   int
	RightNum  int
	LeftText  string
	RightText string
}

// Counts tallies aligned lines by kind.
type Counts struct {
	Equal    int
	Added    int
	Removed  int
	Modified int
}

// Result is the aligned comparison of two files.
type Result struct {
	LeftPath  string
	RightPath string
	Identical bool
	Lines     []Line
	Counts    Counts
}

// Compare produces a line-aligned comparison of two regular files.
//
// Equal-length files that are byte-identical short-circuit with Identical set
// and no lines; everything else goes through the line walk.
func Compare(leftPath, rightPath string) (*Result, error) {
	leftInfo, err := os.Stat(leftPath)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", leftPath, err)
	}
	rightInfo, err := os.Stat(rightPath)
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", rightPath, err)
	}
	if leftInfo.IsDir() || rightInfo.IsDir() {
		return nil, ErrIsDirectory
	}

	leftContent, err := os.ReadFile(leftPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", leftPath, err)
	}
	rightContent, err := os.ReadFile(rightPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", rightPath, err)
	}

	if leftInfo.Size() == rightInfo.Size() && bytes.Equal(leftContent, rightContent) {
		return &Result{LeftPath: leftPath, RightPath: rightPath, Identical: true}, nil
	}

	return compareLines(leftPath, rightPath, splitLines(leftContent), splitLines(rightContent)), nil
}

// splitLines breaks content at newlines. A trailing partial line counts as a
// line; a trailing newline does not produce an empty one. CR before LF is
// stripped.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func compareLines(leftPath, rightPath string, left, right []string) *Result {
	var lines []Line
	i, j := 0, 0

	for i < len(left) || j < len(right) {
		switch {
		case i >= len(left):
			lines = append(lines, Line{Kind: Added, RightNum: j + 1, RightText: right[j]})
			j++
		case j >= len(right):
			lines = append(lines, Line{Kind: Removed, LeftNum: i + 1, LeftText: left[i]})
			i++
		case left[i] == right[j]:
			lines = append(lines, Line{
				Kind:      Equal,
				LeftNum:   i + 1,
				RightNum:  j + 1,
				LeftText:  left[i],
				RightText: right[j],
			})
			i++
			j++
		default:
			// Resync scan: at each distance the removed-side probe runs
			// before the added-side probe; the smallest distance wins.
			resynced := false
			for d := 1; d <= lookahead; d++ {
				if i+d < len(left) && left[i+d] == right[j] {
					for k := 0; k < d; k++ {
						lines = append(lines, Line{Kind: Removed, LeftNum: i + 1, LeftText: left[i]})
						i++
					}
					resynced = true
					break
				}
				if j+d < len(right) && left[i] == right[j+d] {
					for k := 0; k < d; k++ {
						lines = append(lines, Line{Kind: Added, RightNum: j + 1, RightText: right[j]})
						j++
					}
					resynced = true
					break
				}
			}
			if !resynced {
				lines = append(lines, Line{
					Kind:      Modified,
					LeftNum:   i + 1,
					RightNum:  j + 1,
					LeftText:  left[i],
					RightText: right[j],
				})
				i++
				j++
			}
		}
	}

	result := &Result{LeftPath: leftPath, RightPath: rightPath, Lines: lines}
	for _, line := range lines {
		switch line.Kind {
		case Equal:
			result.Counts.Equal++
		case Added:
			result.Counts.Added++
		case Removed:
			result.Counts.Removed++
		case Modified:
			result.Counts.Modified++
		}
	}
	result.Identical = result.Counts.Added == 0 &&
		result.Counts.Removed == 0 &&
		result.Counts.Modified == 0
	return result
}
