package rewrite

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff renders a unified diff of the file's loaded content against patched.
// It returns an empty string when nothing changed.
func (f *File) Diff(patched string) (string, error) {
	if patched == f.Content {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(f.Content),
		B:        difflib.SplitLines(patched),
		FromFile: "a/" + f.Path,
		ToFile:   "b/" + f.Path,
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", fmt.Errorf("failed to diff %s: %w", f.Path, err)
	}
	return out, nil
}
