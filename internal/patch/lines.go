package patch

import "sort"

// lineIndex maps byte offsets in a buffer to line numbers.
type lineIndex []int

// buildLineIndex returns the byte offsets where each line of content begins.
func buildLineIndex(content string) lineIndex {
	offsets := lineIndex{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// lineOf returns the 1-based line containing offset.
func (li lineIndex) lineOf(offset int) int {
	i := sort.Search(len(li), func(i int) bool {
		return li[i] > offset
	})
	if i == 0 {
		return 1
	}
	return i
}

// lastLineIndent returns the trailing run of spaces and tabs of ws that
// follows its final newline.
func lastLineIndent(ws string) string {
	for i := len(ws) - 1; i >= 0; i-- {
		if ws[i] == '\n' || ws[i] == '\r' {
			return ws[i+1:]
		}
	}
	return ws
}
