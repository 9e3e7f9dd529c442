package patch

import "strings"

const (
	insertStmt        = "INSERT INTO node_instances (user_id,"
	insertStmtPatched = "INSERT INTO node_instances (tenant_id, user_id,"
)

// InsertPatcher prepends tenant_id to node_instances insert column lists.
//
// The VALUES tuple is left as it is, so a patched statement has one more
// column than it has values until someone fixes the placeholders by hand.
type InsertPatcher struct{}

func (InsertPatcher) Name() string { return "insert-statement" }

func (p InsertPatcher) Apply(src string) Result {
	n := strings.Count(src, insertStmt)
	if n == 0 {
		return unchanged(p.Name(), src)
	}

	li := buildLineIndex(src)
	lines := make([]int, 0, n)
	for off := 0; ; {
		i := strings.Index(src[off:], insertStmt)
		if i < 0 {
			break
		}
		lines = append(lines, li.lineOf(off+i))
		off += i + len(insertStmt)
	}

	return Result{
		Name:    p.Name(),
		Text:    strings.ReplaceAll(src, insertStmt, insertStmtPatched),
		Changed: true,
		Matches: n,
		Lines:   lines,
	}
}
