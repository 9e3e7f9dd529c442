package patch

import (
	"regexp"
	"strings"
)

const tenantSet = `c.Set("tenant_id", tenantID)`

// claimsThenNext matches a claims assignment on a gin context that is
// directly followed by c.Next(). Group 1 is the claims line, group 2 the
// whitespace before c.Next().
var claimsThenNext = regexp.MustCompile(`(c\.Set\("claims",[^\n]*)\n(\s*)c\.Next\(\)`)

// ContextInjector sets tenant_id on every fake auth middleware that sets
// claims and then calls c.Next().
type ContextInjector struct{}

func (ContextInjector) Name() string { return "tenant-context" }

func (ci ContextInjector) Apply(src string) Result {
	locs := claimsThenNext.FindAllStringSubmatchIndex(src, -1)
	if len(locs) == 0 {
		return unchanged(ci.Name(), src)
	}

	var (
		b     strings.Builder
		li    = buildLineIndex(src)
		lines []int
		last  int
	)
	for _, loc := range locs {
		claims := src[loc[2]:loc[3]]
		if strings.Contains(claims, "tenant") {
			continue
		}
		ws := src[loc[4]:loc[5]]

		b.WriteString(src[last:loc[0]])
		b.WriteString(claims)
		b.WriteString("\n")
		b.WriteString(lastLineIndent(ws))
		b.WriteString(tenantSet)
		b.WriteString("\n")
		b.WriteString(ws)
		b.WriteString("c.Next()")
		last = loc[1]
		lines = append(lines, li.lineOf(loc[0]))
	}
	if len(lines) == 0 {
		return unchanged(ci.Name(), src)
	}
	b.WriteString(src[last:])

	return Result{
		Name:    ci.Name(),
		Text:    b.String(),
		Changed: true,
		Matches: len(lines),
		Lines:   lines,
	}
}
