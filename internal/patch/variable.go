package patch

import (
	"regexp"
	"strings"
)

// tenantDecl is the declaration the setup helpers expect to find.
const tenantDecl = `tenantID := "` + TenantID + `"`

// setupIdiom matches
//
//	db, cleanup := testutils.SetupTestDB()
//	defer cleanup()
//
// capturing the indentation of the defer line. Both cleanup and teardown are
// used as the release function's name.
var setupIdiom = regexp.MustCompile(`\w+, (?:cleanup|teardown) := testutils\.SetupTestDB\(\)\n([ \t]*)defer (?:cleanup|teardown)\(\)`)

// VariableInjector declares tenantID right after the first test database
// setup in the file.
type VariableInjector struct{}

func (VariableInjector) Name() string { return "tenant-variable" }

func (v VariableInjector) Apply(src string) Result {
	if strings.Contains(src, tenantDecl) {
		return unchanged(v.Name(), src)
	}
	loc := setupIdiom.FindStringSubmatchIndex(src)
	if loc == nil {
		return unchanged(v.Name(), src)
	}

	end := loc[1]
	indent := src[loc[2]:loc[3]]
	out := src[:end] + "\n" + indent + tenantDecl + src[end:]

	return Result{
		Name:    v.Name(),
		Text:    out,
		Changed: true,
		Matches: 1,
		Lines:   []int{buildLineIndex(src).lineOf(end)},
	}
}
