// Package patch holds the text passes that add the tenant identifier to
// generated backend test files.
//
// Each pass is a pure function over the whole file text. Passes never fail:
// when the idiom they look for is absent they hand the text back unchanged
// and say so in their Result.
package patch

// TenantID is the tenant identifier injected into test fixtures.
const TenantID = "00000000-0000-0000-0000-000000000001"

// Result describes what a single pass did to the buffer.
type Result struct {
	Name    string
	Text    string
	Changed bool
	Matches int   // number of sites rewritten
	Lines   []int // 1-based lines in the input where edits were made
}

// Pass is a single text transform.
type Pass interface {
	Name() string
	Apply(src string) Result
}

// DefaultPasses returns the passes in the order they must run.
func DefaultPasses() []Pass {
	return []Pass{
		VariableInjector{},
		InsertPatcher{},
		ContextInjector{},
	}
}

// Run applies passes in order to src and returns the final text together
// with one Result per pass.
func Run(src string, passes ...Pass) (string, []Result) {
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	results := make([]Result, 0, len(passes))
	text := src
	for _, p := range passes {
		res := p.Apply(text)
		text = res.Text
		results = append(results, res)
	}
	return text, results
}

// AnyChanged reports whether at least one pass modified the buffer.
func AnyChanged(results []Result) bool {
	for _, r := range results {
		if r.Changed {
			return true
		}
	}
	return false
}

func unchanged(name, src string) Result {
	return Result{Name: name, Text: src}
}
