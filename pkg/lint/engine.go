package lint

import "github.com/yaklabco/nblint/pkg/notebook"

// Engine runs the enabled subset of registered rules against notebooks.
// It is pure and synchronous: no I/O, no retained state between calls.
type Engine struct {
	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates an Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Analyze runs every enabled rule against the notebook and returns one
// Result per rule, in registry order. Rules whose canonical ID appears
// in disabled are omitted from the output entirely (not marked skipped).
//
// Callers resolve user-supplied rule keys to canonical IDs first; see
// Registry.Resolve.
func (e *Engine) Analyze(nb *notebook.Notebook, disabled map[string]bool) []Result {
	rules := e.Registry.Rules()

	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		if disabled[rule.ID()] {
			continue
		}
		results = append(results, rule.Check(nb))
	}
	return results
}

// AnyFailed reports whether at least one result has findings.
func AnyFailed(results []Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return true
		}
	}
	return false
}
