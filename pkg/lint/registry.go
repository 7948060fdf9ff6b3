package lint

import (
	"fmt"
	"sync"
)

// UnknownRuleError indicates that a configured rule name does not match
// any registered rule. The attempted name is carried as structured data
// so callers can build a suggestion without parsing message text.
type UnknownRuleError struct {
	// Name is the key that failed to resolve.
	Name string
}

// Error implements error.
func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Name)
}

// Registry is the fixed, ordered catalogue of lint rules. Registration
// happens once at startup; afterwards the registry is immutable and safe
// for concurrent lookup.
type Registry struct {
	mu      sync.RWMutex
	ordered []Rule
	byID    map[string]Rule
	byName  map[string]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry. Registration order is the
// registry's canonical order, used for default full-run ordering and for
// deterministic tie-breaking in Closest.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rule.ID()]; !exists {
		r.ordered = append(r.ordered, rule)
	}
	r.byID[rule.ID()] = rule
	r.byName[rule.Name()] = rule
}

// Resolve returns the rule identified by key, trying ID first and then
// name. A miss returns an *UnknownRuleError carrying the attempted key.
func (r *Registry) Resolve(key string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byID[key]; ok {
		return rule, nil
	}
	if rule, ok := r.byName[key]; ok {
		return rule, nil
	}
	return nil, &UnknownRuleError{Name: key}
}

// Rules returns all registered rules in registry order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// Closest returns the registered rule whose ID or name is nearest to key
// by edit distance. Ties are broken by registry order, names then IDs
// considered per rule. It is used only to produce "did you mean"
// diagnostics, never to substitute a rule into the active set.
//
// Closest returns nil only if the registry is empty, which cannot happen
// for the built-in set.
func (r *Registry) Closest(key string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best Rule
	bestDist := -1

	for _, rule := range r.ordered {
		for _, candidate := range []string{rule.Name(), rule.ID()} {
			dist := editDistance(key, candidate)
			if bestDist < 0 || dist < bestDist {
				best = rule
				bestDist = dist
			}
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)

	for j := 0; j <= len(s2); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
