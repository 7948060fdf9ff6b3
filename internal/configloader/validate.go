package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/nblint/pkg/lint"
)

// UnknownRule pairs an unresolvable configured rule name with the
// closest registered suggestion.
type UnknownRule struct {
	// Name is the configured name that failed to resolve.
	Name string

	// Suggestion is the name of the closest registered rule.
	Suggestion string
}

// DisableListError is the fatal configuration error produced when any
// configured disable entry does not match a registered rule. The run
// must not analyze any document once this error is raised.
type DisableListError struct {
	// Unknown lists every unresolvable entry, in configuration order.
	Unknown []UnknownRule
}

// Error implements error, one line per unknown name.
func (e *DisableListError) Error() string {
	var b strings.Builder
	for i, u := range e.Unknown {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "unknown rule %q, did you mean %q?", u.Name, u.Suggestion)
	}
	return b.String()
}

// ResolveDisabled resolves every configured disable entry through the
// registry, returning the disabled set keyed by canonical rule ID.
//
// Any entry that fails to resolve makes the whole list invalid: the
// returned *DisableListError carries each unknown name with its closest
// suggestion, and the caller must abort before analyzing anything.
func ResolveDisabled(registry *lint.Registry, names []string) (map[string]bool, error) {
	disabled := make(map[string]bool, len(names))
	var unknown []UnknownRule

	for _, name := range names {
		rule, err := registry.Resolve(name)
		if err != nil {
			unknown = append(unknown, UnknownRule{
				Name:       name,
				Suggestion: registry.Closest(name).Name(),
			})
			continue
		}
		disabled[rule.ID()] = true
	}

	if len(unknown) > 0 {
		return nil, &DisableListError{Unknown: unknown}
	}
	return disabled, nil
}
