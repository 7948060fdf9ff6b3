package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nblint/pkg/notebook"
)

// stubRule is a minimal rule for registry and engine tests.
type stubRule struct {
	BaseRule
	findings []Finding
}

func newStubRule(id, name string, findings ...Finding) *stubRule {
	return &stubRule{
		BaseRule: NewBaseRule(id, name, "stub rule for tests"),
		findings: findings,
	}
}

func (r *stubRule) Check(_ *notebook.Notebook) Result {
	return r.Fail(r.findings...)
}

func newTestRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(newStubRule("NB001", "filename-not-placeholder"))
	registry.Register(newStubRule("NB002", "sequential-execution"))
	registry.Register(newStubRule("NB003", "no-empty-cells"))
	registry.Register(newStubRule("NB004", "has-title-cell"))
	return registry
}

func TestRegistryResolve(t *testing.T) {
	registry := newTestRegistry()

	byID, err := registry.Resolve("NB003")
	require.NoError(t, err)
	assert.Equal(t, "no-empty-cells", byID.Name())

	byName, err := registry.Resolve("sequential-execution")
	require.NoError(t, err)
	assert.Equal(t, "NB002", byName.ID())
}

func TestRegistryResolveUnknown(t *testing.T) {
	registry := newTestRegistry()

	rule, err := registry.Resolve("no-empty-cell")
	assert.Nil(t, rule)

	var unknownErr *UnknownRuleError
	require.ErrorAs(t, err, &unknownErr)
	// The attempted name is structured data, not embedded in message text.
	assert.Equal(t, "no-empty-cell", unknownErr.Name)
}

func TestRegistryOrderIsRegistrationOrder(t *testing.T) {
	registry := newTestRegistry()

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"NB001", "NB002", "NB003", "NB004"}, ids)
}

func TestRegistryReRegisterKeepsOrder(t *testing.T) {
	registry := newTestRegistry()
	registry.Register(newStubRule("NB002", "sequential-execution"))

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"NB001", "NB002", "NB003", "NB004"}, ids)
}

func TestRegistryClosest(t *testing.T) {
	registry := newTestRegistry()

	tests := []struct {
		name   string
		key    string
		wantID string
	}{
		{name: "one edit from name", key: "no-empty-cell", wantID: "NB003"},
		{name: "transposed name", key: "sequental-execution", wantID: "NB002"},
		{name: "close to id", key: "NB04", wantID: "NB004"},
		{name: "exact name", key: "has-title-cell", wantID: "NB004"},
		{name: "nothing close ties break by order", key: "zzzzzzzzzzzzzzzzzzzzzzzz", wantID: "NB001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := registry.Closest(tt.key)
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantID, rule.ID())
		})
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		s1       string
		s2       string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"no-empty-cells", "no-empty-cell", 1},
		{"sequential", "sequental", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, editDistance(tt.s1, tt.s2), "editDistance(%q, %q)", tt.s1, tt.s2)
	}
}
