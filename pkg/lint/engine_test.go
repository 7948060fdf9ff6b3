package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/nblint/pkg/notebook"
)

func TestEngineAnalyzeRunsAllRulesInOrder(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("NB001", "first"))
	registry.Register(newStubRule("NB002", "second", Finding{Pos: 1, Message: "broken"}))
	registry.Register(newStubRule("NB003", "third"))

	engine := NewEngine(registry)
	results := engine.Analyze(notebook.New("test.ipynb"), nil)

	require.Len(t, results, 3)
	assert.Equal(t, "NB001", results[0].RuleID)
	assert.Equal(t, "NB002", results[1].RuleID)
	assert.Equal(t, "NB003", results[2].RuleID)

	assert.True(t, results[0].Passed())
	assert.False(t, results[1].Passed())
	assert.True(t, results[2].Passed())
}

func TestEngineDisabledRulesAreOmitted(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("NB001", "first", Finding{Pos: 0, Message: "a"}))
	registry.Register(newStubRule("NB002", "second", Finding{Pos: 0, Message: "b"}))
	registry.Register(newStubRule("NB003", "third"))

	engine := NewEngine(registry)
	nb := notebook.New("test.ipynb")

	full := engine.Analyze(nb, nil)
	reduced := engine.Analyze(nb, map[string]bool{"NB002": true})

	// Disabling removes exactly that rule's result; the rest is the
	// set difference of the full run.
	require.Len(t, reduced, 2)
	assert.Equal(t, full[0], reduced[0])
	assert.Equal(t, full[2], reduced[1])
}

func TestEngineDisableAll(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("NB001", "first", Finding{Pos: 0, Message: "a"}))

	engine := NewEngine(registry)
	results := engine.Analyze(notebook.New("test.ipynb"), map[string]bool{"NB001": true})

	assert.Empty(t, results)
	assert.False(t, AnyFailed(results))
}

func TestAnyFailed(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    bool
	}{
		{name: "empty", results: nil, want: false},
		{
			name:    "all passing",
			results: []Result{{RuleID: "NB001"}, {RuleID: "NB002"}},
			want:    false,
		},
		{
			name: "one failing",
			results: []Result{
				{RuleID: "NB001"},
				{RuleID: "NB002", Findings: []Finding{{Pos: 2, Message: "bad"}}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnyFailed(tt.results))
		})
	}
}

// AnyFailed is false exactly when every rule's findings list is empty.
func TestAnyFailedMatchesPerRulePassed(t *testing.T) {
	registry := NewRegistry()
	registry.Register(newStubRule("NB001", "first"))
	registry.Register(newStubRule("NB002", "second"))

	engine := NewEngine(registry)
	results := engine.Analyze(notebook.New("clean.ipynb"), nil)

	allPassed := true
	for _, r := range results {
		if !r.Passed() {
			allPassed = false
		}
	}
	assert.Equal(t, allPassed, !AnyFailed(results))
}

func TestResultPassedDerivesFromFindings(t *testing.T) {
	result := Result{RuleID: "NB001", RuleName: "first"}
	assert.True(t, result.Passed())

	result.Findings = append(result.Findings, Finding{Pos: 0, Message: "x"})
	assert.False(t, result.Passed())
}
