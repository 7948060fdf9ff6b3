// Package lint provides the rule contract, result types, registry, and
// check engine for nblint.
package lint

import "github.com/yaklabco/nblint/pkg/notebook"

// DocumentLevel is the position used for findings that apply to the
// document as a whole rather than an individual cell. Position 0 is also
// a valid cell position, so callers must use the issuing rule's name to
// disambiguate.
const DocumentLevel = 0

// Finding is a single rule violation tied to a cell position.
type Finding struct {
	// Pos is the 0-based position of the offending cell, or
	// DocumentLevel for document-wide findings.
	Pos int

	// Message is the human-readable description of the violation.
	Message string
}

// Result is the outcome of running one rule against one notebook.
// Pass/fail is always derived from Findings; there is no stored flag.
type Result struct {
	// RuleID is the identifier of the rule that produced this result.
	RuleID string

	// RuleName is the human-readable name of the rule.
	RuleName string

	// Findings contains one entry per violation, in document order.
	Findings []Finding
}

// Passed reports whether the rule found no violations.
func (r Result) Passed() bool {
	return len(r.Findings) == 0
}

// Rule defines the interface that all lint rules implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "NB003").
	ID() string

	// Name returns the human-readable name of the rule
	// (e.g., "no-empty-cells"). Either ID or Name identifies the rule
	// in configuration.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Check evaluates the rule against the given notebook.
	//
	// Rules must:
	//   - Be pure functions of the notebook; never mutate it.
	//   - Be total: always return a Result, never panic on a
	//     well-formed document.
	//   - Emit findings in document order.
	Check(nb *notebook.Notebook) Result
}

// BaseRule provides the identity portion of the Rule interface.
// Embed it in rule implementations and implement Check.
type BaseRule struct {
	id   string
	name string
	desc string
}

// NewBaseRule creates a BaseRule with the given identity.
func NewBaseRule(id, name, desc string) BaseRule {
	return BaseRule{id: id, name: name, desc: desc}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string { return r.id }

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string { return r.name }

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string { return r.desc }

// Pass returns a passing Result carrying this rule's identity.
func (r *BaseRule) Pass() Result {
	return Result{RuleID: r.id, RuleName: r.name}
}

// Fail returns a Result carrying this rule's identity and the given
// findings.
func (r *BaseRule) Fail(findings ...Finding) Result {
	return Result{RuleID: r.id, RuleName: r.name, Findings: findings}
}
