// Package rules contains the built-in nblint rules.
//
// Each rule is an independent, stateless check: a pure function of the
// notebook it inspects. Rules are registered with the default registry
// via init() in register.go; importing this package for side effects is
// enough to make the full rule set available.
package rules
