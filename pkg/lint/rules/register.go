package rules

import "github.com/yaklabco/nblint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Registration order is the registry's canonical run order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewFilenameNotPlaceholderRule()) // NB001
	registry.Register(NewSequentialExecutionRule())    // NB002
	registry.Register(NewNoEmptyCellsRule())           // NB003
	registry.Register(NewHasTitleCellRule())           // NB004
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
