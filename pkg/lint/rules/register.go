package rules

import "github.com/yaklabco/gohtmlint/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Document structure rules
	registry.Register(NewMissingLangRule())     // UA001
	registry.Register(NewMissingTitleRule())    // UA002
	registry.Register(NewMissingViewportRule()) // UA003
	registry.Register(NewMissingMainRule())     // UA004

	// Form rules
	registry.Register(NewMissingLabelRule())       // UA005
	registry.Register(NewButtonTypeRule())         // UA014
	registry.Register(NewPlaceholderNoLabelRule()) // UA015

	// Interactive control rules
	registry.Register(NewEmptyControlRule()) // UA006
	registry.Register(NewAnchorNoHrefRule()) // UA012
	registry.Register(NewSkipLinkRule())     // UA013

	// Image rules
	registry.Register(NewMissingAltRule())    // UA007
	registry.Register(NewDecorativeAltRule()) // UA016

	// Identifier rules
	registry.Register(NewDuplicateIDRule()) // UA008

	// Heading rules
	registry.Register(NewHeadingSkipRule()) // UA009
	registry.Register(NewMissingH1Rule())   // UA010
	registry.Register(NewMultipleH1Rule())  // UA011
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}
