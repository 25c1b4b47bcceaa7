package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

func testRule(id, name string) Rule {
	return newStubRule(id, name, config.SeverityWarning,
		func(ctx *RuleContext) ([]Finding, error) { return nil, nil })
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))
	registry.Register(testRule("UA007", "missing-alt"))

	byID, ok := registry.Get("UA001")
	require.True(t, ok)
	assert.Equal(t, "missing-lang", byID.Name())

	byName, ok := registry.Get("missing-alt")
	require.True(t, ok)
	assert.Equal(t, "UA007", byName.ID())

	_, ok = registry.Get("UA999")
	assert.False(t, ok)
}

func TestRegistryGetByID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))

	_, ok := registry.GetByID("UA001")
	assert.True(t, ok)

	// Name lookup is not supported by GetByID.
	_, ok = registry.GetByID("missing-lang")
	assert.False(t, ok)
}

func TestRegistryReplaceOnSameID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "old-name"))
	registry.Register(testRule("UA001", "new-name"))

	rule, ok := registry.Get("UA001")
	require.True(t, ok)
	assert.Equal(t, "new-name", rule.Name())
}

func TestRegistryRulesSortedByID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA009", "heading-skip"))
	registry.Register(testRule("UA001", "missing-lang"))
	registry.Register(testRule("UA005", "missing-label"))

	var ids []string
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}
	assert.Equal(t, []string{"UA001", "UA005", "UA009"}, ids)
	assert.Equal(t, []string{"UA001", "UA005", "UA009"}, registry.IDs())
}

func TestDefaultRegistryExists(t *testing.T) {
	require.NotNil(t, DefaultRegistry)
}
