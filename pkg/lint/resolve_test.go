package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

func optInRule(id, name string) Rule {
	return &stubRule{
		BaseRule: NewBaseRule(id, name, "opt-in stub", nil, false, config.SeverityInfo),
		apply:    func(ctx *RuleContext) ([]Finding, error) { return nil, nil },
	}
}

func TestResolveRulesDefaults(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))
	registry.Register(optInRule("UA010", "missing-h1"))

	resolved := ResolveRules(registry, config.NewConfig())

	require.Len(t, resolved, 1)
	assert.Equal(t, "UA001", resolved[0].Rule.ID())
	assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
}

func TestResolveRulesNilConfig(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))

	resolved := ResolveRules(registry, nil)
	require.Len(t, resolved, 1)
}

func TestResolveRulesEnableByNameOrID(t *testing.T) {
	registry := NewRegistry()
	registry.Register(optInRule("UA010", "missing-h1"))
	registry.Register(optInRule("UA011", "multiple-h1"))

	cfg := config.NewConfig()
	cfg.EnableRules = []string{"missing-h1", "UA011"}

	resolved := ResolveRules(registry, cfg)
	require.Len(t, resolved, 2)
}

func TestResolveRulesDisable(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))
	registry.Register(testRule("UA007", "missing-alt"))

	cfg := config.NewConfig()
	cfg.DisableRules = []string{"UA001"}

	resolved := ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, "UA007", resolved[0].Rule.ID())
}

func TestResolveRulesConfigFileOverrides(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))
	registry.Register(optInRule("UA010", "missing-h1"))

	enabled := true
	disabled := false
	sev := "error"

	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		// Keyed by name: enable an opt-in rule and raise its severity.
		"missing-h1": {Enabled: &enabled, Severity: &sev},
		// Keyed by ID: switch a default rule off.
		"UA001": {Enabled: &disabled},
	}

	resolved := ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, "UA010", resolved[0].Rule.ID())
	assert.Equal(t, config.SeverityError, resolved[0].Severity)
}

func TestResolveRulesInvalidSeverityIgnored(t *testing.T) {
	registry := NewRegistry()
	registry.Register(testRule("UA001", "missing-lang"))

	sev := "catastrophic"
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"UA001": {Severity: &sev},
	}

	resolved := ResolveRules(registry, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
}
