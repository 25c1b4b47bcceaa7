package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// applyRuleTo parses input and runs a single rule against it.
func applyRuleTo(t *testing.T, rule lint.Rule, input string) []lint.Finding {
	t.Helper()

	snapshot := htmldoc.Parse("test.html", []byte(input))
	cfg := config.NewConfig()
	ruleCtx := lint.NewRuleContext(context.Background(), snapshot, cfg, nil)

	findings, err := rule.Apply(ruleCtx)
	require.NoError(t, err)

	return findings
}
