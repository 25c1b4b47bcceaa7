package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

const compliantPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Example Store</title>
</head>
<body>
  <header>
    <nav><a href="/products">Products</a></nav>
  </header>
  <main>
    <h1>Welcome</h1>
    <h2>Featured</h2>
    <img src="hero.png" alt="Seasonal sale banner">
    <form action="/search">
      <label for="q">Search</label>
      <input id="q" type="search">
      <button type="submit">Go</button>
    </form>
  </main>
  <footer><p>&copy; 2026</p></footer>
</body>
</html>`

// A fully conforming page produces no findings from the default rule set.
func TestAuditCompliantDocument(t *testing.T) {
	engine := lint.NewEngine(lint.DefaultRegistry)

	result, err := engine.AuditFile(context.Background(), "shop.html", []byte(compliantPage), config.NewConfig())
	require.NoError(t, err)

	assert.Empty(t, result.Findings)
	assert.Empty(t, result.RuleErrors)
	assert.False(t, result.HasIssues())
}

const brokenPage = `<html>
<head></head>
<body>
  <h1>Shop</h1>
  <h3>Deals</h3>
  <img src="deal.png">
  <a href="/cart"></a>
  <input type="text">
  <div id="promo"></div>
  <div id="promo"></div>
</body>
</html>`

// A page violating every default rule reports one finding per defect,
// ordered by severity then location.
func TestAuditBrokenDocument(t *testing.T) {
	engine := lint.NewEngine(lint.DefaultRegistry)

	result, err := engine.AuditFile(context.Background(), "broken.html", []byte(brokenPage), config.NewConfig())
	require.NoError(t, err)

	var ruleIDs []string
	for _, f := range result.Findings {
		ruleIDs = append(ruleIDs, f.RuleID)
	}

	assert.ElementsMatch(t, []string{
		"UA001", // missing-lang
		"UA002", // missing-title
		"UA003", // missing-viewport
		"UA004", // missing-main
		"UA005", // missing-label
		"UA006", // empty-control
		"UA007", // missing-alt
		"UA008", // duplicate-id
		"UA009", // heading-skip
	}, ruleIDs)

	assert.True(t, result.HasIssues())
	assert.Positive(t, result.ErrorCount())

	// Errors come before warnings; within a severity, document order.
	for i := 1; i < len(result.Findings); i++ {
		prev, cur := result.Findings[i-1], result.Findings[i]
		require.LessOrEqual(t, prev.Severity.Rank(), cur.Severity.Rank())
		if prev.Severity == cur.Severity {
			require.LessOrEqual(t, prev.Line, cur.Line)
		}
	}
}

// Opt-in rules stay silent unless enabled, then surface their findings.
func TestAuditOptInRules(t *testing.T) {
	page := `<html lang="en">
<head>
  <meta name="viewport" content="width=device-width">
  <title>Ok</title>
</head>
<body>
  <main>
    <h2>No top heading</h2>
    <a onclick="go()">Click</a>
  </main>
</body>
</html>`

	engine := lint.NewEngine(lint.DefaultRegistry)

	cfg := config.NewConfig()
	result, err := engine.AuditFile(context.Background(), "optin.html", []byte(page), cfg)
	require.NoError(t, err)
	assert.Empty(t, result.Findings, "opt-in rules must not fire by default")

	cfg.EnableRules = []string{"missing-h1", "UA012"}
	result, err = engine.AuditFile(context.Background(), "optin.html", []byte(page), cfg)
	require.NoError(t, err)

	var ruleIDs []string
	for _, f := range result.Findings {
		ruleIDs = append(ruleIDs, f.RuleID)
	}
	assert.ElementsMatch(t, []string{"UA010", "UA012"}, ruleIDs)
}

// Severity overrides from configuration are stamped onto findings.
func TestAuditSeverityOverride(t *testing.T) {
	page := `<html lang="en"><head><meta name="viewport" content="w"><title>T</title></head><body><main><img src="x.png"></main></body></html>`

	engine := lint.NewEngine(lint.DefaultRegistry)

	sev := "warning"
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"missing-alt": {Severity: &sev},
	}

	result, err := engine.AuditFile(context.Background(), "img.html", []byte(page), cfg)
	require.NoError(t, err)

	if assert.Len(t, result.Findings, 1) {
		assert.Equal(t, "UA007", result.Findings[0].RuleID)
		assert.Equal(t, config.SeverityWarning, result.Findings[0].Severity)
	}
	assert.Zero(t, result.ErrorCount())
}
