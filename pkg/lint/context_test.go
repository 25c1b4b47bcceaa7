package lint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/htmldoc"
)

func TestRuleContextIndexCached(t *testing.T) {
	snapshot := htmldoc.Parse("test.html", []byte(`<body><div id="a"></div></body>`))
	rc := NewRuleContext(context.Background(), snapshot, config.NewConfig(), nil)

	idx := rc.Index()
	require.NotNil(t, idx)
	assert.True(t, idx.HasID("a"))
	assert.Same(t, idx, rc.Index())
}

func TestRuleContextCancelled(t *testing.T) {
	snapshot := htmldoc.Parse("test.html", []byte(`<body></body>`))

	ctx, cancel := context.WithCancel(context.Background())
	rc := NewRuleContext(ctx, snapshot, config.NewConfig(), nil)

	assert.False(t, rc.Cancelled())
	cancel()
	assert.True(t, rc.Cancelled())
}

func TestRuleContextOptions(t *testing.T) {
	ruleCfg := &config.RuleConfig{
		Options: map[string]any{
			"strict":  true,
			"pattern": "skip",
			"tags":    []any{"nav", "aside"},
		},
	}
	rc := NewRuleContext(context.Background(), nil, config.NewConfig(), ruleCfg)

	assert.True(t, rc.OptionBool("strict", false))
	assert.Equal(t, "skip", rc.OptionString("pattern", "none"))
	assert.Equal(t, []string{"nav", "aside"}, rc.OptionStringSlice("tags", nil))

	// Missing keys fall back to defaults.
	assert.False(t, rc.OptionBool("absent", false))
	assert.Equal(t, "d", rc.OptionString("absent", "d"))

	// Nil rule config falls back to defaults.
	bare := NewRuleContext(context.Background(), nil, config.NewConfig(), nil)
	assert.Equal(t, 42, bare.Option("anything", 42))
}
