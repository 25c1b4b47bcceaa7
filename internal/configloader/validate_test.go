package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gohtmlint/pkg/config"
)

func strPtr(s string) *string { return &s }

func TestValidateDefaults(t *testing.T) {
	result := Validate(config.NewConfig())

	assert.True(t, result.Valid())
	assert.False(t, result.HasWarnings())
}

func TestValidateNilConfig(t *testing.T) {
	assert.True(t, Validate(nil).Valid())
}

func TestValidateInvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.Config
		wantField string
	}{
		{
			name:      "bad default severity",
			cfg:       &config.Config{SeverityDefault: "fatal"},
			wantField: "severity_default",
		},
		{
			name: "bad rule severity",
			cfg: &config.Config{
				Rules: map[string]config.RuleConfig{
					"UA007": {Severity: strPtr("blocker")},
				},
			},
			wantField: "rules.UA007.severity",
		},
		{
			name:      "bad format",
			cfg:       &config.Config{Format: "sarif"},
			wantField: "format",
		},
		{
			name:      "bad rule format",
			cfg:       &config.Config{RuleFormat: "verbose"},
			wantField: "rule_format",
		},
		{
			name:      "negative jobs",
			cfg:       &config.Config{Jobs: -1},
			wantField: "jobs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.cfg)

			require.False(t, result.Valid())
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.wantField, result.Errors[0].Field)
		})
	}
}

func TestValidateEmptyRuleSeverityAllowed(t *testing.T) {
	cfg := &config.Config{
		Rules: map[string]config.RuleConfig{
			"UA001": {Severity: strPtr("")},
			"UA002": {},
		},
	}

	assert.True(t, Validate(cfg).Valid())
}

func TestValidationErrorFormatting(t *testing.T) {
	err := &ValidationError{
		Field:    "severity_default",
		Value:    "fatal",
		Message:  `unknown severity "fatal"`,
		FilePath: ".gohtmlint.yml",
		Line:     3,
	}

	assert.Equal(t, `.gohtmlint.yml:3: severity_default: unknown severity "fatal"`, err.Error())
}

func TestValidationResultAllMessages(t *testing.T) {
	result := &ValidationResult{
		Errors:   []ValidationError{{Field: "jobs", Message: "jobs must be zero or positive"}},
		Warnings: []ValidationWarning{{Field: "rules", Message: "unknown rule"}},
	}

	messages := result.AllMessages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "jobs")
	assert.Equal(t, "unknown rule", messages[1])
}
