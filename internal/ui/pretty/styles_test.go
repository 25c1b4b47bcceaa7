package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyles(t *testing.T) {
	colored := NewStyles(true)
	require.NotNil(t, colored)
	assert.True(t, colored.Error.GetBold())

	plain := NewStyles(false)
	require.NotNil(t, plain)
	assert.False(t, plain.Error.GetBold())
}

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto with non-tty writer", mode: "auto", want: false},
		{name: "empty mode defaults to auto", mode: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// bytes.Buffer is never a TTY, so auto resolves to false.
			assert.Equal(t, tt.want, IsColorEnabled(tt.mode, &bytes.Buffer{}))
		})
	}
}

func TestIsColorEnabledRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
	// "always" wins over NO_COLOR so explicit requests still work.
	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
}
