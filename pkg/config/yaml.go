package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// Merge overlays values from other onto c. Non-zero scalar fields and
// per-rule entries in other win; c keeps everything else.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.SeverityDefault != "" {
		c.SeverityDefault = other.SeverityDefault
	}
	if len(other.Ignore) > 0 {
		c.Ignore = append(c.Ignore, other.Ignore...)
	}
	for id, rc := range other.Rules {
		merged := c.Rules[id]
		if rc.Enabled != nil {
			merged.Enabled = rc.Enabled
		}
		if rc.Severity != nil {
			merged.Severity = rc.Severity
		}
		if rc.Options != nil {
			if merged.Options == nil {
				merged.Options = make(map[string]any, len(rc.Options))
			}
			for k, v := range rc.Options {
				merged.Options[k] = v
			}
		}
		c.Rules[id] = merged
	}
}
