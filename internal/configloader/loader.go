// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOHTMLINT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gohtmlint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gohtmlint/config.yaml)
//  6. System config (/etc/gohtmlint/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	// Start with defaults
	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// Load and merge in order (lowest to highest precedence)

	// 1. System config
	if !opts.IgnoreSystemConfig && paths.System != "" {
		if err := mergeConfigFile(cfg, paths.System, result); err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
	}

	// 2. User config
	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := mergeConfigFile(cfg, paths.User, result); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
	}

	// 3. Project config
	if !opts.IgnoreProjectConfig && paths.Project != "" {
		if err := mergeConfigFile(cfg, paths.Project, result); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}

	// 4. Explicit config (--config flag)
	if opts.ExplicitPath != "" {
		if err := mergeConfigFile(cfg, opts.ExplicitPath, result); err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
	}

	// 5. Environment variables
	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	// 6. CLI config (highest precedence)
	applyCLIConfig(cfg, opts.CLIConfig)

	// Normalize rule keys so config entries keyed by name resolve to
	// canonical rule IDs.
	normalizeRuleKeys(cfg, lint.DefaultRegistry, result)

	if len(result.LoadedFrom) > 0 {
		logging.FromContext(ctx).Debug("merged configuration files",
			logging.FieldFiles, result.LoadedFrom)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		// Return first error
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// mergeConfigFile loads a YAML file and overlays it onto cfg.
func mergeConfigFile(cfg *config.Config, path string, result *LoadResult) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	fileCfg, err := config.FromYAML(content)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	cfg.Merge(fileCfg)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}

// applyCLIConfig overlays CLI flag values, which never come from files.
func applyCLIConfig(cfg, cli *config.Config) {
	if cli == nil {
		return
	}

	cfg.Merge(cli)

	if cli.Format != "" {
		cfg.Format = cli.Format
	}
	if cli.RuleFormat != "" {
		cfg.RuleFormat = cli.RuleFormat
	}
	if cli.Strict {
		cfg.Strict = true
	}
	if cli.Jobs != 0 {
		cfg.Jobs = cli.Jobs
	}
	if len(cli.EnableRules) > 0 {
		cfg.EnableRules = append(cfg.EnableRules, cli.EnableRules...)
	}
	if len(cli.DisableRules) > 0 {
		cfg.DisableRules = append(cfg.DisableRules, cli.DisableRules...)
	}
}

// normalizeRuleKeys rewrites cfg.Rules entries keyed by rule name to use
// the canonical rule ID. Unknown keys are kept as-is and reported as
// warnings.
func normalizeRuleKeys(cfg *config.Config, registry *lint.Registry, result *LoadResult) {
	if cfg == nil || len(cfg.Rules) == 0 || registry == nil {
		return
	}

	normalized := make(map[string]config.RuleConfig, len(cfg.Rules))
	for key, ruleCfg := range cfg.Rules {
		rule, ok := registry.Get(key)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown rule %q in configuration", key))
			normalized[key] = ruleCfg
			continue
		}
		normalized[rule.ID()] = ruleCfg
	}
	cfg.Rules = normalized
}
