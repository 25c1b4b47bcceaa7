package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gohtmlint/internal/configloader"
	"github.com/yaklabco/gohtmlint/internal/logging"
	"github.com/yaklabco/gohtmlint/pkg/config"
	"github.com/yaklabco/gohtmlint/pkg/lint"
	_ "github.com/yaklabco/gohtmlint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/gohtmlint/pkg/reporter"
	"github.com/yaklabco/gohtmlint/pkg/runner"
)

type auditFlags struct {
	format          string
	ignore          []string
	enable          []string
	disable         []string
	strict          bool
	noContext       bool
	compact         bool
	includeVendored bool
	ruleFormat      string
	jobs            int
}

func newAuditCommand() *cobra.Command {
	flags := &auditFlags{}

	cmd := &cobra.Command{
		Use:   "audit [paths...]",
		Short: "Audit HTML files for usability issues",
		Long:  auditLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args, flags)
		},
	}

	addAuditFlags(cmd, flags)

	return cmd
}

const auditLongDescription = `Audit HTML files for usability and accessibility issues.

By default, audits all .html and .htm files in the current directory
and subdirectories. Specify paths to audit specific files or directories.

Examples:
  gohtmlint audit                    # Audit current directory
  gohtmlint audit public/            # Audit a directory
  gohtmlint audit index.html         # Audit a single file
  gohtmlint audit --format json      # Output as JSON for CI
  gohtmlint audit --format text      # Styled terminal output
  gohtmlint audit --enable UA013     # Enable an opt-in rule
  gohtmlint audit --strict           # Treat warnings as errors`

func runAudit(cmd *cobra.Command, args []string, flags *auditFlags) error {
	logger := logging.Default()

	// Reject a bad format before any file is touched. No report can
	// meaningfully be produced with an unknown format.
	cfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		parsed, err := reporter.ParseFormat(flags.format)
		if err != nil {
			return errors.Join(ErrInvalidUsage, err)
		}
		cfg.Format = config.OutputFormat(parsed)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}

	// Unknown rule selections are usage errors, not silent no-ops.
	for _, name := range flags.enable {
		if _, ok := lint.DefaultRegistry.Get(name); !ok {
			return errors.Join(ErrInvalidUsage, fmt.Errorf("unknown rule %q", name))
		}
	}
	for _, name := range flags.disable {
		if _, ok := lint.DefaultRegistry.Get(name); !ok {
			return errors.Join(ErrInvalidUsage, fmt.Errorf("unknown rule %q", name))
		}
	}

	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict
	cfg.Jobs = flags.jobs

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, finalCfg.Format,
		logging.FieldStrict, finalCfg.Strict,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Use the default registry which has all built-in rules registered.
	engine := lint.NewEngine(lint.DefaultRegistry)
	auditRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:           args,
		WorkingDir:      workDir,
		Extensions:      runner.DefaultExtensions(),
		ExcludeGlobs:    finalCfg.Ignore,
		IncludeVendored: flags.includeVendored,
		Jobs:            finalCfg.Jobs,
		Config:          finalCfg,
	}

	logger.Debug("starting audit run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := auditRunner.Run(ctx, runOpts)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Join(errors.New("audit run failed"), err)
		}
		// Missing or unstattable input paths are I/O failures.
		return errors.Join(ErrUnreadableFiles, err)
	}

	// An unreadable file means the report would be incomplete; report the
	// failure and emit nothing rather than a partial report.
	if result.HasReadErrors() {
		for _, file := range result.Files {
			if file.Error != nil {
				logger.Error("cannot read file", logging.FieldPath, file.Path,
					logging.FieldError, file.Error)
			}
		}
		return ErrUnreadableFiles
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	// The loader already validated the format value.
	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return errors.Join(ErrInvalidUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Strict) {
	case ExitAuditErrors:
		return ErrAuditIssuesFound
	case ExitAuditWarnings:
		return ErrAuditWarningsFound
	}

	return nil
}

func addAuditFlags(cmd *cobra.Command, flags *auditFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "md", "output format: md, json, text")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.includeVendored, "include-vendored", false,
		"also audit vendored and generated paths")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
