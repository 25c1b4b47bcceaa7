// Package main is the entry point for the gohtmlint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/gohtmlint/internal/cli"
	"github.com/yaklabco/gohtmlint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/gohtmlint/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// Findings sentinels carry exit status only; the report has
		// already been written.
		if !errors.Is(err, cli.ErrAuditIssuesFound) &&
			!errors.Is(err, cli.ErrAuditWarningsFound) &&
			!errors.Is(err, cli.ErrUnreadableFiles) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeForError(err)
}
