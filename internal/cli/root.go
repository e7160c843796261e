package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"turbocheck/internal/config"
	"turbocheck/internal/engine"
	"turbocheck/internal/flags"
	"turbocheck/internal/logger"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "turbocheck",
	Short: "Verify the TurboJPEG integration setup of the Windows build",
	Long: `turbocheck verifies that the native TurboJPEG integration is set up.

It checks that the required files exist next to the binary, that
CMakeLists.txt builds, links and installs the JPEG decoder wrapper, and that
the Dart FFI binding (../lib/services/decode_jpeg_ffi.dart) carries the
expected loader and test hooks. It only checks presence and text markers; it
never builds anything or validates binaries.

All paths resolve against the directory containing the turbocheck
executable, regardless of where it is invoked from. Use --dir to point at a
different directory.

Exit codes:
	0 = all checks passed
	1 = at least one check failed
	2 = the run could not start (invalid flags, unreadable manifest, ...)

Examples:
	# Verify the directory the binary lives in
	turbocheck

	# Verify another checkout
	turbocheck --dir ./windows

	# Also write machine-readable results
	turbocheck --out results.ndjson --report verify.md

	# List what gets checked
	turbocheck checks list`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runVerify(cmd, cfg))
	},
}

func runVerify(cmd *cobra.Command, cfg *config.Config) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return engine.ExitFatal
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	eng := engine.NewEngine(newLogger(cmd, cfg))
	eng.Stdout = cmd.OutOrStdout()
	eng.Stderr = cmd.ErrOrStderr()
	return eng.Run(ctx, cfg)
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.Logger {
	level := "warn"
	if cfg.Runtime.Verbose {
		level = "debug"
	}
	return logger.New(cmd.ErrOrStderr(), level)
}

func init() {
	// Workspace and checklist selection are persistent so "checks list" sees
	// the same checklist the verifier would run.
	rootCmd.PersistentFlags().StringVar(&cfg.Workspace.Dir, flags.FlagDir, "", "Base directory all checklist paths resolve against (default: directory of the turbocheck executable)")
	rootCmd.PersistentFlags().StringVar(&cfg.Checklist.Manifest, flags.FlagManifest, "", "YAML checklist manifest replacing the built-in TurboJPEG checklist")
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable debug diagnostics on stderr")

	rootCmd.Flags().StringSliceVar(&cfg.Checklist.Phases, flags.FlagPhases, nil, "Phase IDs to run (repeatable; comma-separated accepted; default: all)")
	rootCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Also write structured results to this path")
	rootCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	rootCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Also write a Markdown report to this path")
	rootCmd.Flags().BoolVar(&cfg.Output.NoColor, flags.FlagNoColor, false, "Disable coloured pass/fail glyphs")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(engine.ExitFatal)
	}
}
