package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/nblint/internal/configloader"
	"github.com/yaklabco/nblint/internal/logging"
	"github.com/yaklabco/nblint/pkg/config"
	"github.com/yaklabco/nblint/pkg/lint"
	_ "github.com/yaklabco/nblint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/nblint/pkg/reporter"
	"github.com/yaklabco/nblint/pkg/runner"
)

// Sentinel errors used to pick the process exit code.
var (
	// ErrFindingsFound is returned when any analyzed notebook had a
	// failing rule. It is a signal for the exit code, not a loggable
	// failure.
	ErrFindingsFound = errors.New("findings found")

	// ErrUsage marks invalid command-line usage.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration errors.
	ErrConfig = errors.New("configuration error")
)

type checkFlags struct {
	format  string
	ignore  []string
	disable []string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint notebooks",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress success lines for clean notebooks")
	cmd.Flags().BoolVar(&cfg.KeepGoing, "keep-going", false, "continue past notebooks that fail to parse")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")

	return cmd
}

const checkLongDescription = `Lint notebooks for style and consistency issues.

By default, lints all .ipynb files under the configured root (the
current directory unless pyproject.toml says otherwise). Specify paths
to lint specific files or directories.

Examples:
  nblint check                      # Lint the configured root
  nblint check notebooks/           # Lint a directory
  nblint check analysis.ipynb       # Lint a single notebook
  nblint check --disable NB003      # Skip the empty-cell rule
  nblint check --format json        # Output as JSON for CI
  nblint check -q                   # Only print failures`

func runCheck(cmd *cobra.Command, args []string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	cfg.Ignore = flags.ignore
	cfg.Disable = flags.disable

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

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

	// Resolve the disable list before touching any notebook; an unknown
	// name is fatal for the whole run.
	disabled, err := configloader.ResolveDisabled(lint.DefaultRegistry, finalCfg.Disable)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldRoot, finalCfg.Root,
		logging.FieldDisabled, finalCfg.Disable,
		logging.FieldQuiet, finalCfg.Quiet,
		logging.FieldJobs, finalCfg.Jobs,
	)

	engine := lint.NewEngine(lint.DefaultRegistry)
	checkRunner := runner.New(engine)

	paths := args
	if len(paths) == 0 {
		paths = []string{finalCfg.Root}
	}

	runOpts := runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Disabled:     disabled,
		KeepGoing:    finalCfg.KeepGoing,
		Jobs:         finalCfg.Jobs,
	}

	logger.Debug("starting check run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := checkRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("check run failed"), err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return errors.Join(ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     format,
		Color:      colorMode,
		Quiet:      finalCfg.Quiet,
		WorkingDir: workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithFindings, result.Stats.FilesWithFindings,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrFindingsFound
	}
	return nil
}
