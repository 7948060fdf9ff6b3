package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yaklabco/nblint/internal/logging"
	"github.com/yaklabco/nblint/pkg/config"
	"github.com/yaklabco/nblint/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force     bool
	pyproject bool
	output    string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new nblint configuration file",
		Long: `Create a new .nblint.toml configuration file in the current directory
with sensible defaults, or append a [tool.nblint] section to an existing
pyproject.toml.

Examples:
  nblint init                     Create minimal .nblint.toml
  nblint init --pyproject         Add [tool.nblint] to pyproject.toml
  nblint init --output custom.toml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.pyproject, "pyproject", false, "Append a [tool.nblint] section to pyproject.toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .nblint.toml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	if flags.pyproject {
		return initPyproject(ctx, logger.Info)
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = config.StandaloneConfigName
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, []byte(config.Template(false)), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'nblint rules' to see all available rules")

	return nil
}

// initPyproject adds a [tool.nblint] section to pyproject.toml in the
// current directory, creating the file if needed and refusing if the
// section is already present.
func initPyproject(ctx context.Context, logf func(msg any, keyvals ...any)) error {
	const name = "pyproject.toml"

	data, err := os.ReadFile(name)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := fsutil.WriteAtomic(ctx, name, []byte(config.Template(true)), configFilePermissions); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		logf("created configuration file", logging.FieldPath, name)
		return nil
	}

	var probe struct{}
	meta, err := toml.Decode(string(data), &probe)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if meta.IsDefined("tool", "nblint") {
		return fmt.Errorf("%s already has a [tool.nblint] section", name)
	}

	appended := data
	if len(appended) > 0 && appended[len(appended)-1] != '\n' {
		appended = append(appended, '\n')
	}
	appended = append(appended, []byte("\n"+config.Template(true))...)

	if err := fsutil.WriteAtomic(ctx, name, appended, configFilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	logf("added [tool.nblint] section", logging.FieldPath, name)
	return nil
}
