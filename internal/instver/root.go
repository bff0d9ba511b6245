package instver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/haloydev/instver/internal/config"
	"github.com/haloydev/instver/internal/constants"
	"github.com/haloydev/instver/internal/helpers"
	"github.com/haloydev/instver/internal/logging"
	"github.com/haloydev/instver/internal/ui"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var logger *slog.Logger

	cmd := &cobra.Command{
		Use:   constants.AppName + " <version_string>",
		Short: "Normalize a release tag into an installer version",
		Long: `instver turns a release tag into the version string the installer expects.

  v<a>.<b>.<c>.<d>-<suffix>  ->  <a>.<b>.<c>.<d+1>
  anything else              ->  the input without its leading 'v' characters`,
		Args: exactlyOneVersion,
		// Version strings such as "-1" or "--help" are arguments, not flags.
		DisableFlagParsing: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := helpers.TransformVersion(input)

			logger.Debug("transformed version",
				"input", input,
				"output", output,
				"hyphenated", helpers.IsHyphenatedVersion(input),
				"instver_version", constants.Version)

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
				return fmt.Errorf("failed to write version: %w", err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		_, err := fmt.Fprintf(c.OutOrStdout(),
			"Usage: %s <version_string>\nExample: %s %s\n",
			constants.AppName, constants.AppName, constants.UsageExampleVersion)
		return err
	})

	return cmd
}

func exactlyOneVersion(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

// newLogger builds the diagnostics logger from INSTVER_* settings. Config problems
// are reported and otherwise ignored since they never affect the result.
func newLogger(w io.Writer) *slog.Logger {
	cfg, err := config.Load()
	if err != nil {
		ui.Warn("%v", err)
		cfg = config.Default()
	}

	level, ok := logging.ParseLevel(cfg.LogLevel)
	if !ok {
		ui.Warn("unknown log level %q, using %s", cfg.LogLevel, constants.DefaultLogLevel)
	}
	return logging.NewLogger(level, w)
}

// isCompletionRequest reports whether cobra would route args to its hidden
// shell completion command instead of the root command.
func isCompletionRequest(args []string) bool {
	return len(args) > 0 &&
		(args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd)
}

// runRoot runs the root command on args without cobra's command lookup.
func runRoot(cmd *cobra.Command, args []string) error {
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}
	cmd.PersistentPreRun(cmd, args)
	return cmd.RunE(cmd, args)
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stderr)
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	var err error
	if isCompletionRequest(args) {
		err = runRoot(rootCmd, args)
	} else {
		err = rootCmd.Execute()
	}

	switch {
	case err == nil:
	case isUsageError(err):
		if usageErr := rootCmd.Usage(); usageErr != nil {
			ui.Error("%v", usageErr)
		}
	default:
		ui.Error("%v", err)
	}
	return getExitCode(err)
}
