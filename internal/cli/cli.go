package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	Version = "dev"
	Commit  = "none"
)

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if len(args) == 0 {
		_ = root.Usage()
		return ExitUsage
	}

	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return exitCode(err, args, root, stderr)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "localelint",
		Short:         "Verify that every locale document defines a translation key",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to profile (default: search for .localelint/config.yml)")
	flags.String("log-level", "warn", "Diagnostic log level (debug|info|warn|error)")
	flags.String("log-format", "console", "Diagnostic log format (console|json)")
	flags.String("color", "auto", "Colorize text output (auto|always|never)")

	root.AddCommand(
		newCheckCmd(a),
		newValidateCmd(a),
		newInitCmd(a),
		newWatchCmd(a),
		newReportCmd(a),
		newVersionCmd(),
	)
	return root
}

// usageError marks errors that should print command usage.
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// exitError carries an explicit exit code. A nil err means the command has
// already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// usageArgs wraps a cobra argument validator so violations exit with usage.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{cmd: cmd, err: err}
		}
		return nil
	}
}

func exitCode(err error, args []string, root *cobra.Command, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintf(stderr, "invalid arguments: %v\n\n", usage.err)
		fmt.Fprint(stderr, usage.cmd.UsageString())
		return ExitUsage
	}
	if strings.HasPrefix(err.Error(), "unknown command") {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(stderr, root.UsageString())
		return ExitUsage
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintln(stderr, exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the localelint version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "localelint %s (commit %s)\n", Version, Commit)
		},
	}
}
