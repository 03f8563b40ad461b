package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localelint/internal/config"
	"localelint/internal/logging"
)

// app holds state shared by every command of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	settings   config.Settings
	logger     *zap.Logger
}

// setup resolves runtime settings and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return &exitError{code: ExitError, err: fmt.Errorf("Invalid settings:\n%w", err)}
	}
	logger, err := logging.New(settings.Log.Level, settings.Log.Format, a.stderr)
	if err != nil {
		return &exitError{code: ExitError, err: err}
	}
	a.settings = settings
	a.logger = logger
	return nil
}

// log returns the configured logger, or a no-op one before setup.
func (a *app) log() *zap.Logger {
	if a.logger == nil {
		return logging.Nop()
	}
	return a.logger
}
