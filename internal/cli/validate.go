package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"localelint/internal/config"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the .localelint/config.yml profile",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := resolveConfigPath(a.configPath)
			if err == nil && resolved == "" {
				resolved, err = config.FindConfigPath("")
			}
			if err != nil {
				return &exitError{code: ExitError, err: fmt.Errorf("Validation failed:\n%v", err)}
			}
			if _, err := config.Load(resolved); err != nil {
				return &exitError{code: ExitError, err: fmt.Errorf("Validation failed:\n%s", err.Error())}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config OK")
			return nil
		},
	}
}
