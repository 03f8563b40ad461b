package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"localelint/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file.json>",
		Short: "Re-render a report saved with --format json",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := report.Load(args[0])
			if err != nil {
				return &exitError{code: ExitError, err: err}
			}
			out := cmd.OutOrStdout()
			opts := report.Options{
				Color:    resolveColor(a.settings.Output.Color, out),
				Revision: saved.Revision,
			}
			if err := report.Write(out, a.settings.Output.Format, saved.Report, opts); err != nil {
				return &exitError{code: ExitError, err: fmt.Errorf("write report: %w", err)}
			}
			if !saved.Report.Success() {
				return &exitError{code: ExitError}
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Report format (text|json|html)")
	return cmd
}
