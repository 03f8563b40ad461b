package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localelint/internal/config"
	"localelint/internal/document"
	"localelint/internal/report"
	"localelint/internal/vcs"
	"localelint/internal/verify"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Verify the locale documents and print a report",
		Long: "Verify that every locale document defines the profile's key path as a string.\n" +
			"Exits 1 when any error finding is reported; warnings never fail the run.",
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			passed, err := a.check(cmd.Context(), firstArg(args), out, resolveColor(a.settings.Output.Color, out))
			if err != nil {
				return &exitError{code: ExitError, err: err}
			}
			if !passed {
				return &exitError{code: ExitError}
			}
			return nil
		},
	}
	addReportFlags(cmd)
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "Report format ("+strings.Join(report.Formats, "|")+")")
	cmd.Flags().IntP("jobs", "j", 1, "Documents verified concurrently")
}

// target is a resolved profile plus the directory it applies to.
type target struct {
	profile    config.Profile
	localesDir string
}

// resolveTarget loads the profile and picks the locales directory; dir
// overrides the profile's locales_dir.
func (a *app) resolveTarget(dir string) (target, error) {
	profilePath, err := resolveConfigPath(a.configPath)
	if err != nil {
		return target{}, err
	}
	profile, err := config.LoadOrDefault(profilePath)
	if err != nil {
		return target{}, err
	}
	localesDir := profile.LocalesDir()
	if strings.TrimSpace(dir) != "" {
		localesDir, err = filepath.Abs(dir)
		if err != nil {
			return target{}, fmt.Errorf("resolve locales dir: %w", err)
		}
	}
	a.log().Debug("profile resolved",
		zap.String("profile", profile.Path),
		zap.String("locales_dir", localesDir),
		zap.Strings("key_path", profile.KeyPath))
	return target{profile: profile, localesDir: localesDir}, nil
}

// check runs one verification and renders the report to out. It reports
// whether the run passed; run-level failures are returned as errors.
func (a *app) check(ctx context.Context, dir string, out io.Writer, color bool) (bool, error) {
	t, err := a.resolveTarget(dir)
	if err != nil {
		return false, err
	}
	sources, err := document.Discover(t.localesDir, t.profile.Pattern, t.profile.IDPrefix)
	if err != nil {
		return false, err
	}

	verifier := verify.New(verify.Options{
		KeyPath:          verify.KeyPath(t.profile.KeyPath),
		Expectations:     verify.Expectations(t.profile.Expectations),
		UnwrapLocaleRoot: t.profile.UnwrapsLocaleRoot(),
		LegacyRoot:       t.profile.LegacyRoot,
		CurrentRoot:      t.profile.CurrentRoot,
		Jobs:             a.settings.Jobs,
		Logger:           a.log(),
	})
	result, err := verifier.Run(ctx, sources)
	if err != nil {
		return false, err
	}

	files := make([]string, 0, len(sources))
	for _, src := range sources {
		files = append(files, src.Path)
	}
	opts := report.Options{
		Color:    color,
		Files:    files,
		Revision: a.revision(ctx, t.localesDir),
	}
	if err := report.Write(out, a.settings.Output.Format, result, opts); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}
	return result.Success(), nil
}

// revision describes the git state of dir, or "" outside a repository.
func (a *app) revision(ctx context.Context, dir string) string {
	rev, err := vcs.Revision(ctx, dir)
	if err != nil {
		a.log().Debug("no git revision", zap.String("dir", dir), zap.Error(err))
		return ""
	}
	return rev
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
