package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"localelint/internal/config"
	"localelint/internal/vcs"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

func newInitCmd(a *app) *cobra.Command {
	var (
		force      bool
		assumeYes  bool
		localesDir string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold .localelint/config.yml with the default profile",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.runInit(cmd.Context(), cmd.OutOrStdout(), initOptions{
				force:      force,
				assumeYes:  assumeYes,
				localesDir: localesDir,
				localesSet: cmd.Flags().Changed("locales-dir"),
			})
			if errors.Is(err, errInitCancelled) {
				return &exitError{code: ExitError, err: errors.New("Init cancelled.")}
			}
			if err != nil {
				return &exitError{code: ExitError, err: fmt.Errorf("Init failed: %w", err)}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing profile")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Accept defaults without prompting")
	cmd.Flags().StringVar(&localesDir, "locales-dir", config.DefaultLocalesDir, "Locales directory recorded in the profile")
	return cmd
}

type initOptions struct {
	force      bool
	assumeYes  bool
	localesDir string
	localesSet bool
}

var errInitCancelled = errors.New("init cancelled")

func (a *app) runInit(ctx context.Context, out io.Writer, opts initOptions) error {
	targetPath, err := resolveConfigPath(a.configPath)
	if err != nil {
		return err
	}
	if targetPath == "" {
		root, err := repoRoot(ctx)
		if err != nil {
			return err
		}
		targetPath = config.ConfigPath(root)
	}
	configDir := filepath.Dir(targetPath)
	if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
		return fmt.Errorf("config directory %q is not a directory", configDir)
	}
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() && !opts.force {
		return fmt.Errorf("config file already exists at %q", targetPath)
	}

	localesDir := opts.localesDir
	if !opts.assumeYes {
		in := initInput
		if in == nil {
			in = os.Stdin
		}
		p := newPrompter(in, out)
		ok, err := p.confirm(fmt.Sprintf("Initialize localelint config in %s?", configDir), true)
		if err != nil {
			return err
		}
		if !ok {
			return errInitCancelled
		}
		if !opts.localesSet {
			localesDir, err = p.text("Locales directory", opts.localesDir)
			if err != nil {
				return err
			}
		}
	}

	if err := config.Scaffold(targetPath, localesDir, opts.force); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s\n", targetPath)
	root := config.RepoRootFromConfigPath(targetPath)
	if _, err := os.Stat(filepath.Join(root, localesDir)); os.IsNotExist(err) {
		fmt.Fprintf(out, "Note: locales directory %s does not exist yet\n", localesDir)
	}
	return nil
}

// repoRoot returns the git root, falling back to the working directory.
func repoRoot(ctx context.Context) (string, error) {
	if root, err := vcs.RepoRoot(ctx, ""); err == nil {
		return root, nil
	}
	return os.Getwd()
}
