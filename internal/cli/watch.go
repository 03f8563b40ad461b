package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localelint/internal/document"
	"localelint/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-run check whenever a locale document changes",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := a.watch(ctx, firstArg(args), cmd.OutOrStdout()); err != nil {
				return &exitError{code: ExitError, err: err}
			}
			return nil
		},
	}
	addReportFlags(cmd)
	cmd.Flags().Duration("debounce", watch.DefaultDebounce, "Quiet period before re-running after a change")
	return cmd
}

// watch runs check once, then again after every debounced change, until
// ctx is cancelled.
func (a *app) watch(ctx context.Context, dir string, out io.Writer) error {
	color := resolveColor(a.settings.Output.Color, out)
	out = &lockedWriter{w: out}
	t, err := a.resolveTarget(dir)
	if err != nil {
		return err
	}
	a.checkAndReport(ctx, dir, out, color)

	pattern := t.profile.Pattern
	w, err := watch.New(t.localesDir, watch.Options{
		Debounce: a.settings.Watch.Debounce,
		Match: func(path string) bool {
			if pattern == "" {
				return document.IsDocumentPath(path)
			}
			ok, _ := filepath.Match(pattern, filepath.Base(path))
			return ok
		},
		OnChange: func(event watch.ChangeEvent) {
			fmt.Fprintf(out, "\nChange detected at %s: %s (%s)\n\n",
				time.Now().Format("15:04:05"), filepath.Base(event.Path), event.ChangeType)
			a.checkAndReport(ctx, dir, out, color)
		},
		Logger: a.log(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Watching %s for changes...\n", t.localesDir)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// checkAndReport runs check and reports run-level failures on stderr
// without stopping the watch loop.
func (a *app) checkAndReport(ctx context.Context, dir string, out io.Writer, color bool) {
	passed, err := a.check(ctx, dir, out, color)
	if err != nil {
		if ctx.Err() == nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
		}
		return
	}
	a.log().Info("watch cycle finished", zap.Bool("passed", passed))
}

// lockedWriter serializes writes from the change callback and the main loop.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// Write writes to the underlying writer with a mutex guard.
func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
