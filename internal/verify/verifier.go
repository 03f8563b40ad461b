package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"localelint/internal/document"
)

// Options configures a Verifier.
type Options struct {
	KeyPath      KeyPath
	Expectations Expectations
	// UnwrapLocaleRoot walks the key path under the top-level key named
	// after the document identifier (en.yml holds "en: {...}").
	UnwrapLocaleRoot bool
	LegacyRoot       string
	CurrentRoot      string
	// Jobs bounds concurrent document processing; values below 2 run
	// sequentially.
	Jobs   int
	Logger *zap.Logger
}

// Verifier checks locale documents against a fixed key path.
type Verifier struct {
	opts   Options
	logger *zap.Logger
}

// New returns a Verifier for opts.
func New(opts Options) *Verifier {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{opts: opts, logger: logger}
}

// Run verifies every source and returns the aggregated report. Per-document
// problems become findings; only context cancellation returns an error.
func (v *Verifier) Run(ctx context.Context, sources []document.Source) (Report, error) {
	agg := v.newAggregator()

	group, groupCtx := errgroup.WithContext(ctx)
	if v.opts.Jobs > 1 {
		group.SetLimit(v.opts.Jobs)
	} else {
		group.SetLimit(1)
	}
	for _, src := range sources {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			doc, err := document.ReadFile(src)
			result, tree := v.verifyParsed(src.ID, doc, err)
			result.Path = src.Path
			agg.Add(result, tree)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, fmt.Errorf("verify documents: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("verify documents: %w", err)
	}

	report := v.finish(agg)
	v.logger.Info("verification finished",
		zap.String("run_id", report.RunID),
		zap.Int("documents", len(report.Documents)),
		zap.Int("failed", report.Failed()),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
		zap.Bool("success", report.Success()),
	)
	return report, nil
}

func (v *Verifier) verifyParsed(id string, doc *document.Document, loadErr error) (DocumentResult, *document.Node) {
	result := DocumentResult{ID: id}
	log := v.logger.With(zap.String("document", id))

	if loadErr != nil {
		result.Findings = append(result.Findings, loadFinding(id, loadErr))
		log.Debug("document failed to load", zap.Error(loadErr))
		return result, nil
	}

	tree := doc.Root
	if v.opts.UnwrapLocaleRoot {
		localeTree, ok := tree.Get(id)
		if !ok {
			result.Findings = append(result.Findings, Finding{
				Document: id,
				Kind:     KindMissingKey,
				Key:      id,
				Message:  fmt.Sprintf("missing locale root key %q", id),
			})
			log.Debug("locale root key missing")
			return result, nil
		}
		tree = localeTree
	}

	value, finding := Check(id, tree, v.opts.KeyPath)
	if finding != nil {
		result.Findings = append(result.Findings, *finding)
		log.Debug("key path check failed", zap.String("kind", string(finding.Kind)), zap.String("key", finding.Key))
		return result, tree
	}
	result.Value = value
	if mismatch := Compare(id, value, v.opts.Expectations); mismatch != nil {
		result.Findings = append(result.Findings, *mismatch)
	}
	log.Debug("document checked", zap.String("value", value), zap.Int("findings", len(result.Findings)))
	return result, tree
}

func (v *Verifier) newAggregator() *Aggregator {
	return NewAggregator(AggregatorOptions{
		LegacyRoot:  v.opts.LegacyRoot,
		CurrentRoot: v.opts.CurrentRoot,
		Expected:    v.opts.Expectations.IDs(),
	})
}

func (v *Verifier) finish(agg *Aggregator) Report {
	report := agg.Report()
	report.RunID = uuid.NewString()
	report.KeyPath = v.opts.KeyPath.String()
	return report
}

// loadFinding classifies a loader error as an encoding or parse finding.
func loadFinding(id string, err error) Finding {
	var encErr *document.EncodingError
	if errors.As(err, &encErr) {
		return Finding{Document: id, Kind: KindEncodingError, Message: "invalid encoding: " + encErr.Error()}
	}
	return Finding{Document: id, Kind: KindParseError, Message: err.Error()}
}
