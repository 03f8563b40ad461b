package verify

import (
	"fmt"
	"sort"
	"sync"

	"localelint/internal/document"
)

// State is the terminal state of one document in a run.
type State string

const (
	StatePassed      State = "passed"
	StateFailed      State = "failed"
	StateParseFailed State = "parse_failed"
)

// DocumentResult is the outcome of verifying one document.
type DocumentResult struct {
	ID       string    `json:"id"`
	Path     string    `json:"path,omitempty"`
	State    State     `json:"state"`
	Value    string    `json:"value,omitempty"`
	Findings []Finding `json:"findings,omitempty"`
}

// Report collects every finding of a run, split into errors and warnings.
type Report struct {
	RunID     string           `json:"run_id"`
	KeyPath   string           `json:"key_path"`
	Documents []DocumentResult `json:"documents"`
	Errors    []Finding        `json:"errors"`
	Warnings  []Finding        `json:"warnings"`
}

// Success reports whether the run produced no error findings. Warnings
// never affect it.
func (r Report) Success() bool {
	return len(r.Errors) == 0
}

// Failed counts documents that did not pass.
func (r Report) Failed() int {
	count := 0
	for _, doc := range r.Documents {
		if doc.State != StatePassed {
			count++
		}
	}
	return count
}

// AggregatorOptions configures the run-wide checks of an Aggregator.
type AggregatorOptions struct {
	// LegacyRoot and CurrentRoot drive the structural-migration hint.
	LegacyRoot  string
	CurrentRoot string
	// Expected lists identifiers that should be present in the run.
	Expected []string
}

// Aggregator merges per-document results into a Report. It is safe for
// concurrent use; the resulting Report does not depend on the order in
// which results were added.
type Aggregator struct {
	opts    AggregatorOptions
	mu      sync.Mutex
	results []DocumentResult
}

// NewAggregator returns an empty aggregator.
func NewAggregator(opts AggregatorOptions) *Aggregator {
	return &Aggregator{opts: opts}
}

// Add records a document result. When tree is non-nil it is inspected for
// the legacy root layout and a warning is attached to the result.
func (a *Aggregator) Add(result DocumentResult, tree *document.Node) {
	if hint := DetectLegacy(result.ID, tree, a.opts.LegacyRoot, a.opts.CurrentRoot); hint != nil {
		result.Findings = append(result.Findings, *hint)
	}
	result.State = resolveState(result.Findings)
	a.mu.Lock()
	a.results = append(a.results, result)
	a.mu.Unlock()
}

// Report builds the sorted report.
func (a *Aggregator) Report() Report {
	a.mu.Lock()
	results := make([]DocumentResult, len(a.results))
	copy(results, a.results)
	a.mu.Unlock()

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	report := Report{Documents: results, Errors: []Finding{}, Warnings: []Finding{}}
	seen := make(map[string]struct{}, len(results))
	for _, result := range results {
		seen[result.ID] = struct{}{}
		for _, finding := range result.Findings {
			report.add(finding)
		}
	}
	for _, id := range a.opts.Expected {
		if _, ok := seen[id]; ok {
			continue
		}
		report.add(Finding{
			Document: id,
			Kind:     KindMissingLocale,
			Message:  fmt.Sprintf("missing expected locale document %q", id),
		})
	}
	sortFindings(report.Errors)
	sortFindings(report.Warnings)
	return report
}

func (r *Report) add(finding Finding) {
	if finding.IsError() {
		r.Errors = append(r.Errors, finding)
		return
	}
	r.Warnings = append(r.Warnings, finding)
}

// DetectLegacy returns a LegacyStructure warning when tree has legacyRoot
// but not currentRoot.
func DetectLegacy(id string, tree *document.Node, legacyRoot, currentRoot string) *Finding {
	if legacyRoot == "" || currentRoot == "" || !tree.IsMapping() {
		return nil
	}
	if !tree.Has(legacyRoot) || tree.Has(currentRoot) {
		return nil
	}
	return &Finding{
		Document: id,
		Kind:     KindLegacyStructure,
		Key:      legacyRoot,
		Message:  fmt.Sprintf("has %q key but missing %q key (possible old structure)", legacyRoot, currentRoot),
	}
}

func resolveState(findings []Finding) State {
	state := StatePassed
	for _, finding := range findings {
		switch finding.Kind {
		case KindParseError, KindEncodingError:
			return StateParseFailed
		}
		if finding.IsError() {
			state = StateFailed
		}
	}
	return state
}

func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Document != b.Document {
			return a.Document < b.Document
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Message < b.Message
	})
}
