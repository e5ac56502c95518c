package processor

import (
	"errors"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"codeberg.org/snonux/tolgee-merge-namespaces/internal/cleanup"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/discovery"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/merge"
	"codeberg.org/snonux/tolgee-merge-namespaces/internal/report"
)

// ErrAlreadyRun is returned when Run is called on a processor that already ran
var ErrAlreadyRun = errors.New("processor has already run")

// State is the pipeline state
type State int

const (
	StateIdle State = iota
	StateDiscovering
	StateMerging
	StateCleaningUp
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDiscovering:
		return "discovering"
	case StateMerging:
		return "merging"
	case StateCleaningUp:
		return "cleaning up"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result describes a completed run
type Result struct {
	Root       string
	Languages  []string
	Namespaces []string
	Merges     []merge.Outcome
	Cleanup    cleanup.Summary
	// Problems combines every recoverable failure of the run
	Problems error
}

// Errors returns the recoverable failures one by one
func (r *Result) Errors() []error {
	return multierr.Errors(r.Problems)
}

// Written returns the number of root documents written
func (r *Result) Written() int {
	n := 0
	for _, m := range r.Merges {
		if m.Written {
			n++
		}
	}
	return n
}

// Processor handles one merge-and-clean pass over an i18n root
type Processor struct {
	root     string
	fsys     afero.Fs
	reporter report.Reporter
	merger   *merge.Merger
	cleaner  *cleanup.Cleaner
	state    State
}

// NewProcessor creates a processor for the i18n tree at root
func NewProcessor(fsys afero.Fs, root string, r report.Reporter) *Processor {
	return &Processor{
		root:     root,
		fsys:     fsys,
		reporter: r,
		merger:   merge.NewMerger(fsys, r),
		cleaner:  cleanup.NewCleaner(fsys, r),
		state:    StateIdle,
	}
}

// State returns the current pipeline state
func (p *Processor) State() State {
	return p.state
}

// Run executes discovery, merge and cleanup. The returned error is non-nil
// only for fatal root failures, in which case nothing was modified.
func (p *Processor) Run() (*Result, error) {
	if p.state != StateIdle {
		return nil, ErrAlreadyRun
	}

	p.state = StateDiscovering
	p.reporter.Info("Using i18n directory", "dir", p.root)

	tree, err := discovery.Discover(p.fsys, p.root, p.reporter)
	if err != nil {
		p.state = StateFailed
		return nil, err
	}

	result := &Result{
		Root:       tree.Root,
		Languages:  tree.Languages,
		Namespaces: tree.Namespaces,
		Problems:   tree.Problems,
	}

	if tree.Empty() {
		p.reporter.Info("No language files found. Nothing to merge.")
		p.state = StateDone
		return result, nil
	}

	p.reporter.Info("Found languages", "count", len(tree.Languages), "languages", strings.Join(tree.Languages, ", "))

	p.state = StateMerging
	for _, lang := range tree.Languages {
		outcome := p.merger.MergeLanguage(tree, lang)
		result.Merges = append(result.Merges, outcome)
		result.Problems = multierr.Append(result.Problems, outcome.Problems)
	}

	p.state = StateCleaningUp
	result.Cleanup = p.cleaner.Clean(tree)
	result.Problems = multierr.Append(result.Problems, result.Cleanup.Problems)

	p.state = StateDone
	p.summarize(result)

	return result, nil
}

func (p *Processor) summarize(result *Result) {
	keyvals := []any{
		"languages", len(result.Languages),
		"written", result.Written(),
		"files_removed", len(result.Cleanup.FilesRemoved),
		"dirs_removed", len(result.Cleanup.DirsRemoved),
	}

	if errs := result.Errors(); len(errs) > 0 {
		keyvals = append(keyvals, "errors", len(errs))
		p.reporter.Warn("Translation merging completed with errors", keyvals...)
		return
	}

	p.reporter.Info("Translation merging completed!", keyvals...)
}
