package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/nblint/pkg/lint"
	"github.com/yaklabco/nblint/pkg/notebook"
)

// Runner orchestrates multi-notebook linting with a lint.Engine.
type Runner struct {
	// Engine runs the enabled rules against each parsed notebook.
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers notebooks under opts.Paths and processes them
// concurrently. Each document's read/parse/analyze pipeline executes
// atomically in one worker; outcomes are re-ordered to discovery order
// before aggregation so output is deterministic.
//
// When opts.KeepGoing is false, the first document that fails to read or
// parse aborts the run with that error. When true, the failure is
// recorded on the document's outcome and the run continues.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Documents: make([]DocumentOutcome, 0, len(files)),
		Stats:     newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan DocumentOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts.Disabled)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers may complete out of order; collect by path and rebuild in
	// discovery order.
	outcomes := make(map[string]DocumentOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		outcome, ok := outcomes[path]
		if !ok {
			continue
		}
		if outcome.Err != nil && !opts.KeepGoing {
			return result, fmt.Errorf("lint %s: %w", path, outcome.Err)
		}
		result.accumulate(outcome)
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- DocumentOutcome,
	disabled map[string]bool,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processDocument(path, disabled)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processDocument runs the full per-document pipeline: read, parse
// (positions are assigned during parse), analyze.
func (r *Runner) processDocument(path string, disabled map[string]bool) DocumentOutcome {
	outcome := DocumentOutcome{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		outcome.Err = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}

	nb, err := notebook.Parse(path, data)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Notebook = nb
	outcome.Results = r.Engine.Analyze(nb, disabled)
	return outcome
}

// IsParseFailure reports whether a run error originated from a document
// that could not be deserialized.
func IsParseFailure(err error) bool {
	var parseErr *notebook.ParseError
	return errors.As(err, &parseErr)
}
