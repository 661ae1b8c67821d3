package analysis

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Observer is told how long each analysis took, by result kind.
type Observer interface {
	AnalysisDuration(kind string, d time.Duration)
}

// Status is what a client polls for.
type Status struct {
	Busy   bool    `json:"busy"`
	Result *Result `json:"result,omitempty"`
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	Timeout  time.Duration
	Observer Observer

	// OnDone is called with every completed result.
	OnDone func(Result)
}

// Runner runs one analysis at a time in the background.
type Runner struct {
	analyzer Analyzer
	opts     RunnerOptions

	mu     sync.Mutex
	busy   bool
	result *Result
}

// NewRunner creates a runner around a.
func NewRunner(a Analyzer, opts RunnerOptions) *Runner {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Runner{analyzer: a, opts: opts}
}

// Request starts an analysis of in unless one is already running, in which
// case it reports false. The previous result is cleared when a request starts.
// The analysis outlives ctx's cancellation but keeps its values.
func (r *Runner) Request(ctx context.Context, in Input) bool {
	r.mu.Lock()
	if r.busy {
		r.mu.Unlock()
		return false
	}
	r.busy = true
	r.result = nil
	r.mu.Unlock()

	go r.run(context.WithoutCancel(ctx), in)
	return true
}

func (r *Runner) run(ctx context.Context, in Input) {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	start := time.Now()
	res, err := r.analyzer.Analyze(ctx, in)
	if err != nil {
		slog.Error("Analysis failed", "analyzer", r.analyzer.Name(), "error", err)
		res = ErrorResult(err)
	}
	elapsed := time.Since(start)
	slog.Info("Analysis finished",
		"analyzer", r.analyzer.Name(),
		"kind", res.Kind,
		"duration_ms", elapsed.Milliseconds(),
	)
	if r.opts.Observer != nil {
		r.opts.Observer.AnalysisDuration(string(res.Kind), elapsed)
	}

	r.mu.Lock()
	r.result = &res
	r.busy = false
	r.mu.Unlock()

	if r.opts.OnDone != nil {
		r.opts.OnDone(res)
	}
}

// Status returns whether an analysis is running and the last result.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := Status{Busy: r.busy}
	if r.result != nil {
		res := *r.result
		st.Result = &res
	}
	return st
}
