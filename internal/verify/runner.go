package verify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/quotegen/quotegen/internal/metrics"
)

// Result is the outcome of one check.
type Result struct {
	Name     string
	Passed   bool
	Err      error
	Duration time.Duration
}

// Report aggregates check results in run order.
type Report struct {
	Results []Result
}

// Total returns the number of checks run.
func (r *Report) Total() int {
	return len(r.Results)
}

// Passed returns the number of passing checks.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed {
			n++
		}
	}
	return n
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return r.Passed() == r.Total()
}

// Print writes the summary line and the overall banner.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "\nTest Summary: %d/%d tests passed\n", r.Passed(), r.Total())
	if r.OK() {
		fmt.Fprintln(w, "🎉 All tests passed!")
	} else {
		fmt.Fprintln(w, "❌ Some tests failed")
	}
}

// Runner executes checks one after another against a Client.
type Runner struct {
	client  *Client
	out     io.Writer
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewRunner creates a Runner. A nil logger or recorder discards output.
func NewRunner(client *Client, out io.Writer, logger *slog.Logger, rec metrics.Recorder) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if rec == nil {
		rec = metrics.NewNoop()
	}
	return &Runner{
		client:  client,
		out:     out,
		logger:  logger,
		metrics: rec,
	}
}

// Run executes checks sequentially. A check that errors or panics is
// recorded as failed and the remaining checks still run.
func (r *Runner) Run(ctx context.Context, checks []Check) *Report {
	fmt.Fprintf(r.out, "Testing Quote Generator API...\n\n")

	report := &Report{Results: make([]Result, 0, len(checks))}
	for _, check := range checks {
		res := r.runOne(ctx, check)
		report.Results = append(report.Results, res)

		status := metrics.CheckPassed
		switch {
		case res.Err != nil:
			status = metrics.CheckError
			fmt.Fprintf(r.out, "❌ %s: ERROR - %v\n\n", res.Name, res.Err)
		case res.Passed:
			fmt.Fprintf(r.out, "✅ %s: PASSED\n\n", res.Name)
		default:
			status = metrics.CheckFailed
			fmt.Fprintf(r.out, "❌ %s: FAILED\n\n", res.Name)
		}

		r.metrics.IncCheck(status)
		r.metrics.ObserveCheckDuration(res.Duration)
		r.logger.Debug("check finished",
			slog.String("check", res.Name),
			slog.String("status", status),
			slog.Duration("duration", res.Duration),
		)
	}

	r.logger.Info("verification finished",
		slog.String("base_url", r.client.BaseURL()),
		slog.Int("passed", report.Passed()),
		slog.Int("total", report.Total()),
	)
	return report
}

func (r *Runner) runOne(ctx context.Context, check Check) (res Result) {
	res.Name = check.Name
	start := time.Now()

	defer func() {
		if rvr := recover(); rvr != nil {
			res.Passed = false
			res.Err = fmt.Errorf("panic: %v", rvr)
		}
		res.Duration = time.Since(start)
	}()

	res.Passed, res.Err = check.Run(ctx, r.client, r.out)
	if res.Err != nil {
		res.Passed = false
	}
	return res
}
