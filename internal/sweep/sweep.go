// Package sweep runs many presets and seeds headlessly in parallel and
// reports how active each one stays.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"cavis/internal/ca"
	"cavis/internal/core"
	"cavis/internal/record"
	"cavis/internal/session"
	"cavis/internal/stats"

	"golang.org/x/sync/errgroup"
)

// Job is one scenario: a preset run from one seed.
type Job struct {
	Preset ca.Preset
	Seed   int64
}

func (j Job) String() string {
	return fmt.Sprintf("%s %q seed=%d", j.Preset.Rule.Family(), ca.Rulestring(j.Preset.Rule), j.Seed)
}

// Result pairs a job with the statistics of its run.
type Result struct {
	Job     Job
	Summary stats.Summary
}

// Options tunes Run.
type Options struct {
	Size    core.Size
	Ticks   int
	Workers int
}

// Jobs expands every preset of the given families across seeds.
func Jobs(families []core.Family, seeds []int64) []Job {
	var jobs []Job
	for _, f := range families {
		for _, p := range ca.Presets(f) {
			for _, seed := range seeds {
				jobs = append(jobs, Job{Preset: p, Seed: seed})
			}
		}
	}
	return jobs
}

// Run simulates every job with at most opts.Workers running at once. Results
// are returned in job order. The first failure cancels the remaining jobs.
func Run(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			sess := session.New(session.Setup{
				Size:     opts.Size,
				Rule:     job.Preset.Rule,
				Boundary: job.Preset.Boundary,
				Fill:     job.Preset.Fill,
				Seed:     job.Seed,
			})
			series, err := record.Capture(ctx, sess, nil, record.CaptureOptions{Ticks: opts.Ticks})
			if err != nil {
				return fmt.Errorf("sweep %s: %w", job, err)
			}
			results[i] = Result{Job: job, Summary: stats.Summarize(series)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ByActivity orders results from most to least changed cells per tick.
func ByActivity(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Summary.MeanChanged > results[j].Summary.MeanChanged
	})
}
