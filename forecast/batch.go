package forecast

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job is one independent series to forecast in a batch.
type Job struct {
	Name    string
	Values  []float64
	P       int
	Horizon int
	Method  Method
}

// BatchResult holds the outcome of one Job. Err is set instead of Forecasts when the job failed.
type BatchResult struct {
	Name      string
	Forecasts []float64
	Err       error
}

// Batch forecasts jobs concurrently with at most limit running at once (no limit when limit <= 0).
//
// A failing job records its error on its own BatchResult and does not affect the others. Results are in job
// order. If ctx is canceled, jobs that have not started are skipped and ctx.Err() is returned.
// opts apply to every job; Job.Method overrides any WithMethod option.
func Batch(ctx context.Context, jobs []Job, limit int, opts ...Option) ([]BatchResult, error) {
	results := make([]BatchResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			jobOpts := make([]Option, 0, len(opts)+1)
			jobOpts = append(jobOpts, opts...)
			jobOpts = append(jobOpts, WithMethod(job.Method))

			results[i].Name = job.Name
			f, err := New(job.Values, job.Horizon, jobOpts...)
			if err == nil {
				results[i].Forecasts, err = f.Forecast(job.P)
			}
			results[i].Err = err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
