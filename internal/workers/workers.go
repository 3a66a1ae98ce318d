package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// Runner starts a fixed set of background jobs and stops them in reverse
// start order. It is not safe for concurrent use; the application drives
// it from a single goroutine.
type Runner struct {
	jobs    []Job
	logger  *logger.Logger
	started int
}

func NewRunner(logger *logger.Logger, jobs ...Job) *Runner {
	return &Runner{jobs: jobs, logger: logger}
}

// Start launches every job in the order they were passed to NewRunner.
// If a job fails to start, the jobs already running are stopped in
// reverse order and the error is returned.
func (r *Runner) Start(ctx context.Context) error {
	for _, job := range r.jobs {
		if err := job.Start(ctx); err != nil {
			r.logger.Error().Err(err).Str("job", job.Name()).Msg("background job failed to start")
			r.Stop()

			return fmt.Errorf("start job %q: %w", job.Name(), err)
		}

		r.started++
		r.logger.Debug().Str("job", job.Name()).Msg("background job started")
	}

	return nil
}

// Stop stops the started jobs in reverse order and waits for each to
// finish. Jobs that never started are left untouched, so Stop is safe to
// call after a failed Start and is a no-op before Start.
func (r *Runner) Stop() {
	for i := r.started - 1; i >= 0; i-- {
		job := r.jobs[i]
		job.Stop()
		r.logger.Debug().Str("job", job.Name()).Msg("background job stopped")
	}

	r.started = 0
}
