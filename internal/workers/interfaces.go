// Package workers provides abstractions for managing long-running
// background jobs in the application.
// It defines the Job interface and a Runner aggregate that starts and
// stops multiple jobs in a unified way.
package workers

import "context"

// Job is the interface that must be implemented by any background job.
//
// Start launches the job's processing and is expected to return quickly,
// spawning goroutines internally; the goroutines must honor ctx. Stop
// blocks until the job has fully finished.
//
// Example implementation:
//
//	type MyJob struct{}
//
//	func (j *MyJob) Name() string { return "my-job" }
//
//	func (j *MyJob) Start(ctx context.Context) error {
//	    // spawn background processing bound to ctx
//	    return nil
//	}
//
//	func (j *MyJob) Stop() {
//	    // signal the goroutines and wait for them
//	}
type Job interface {
	Name() string
	Start(ctx context.Context) error
	Stop()
}
