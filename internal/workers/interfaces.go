// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns; the work itself continues in the
// background until ctx is cancelled or Stop is called. Stop blocks until the
// worker has exited.
//
// Example implementation:
//
//	type MyWorker struct{ job service.HealthJob }
//
//	func (w *MyWorker) Run(ctx context.Context) { w.job.Start(ctx, time.Minute, nil) }
//	func (w *MyWorker) Stop()                  { w.job.Stop() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
