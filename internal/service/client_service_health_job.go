package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/models"
)

// DefaultHealthInterval is used when Start gets a non-positive interval.
const DefaultHealthInterval = 30 * time.Second

type healthJob struct {
	healthService HealthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewHealthJob creates a healthJob that calls healthService.Check on a
// ticker. The job is idle until Start is called.
func NewHealthJob(healthService HealthService, logger *logger.Logger) HealthJob {
	return &healthJob{healthService: healthService, logger: logger}
}

// Start implements HealthJob. The goroutine exits when ctx is cancelled or
// Stop is called. report may be nil.
func (j *healthJob) Start(ctx context.Context, interval time.Duration, report func(models.HealthStatus, error)) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.check(jobCtx, report)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.check(jobCtx, report)
			}
		}
	}()
}

func (j *healthJob) check(ctx context.Context, report func(models.HealthStatus, error)) {
	status, err := j.healthService.Check(ctx)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		j.logger.Debug().Err(err).Msg("health check failed")
	} else {
		j.logger.Debug().Str("status", status.Status).Bool("model_loaded", status.ModelLoaded).Msg("health check")
	}

	if report != nil {
		report(status, err)
	}
}

// Stop implements HealthJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *healthJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
