package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/models"
)

// HealthWorker runs a [service.HealthJob] as a [Worker].
type HealthWorker struct {
	job      service.HealthJob
	interval time.Duration
	report   func(models.HealthStatus, error)
}

func NewHealthWorker(job service.HealthJob, interval time.Duration, report func(models.HealthStatus, error)) *HealthWorker {
	return &HealthWorker{job: job, interval: interval, report: report}
}

func (w *HealthWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.report)
}

func (w *HealthWorker) Stop() {
	w.job.Stop()
}
