package service

import (
	"context"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/models"
)

type healthService struct {
	adapter adapter.AnalysisAdapter
}

func NewHealthService(analysisAdapter adapter.AnalysisAdapter) HealthService {
	return &healthService{adapter: analysisAdapter}
}

// Check implements HealthService.
func (s *healthService) Check(ctx context.Context) (models.HealthStatus, error) {
	status, err := s.adapter.Health(ctx)
	return status, mapAdapterError(err)
}
