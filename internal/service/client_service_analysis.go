package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/validators"
	"github.com/MKhiriev/go-spine-client/models"
)

type analysisService struct {
	adapter   adapter.AnalysisAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewAnalysisService creates an AnalysisService that validates every success
// body before returning it.
func NewAnalysisService(analysisAdapter adapter.AnalysisAdapter, validator validators.Validator, logger *logger.Logger) AnalysisService {
	return &analysisService{adapter: analysisAdapter, validator: validator, logger: logger}
}

// Analyze implements AnalysisService.
func (s *analysisService) Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error) {
	resp, err := s.adapter.Analyze(ctx, file)
	if err != nil {
		return models.AnalysisResponse{}, mapAdapterError(err)
	}

	if err = s.validator.Validate(ctx, resp); err != nil {
		s.logger.Warn().Err(err).Str("file", file.Name).Msg("analysis response rejected")
		return models.AnalysisResponse{}, fmt.Errorf("validate analysis response: %w", err)
	}

	return resp, nil
}
