package service

import (
	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/store"
	"github.com/MKhiriev/go-spine-client/internal/validators"
)

type ClientServices struct {
	AnalysisService AnalysisService
	HealthService   HealthService
	HealthJob       HealthJob
	ExportService   ExportService
	AppInfoService  AppInfoService
}

func NewClientServices(
	storages *store.ClientStorages,
	analysisAdapter adapter.AnalysisAdapter,
	appInfo AppInfoService,
	logger *logger.Logger,
) *ClientServices {
	healthSvc := NewHealthService(analysisAdapter)

	return &ClientServices{
		AnalysisService: NewAnalysisService(analysisAdapter, validators.NewAnalysisResponseValidator(), logger),
		HealthService:   healthSvc,
		HealthJob:       NewHealthJob(healthSvc, logger),
		ExportService:   NewExportService(storages.Images, logger),
		AppInfoService:  appInfo,
	}
}
