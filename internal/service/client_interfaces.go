package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-spine-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// AnalysisService sends an X-ray for analysis and guarantees the returned
// response has the shape the renderer needs.
type AnalysisService interface {
	// Analyze uploads file and validates the response. Shape problems are
	// returned as errors wrapping models.ErrMalformedResponse.
	Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error)
}

// HealthService reports whether the analysis server can take uploads.
type HealthService interface {
	// Check asks the server once.
	Check(ctx context.Context) (models.HealthStatus, error)
}

// HealthJob defines the contract for a background worker that periodically
// checks server health.
type HealthJob interface {
	// Start launches the background goroutine. It checks once immediately
	// and then every interval, defaulting to 30 seconds if interval is zero
	// or negative, and passes every result to report. Any previously running
	// job is stopped first.
	Start(ctx context.Context, interval time.Duration, report func(models.HealthStatus, error))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// ExportService turns a rendered result into artefacts the user keeps.
type ExportService interface {
	// SaveAnnotatedImage decodes the annotated image and stores it as
	// "<source stem>-annotated.png". Returns the written path.
	SaveAnnotatedImage(ctx context.Context, resp models.AnalysisResponse, sourceName string) (string, error)

	// Summary renders the measurements as plain text.
	Summary(resp models.AnalysisResponse) string

	// CopySummary puts Summary(resp) on the system clipboard.
	CopySummary(resp models.AnalysisResponse) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo

	// UserAgent is the User-Agent header value sent to the server.
	UserAgent() string
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
