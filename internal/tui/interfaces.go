package tui

import (
	"context"

	"github.com/MKhiriev/go-spine-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tui_mock.go -package=mock

// Uploader is the part of the upload cycle the screen drives.
type Uploader interface {
	DragEnter()
	DragLeave()

	// SelectFile submits the first path of ev and returns the outcome.
	SelectFile(ctx context.Context, ev models.FileEvent) (models.SelectedFile, error)

	// Last returns the most recently rendered response.
	Last() (models.AnalysisResponse, bool)
}
