package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/store"
	"github.com/MKhiriev/go-spine-client/internal/upload"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/atotto/clipboard"
)

const annotatedSuffix = "-annotated.png"

type exportService struct {
	images    store.ImageStorage
	clipboard Clipboard

	logger *logger.Logger
}

// NewExportService creates an ExportService writing images to images and
// text to the system clipboard.
func NewExportService(images store.ImageStorage, logger *logger.Logger) ExportService {
	return &exportService{images: images, clipboard: systemClipboard{}, logger: logger}
}

// SaveAnnotatedImage implements ExportService.
func (s *exportService) SaveAnnotatedImage(ctx context.Context, resp models.AnalysisResponse, sourceName string) (string, error) {
	if resp.AnnotatedImage == "" {
		return "", ErrNoAnnotatedImage
	}

	data, err := base64.StdEncoding.DecodeString(resp.AnnotatedImage)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecodingImage, err)
	}

	path, err := s.images.Save(ctx, AnnotatedName(sourceName), data)
	if err != nil {
		return "", fmt.Errorf("save annotated image: %w", err)
	}

	return path, nil
}

// AnnotatedName derives the saved image name from the uploaded file name.
func AnnotatedName(sourceName string) string {
	base := filepath.Base(sourceName)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "xray"
	}
	return stem + annotatedSuffix
}

// Summary implements ExportService.
func (s *exportService) Summary(resp models.AnalysisResponse) string {
	var b strings.Builder

	cards, err := upload.AngleCards(resp.Angles)
	if err != nil {
		return ""
	}
	for _, card := range cards {
		b.WriteString(card.Label)
		b.WriteString(": ")
		b.WriteString(card.Value)
		if card.Detail != "" {
			b.WriteString(" (")
			b.WriteString(card.Detail)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}

	rows := upload.SegmentRows(resp.Angles.Segments)
	if len(rows) > 0 {
		b.WriteString("Segments:\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "  %s\t%s\n", row.Segment, row.Angle)
		}
	}

	if resp.ImageSize != nil {
		fmt.Fprintf(&b, "Image: %dx%d px\n", resp.ImageSize.Width, resp.ImageSize.Height)
	}

	return b.String()
}

// CopySummary implements ExportService.
func (s *exportService) CopySummary(resp models.AnalysisResponse) error {
	if err := s.clipboard.WriteAll(s.Summary(resp)); err != nil {
		return fmt.Errorf("copy summary: %w", err)
	}

	s.logger.Debug().Msg("summary copied to clipboard")
	return nil
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}
