package upload

import (
	"fmt"

	"github.com/MKhiriev/go-spine-client/models"
)

const (
	// ImageSourcePrefix is prepended verbatim to the base64 payload.
	ImageSourcePrefix = "data:image/png;base64,"

	// ErrorPrefix starts every text shown in the error region.
	ErrorPrefix = "Error: "

	LabelCobb     = "Cobb Angle"
	LabelKyphosis = "Kyphosis (T1-T12)"
	LabelLordosis = "Lordosis (L1-L5)"
)

// ImageSource builds the annotated image data URI. The payload is not
// decoded or checked.
func ImageSource(annotatedImage string) string {
	return ImageSourcePrefix + annotatedImage
}

// ErrorText is the error region text for a failure message.
func ErrorText(message string) string {
	return ErrorPrefix + message
}

// AngleCards projects the three summary cards in fixed order: Cobb,
// kyphosis, lordosis.
func AngleCards(angles *models.Angles) ([]models.AngleCard, error) {
	if angles == nil || angles.Cobb == nil || angles.Kyphosis == nil || angles.Lordosis == nil {
		return nil, fmt.Errorf("%w: missing angle summary", models.ErrMalformedResponse)
	}

	return []models.AngleCard{
		{
			Kind:   models.AngleCobb,
			Label:  LabelCobb,
			Value:  angles.Cobb.CobbAngle.Degrees(),
			Detail: angles.Cobb.UpperVertebra + " – " + angles.Cobb.LowerVertebra,
		},
		{
			Kind:  models.AngleKyphosis,
			Label: LabelKyphosis,
			Value: angles.Kyphosis.KyphosisAngle.Degrees(),
		},
		{
			Kind:  models.AngleLordosis,
			Label: LabelLordosis,
			Value: angles.Lordosis.LordosisAngle.Degrees(),
		},
	}, nil
}

// SegmentRows projects one row per segment, in input order.
func SegmentRows(segments []models.SegmentAngle) []models.SegmentRow {
	rows := make([]models.SegmentRow, 0, len(segments))
	for _, s := range segments {
		rows = append(rows, models.SegmentRow{Segment: s.Segment, Angle: s.Angle.Degrees()})
	}
	return rows
}
