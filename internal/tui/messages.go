package tui

import "github.com/MKhiriev/go-spine-client/models"

// Surface messages. They are applied in the order the upload cycle emits them.
type (
	dropTargetMsg     struct{ active bool }
	loadingMsg        struct{ visible bool }
	resultsVisibleMsg struct{ visible bool }
	errorVisibleMsg   struct{ visible bool }
	errorTextMsg      struct{ text string }
	imageSourceMsg    struct{ src string }
	angleCardsMsg     struct{ cards []models.AngleCard }
	segmentRowsMsg    struct{ rows []models.SegmentRow }
)

type uploadDoneMsg struct {
	file models.SelectedFile
	err  error
}

type healthMsg struct {
	status models.HealthStatus
	err    error
}

type savedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}
