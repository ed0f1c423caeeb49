// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package upload owns the upload/render interaction cycle: it takes a file the
// user dropped or picked, sends it for analysis and projects the outcome onto
// an injected [Surface].
//
// Within one [Client.Submit] the surface is driven in a fixed order:
//
//  1. show loading, hide results, hide error
//  2. send the file
//  3. either render the results or show "Error: <message>"
//  4. hide loading (always, exactly once)
//
// Only one submit may be outstanding. A second one is rejected with
// [ErrUploadInProgress] and leaves the surface untouched.
package upload

import (
	"context"

	"github.com/MKhiriev/go-spine-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/upload_mock.go -package=mock

// Surface is the set of display regions the upload cycle writes to.
// Implementations must apply calls in the order they are made.
type Surface interface {
	// SetDropTargetActive marks or unmarks the drop zone as a drag target.
	SetDropTargetActive(active bool)

	SetLoadingVisible(visible bool)
	SetResultsVisible(visible bool)
	SetErrorVisible(visible bool)

	// SetErrorText replaces the error region text.
	SetErrorText(text string)

	// SetImageSource replaces the annotated image source (a data URI).
	SetImageSource(src string)

	// SetAngleCards clears the summary cards and shows cards instead.
	SetAngleCards(cards []models.AngleCard)

	// SetSegmentRows clears the segment table and shows rows instead.
	SetSegmentRows(rows []models.SegmentRow)
}

// Analyzer sends a file for analysis and returns a shape-checked response.
type Analyzer interface {
	Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error)
}

// TokenGenerator produces per-submit request tokens.
type TokenGenerator interface {
	Generate() string
}
