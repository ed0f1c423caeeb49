// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the spine analysis server.
//
// The primary abstraction is [AnalysisAdapter], which decouples the upload
// flow from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPAnalysisAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to [*StatusError], whose
// Error text is the message shown to the user. Status sentinels such as
// [ErrInternalServerError] match a [*StatusError] through [errors.Is].
// Bodies that cannot be decoded wrap [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-spine-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/analysis_adapter_mock.go -package=mock

// AnalysisAdapter defines transport-agnostic communication with the analysis
// server.
type AnalysisAdapter interface {
	// Analyze uploads file as the single multipart field "file" to
	// POST /analyze and decodes the success body. The request token stored in
	// ctx (see utils.WithRequestID) is sent as X-Request-ID.
	//
	// The decoded response is not shape-checked here; that is the
	// validators package's job.
	Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error)

	// Health fetches GET /health.
	Health(ctx context.Context) (models.HealthStatus, error)
}
