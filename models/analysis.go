// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// AnalysisResponse is the success body returned by POST /analyze.
// Required fields carry `validate` tags; the validators package checks them
// before the response is rendered.
type AnalysisResponse struct {
	// AnnotatedImage is the base64-encoded PNG produced by the server,
	// without a data-URI prefix.
	AnnotatedImage string `json:"annotated_image" validate:"required"`

	// Angles groups every angle measurement computed for the X-ray.
	Angles *Angles `json:"angles" validate:"required"`

	// Landmarks holds the detected landmark coordinates per vertebra.
	// Optional; older servers do not send it.
	Landmarks []VertebraLandmarks `json:"landmarks,omitempty"`

	// ImageSize is the pixel size of the submitted image. Optional.
	ImageSize *ImageSize `json:"image_size,omitempty"`
}

// Angles is the "angles" object of an [AnalysisResponse].
type Angles struct {
	Cobb     *CobbAngle     `json:"cobb" validate:"required"`
	Kyphosis *KyphosisAngle `json:"kyphosis" validate:"required"`
	Lordosis *LordosisAngle `json:"lordosis" validate:"required"`

	// Segments is rendered in the order received. The key must be present
	// but the list may be empty.
	Segments []SegmentAngle `json:"segments" validate:"required,dive"`
}

// CobbAngle is the maximal curvature between two reference vertebrae.
// The vertebra labels are empty when no endplate pair is tilted, e.g. on a
// straight spine.
type CobbAngle struct {
	CobbAngle     Measurement `json:"cobb_angle" validate:"required"`
	UpperVertebra string      `json:"upper_vertebra"`
	LowerVertebra string      `json:"lower_vertebra"`
}

// KyphosisAngle is the thoracic curvature (T1-T12).
type KyphosisAngle struct {
	KyphosisAngle Measurement `json:"kyphosis_angle" validate:"required"`
}

// LordosisAngle is the lumbar curvature (L1-L5).
type LordosisAngle struct {
	LordosisAngle Measurement `json:"lordosis_angle" validate:"required"`
}

// SegmentAngle is the angle measured over one vertebral interval.
type SegmentAngle struct {
	Segment string      `json:"segment" validate:"required"`
	Angle   Measurement `json:"angle" validate:"required"`
}

// VertebraLandmarks lists named landmark points of a single vertebra.
type VertebraLandmarks struct {
	Vertebra  string           `json:"vertebra"`
	Landmarks map[string]Point `json:"landmarks"`
}

// Point is a pixel coordinate in the original image.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImageSize is the width and height of the submitted image in pixels.
type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AnalysisError is the body the server sends with a non-2xx status.
// Detail is usually a string but FastAPI validation errors send a list,
// so it is kept raw.
type AnalysisError struct {
	Detail jsoniter.RawMessage `json:"detail"`
}

// Message returns Detail as text: the unquoted string when Detail is a JSON
// string, the compact JSON otherwise, and "" when Detail is absent or null.
func (e AnalysisError) Message() string {
	if len(e.Detail) == 0 || string(e.Detail) == "null" {
		return ""
	}

	var s string
	if err := codec.Unmarshal(e.Detail, &s); err == nil {
		return s
	}

	return string(e.Detail)
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// Ready reports whether the server answered "ok" and has its model loaded.
func (h HealthStatus) Ready() bool {
	return h.Status == "ok" && h.ModelLoaded
}

// ErrMalformedResponse marks a success body that cannot be decoded or does
// not have the expected shape.
var ErrMalformedResponse = errors.New("malformed analysis response")
