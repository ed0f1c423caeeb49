// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/models"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("tui: missing dependency")

// errorHint returns a suggestion shown under the error line. The error line
// itself always carries the server's text unchanged.
func errorHint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrModelNotLoaded):
		return "The server has no model weights. Place best.pth in models/ and restart it."
	case errors.Is(err, service.ErrEmptyFile):
		return "The selected file has no content."
	case errors.Is(err, service.ErrInvalidImage):
		return "The server could not decode the file as an image."
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return "The file is larger than the server accepts."
	case errors.Is(err, models.ErrMalformedResponse):
		return "The server answered with an unexpected response."
	case isUnreachable(err):
		return "No network or the server is unavailable."
	}

	return ""
}

func isUnreachable(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
