// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the client's local storage. The client keeps no
// database; the only thing it writes is annotated images the user chooses
// to save.
package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ImageStorage persists image bytes under a file name.
type ImageStorage interface {
	// Save writes data as name inside the storage root and returns the full
	// path written. name is reduced to its base name; an existing file is
	// replaced.
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Dir returns the storage root.
	Dir() string
}
