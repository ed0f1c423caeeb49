package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyFileName is returned when a name reduces to nothing usable.
	ErrEmptyFileName = errors.New("empty file name")

	// ErrEmptyOutputDir is returned when storage is created without a root.
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrCreatingDir is returned when the output directory cannot be created.
	ErrCreatingDir = errors.New("failed to create output directory")

	// ErrWritingFile is returned when the image cannot be written.
	ErrWritingFile = errors.New("failed to write file")
)
