// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"os"
	"path/filepath"
)

// FileSource names where a [FileEvent] came from.
type FileSource int

const (
	// SourceDrop is a drag-and-drop onto the drop zone. In a terminal this
	// arrives as a bracketed paste of one or more file paths.
	SourceDrop FileSource = iota + 1

	// SourcePicker is a selection made in the file-picker screen.
	SourcePicker

	// SourceArgument is a path given on the command line.
	SourceArgument
)

// String returns a short label used in logs.
func (s FileSource) String() string {
	switch s {
	case SourceDrop:
		return "drop"
	case SourcePicker:
		return "picker"
	case SourceArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// FileEvent is a user interaction that may carry files.
// Only the first path is ever used.
type FileEvent struct {
	Source FileSource
	Paths  []string
}

// SelectedFile is an opaque blob with a filename. The content is not read
// until the transport opens it; no type or size check is done on the client.
type SelectedFile struct {
	// Name is the filename sent in the multipart part.
	Name string

	// Path locates the content on disk.
	Path string
}

// NewSelectedFile builds a SelectedFile whose Name is the base name of path.
func NewSelectedFile(path string) SelectedFile {
	return SelectedFile{Name: filepath.Base(path), Path: path}
}

// Open opens the file content for reading.
func (f SelectedFile) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}
