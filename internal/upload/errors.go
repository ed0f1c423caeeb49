package upload

import "errors"

var (
	ErrUploadInProgress = errors.New("an upload is already in progress")
	ErrNoFile           = errors.New("no file in event")
)
