package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("build version is not specified")
	ErrNoAnnotatedImage      = errors.New("response has no annotated image")
	ErrDecodingImage         = errors.New("annotated image is not valid base64")
	ErrClipboardUnavailable  = errors.New("clipboard is unavailable")

	// Known server rejections. They are matched with errors.Is; the error
	// text stays the server's own message.
	ErrModelNotLoaded = errors.New("model not loaded")
	ErrEmptyFile      = errors.New("empty file")
	ErrInvalidImage   = errors.New("invalid image")
)
