// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/app"
)

// classifiedError tags a transport error with a service sentinel without
// changing its text.
type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string   { return e.err.Error() }
func (e *classifiedError) Unwrap() []error { return []error{e.kind, e.err} }

// mapAdapterError tags well-known server rejections with a service sentinel.
// Anything else is returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrServiceUnavailable) && strings.HasPrefix(statusErr.Message, app.MsgModelNotLoaded):
		return &classifiedError{kind: ErrModelNotLoaded, err: err}
	case errors.Is(err, adapter.ErrBadRequest) && statusErr.Message == app.MsgEmptyFile:
		return &classifiedError{kind: ErrEmptyFile, err: err}
	case errors.Is(err, adapter.ErrBadRequest) && strings.HasPrefix(statusErr.Message, app.MsgInvalidImagePrefix):
		return &classifiedError{kind: ErrInvalidImage, err: err}
	}

	return err
}
