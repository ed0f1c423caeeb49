package adapter

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-spine-client/models"
)

var (
	ErrMalformedResponse = models.ErrMalformedResponse
	ErrEmptyAddress      = errors.New("empty address")

	ErrBadRequest          = errors.New("bad request")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusUnsupportedMediaType:  ErrUnsupportedMedia,
	http.StatusUnprocessableEntity:   ErrUnprocessable,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// StatusError is a non-2xx answer from the analysis server.
// Its Error text is Message alone, so it can be shown to the user as is.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel for e.Code.
func (e *StatusError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.Code]
	return ok && sentinel == target
}
