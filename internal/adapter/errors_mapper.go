package adapter

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-spine-client/internal/utils"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response and a [*StatusError] otherwise.
//
// The message is the body's "detail" when the body decodes and detail is
// non-empty, "HTTP <code>" when it decodes with an empty detail, and the
// status phrase when it does not decode.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	var body models.AnalysisError
	if err := utils.JSON.Unmarshal(resp.Body(), &body); err != nil {
		return &StatusError{Code: code, Message: statusPhrase(code)}
	}

	if msg := body.Message(); msg != "" {
		return &StatusError{Code: code, Message: msg}
	}

	return &StatusError{Code: code, Message: fmt.Sprintf("HTTP %d", code)}
}

func statusPhrase(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", code)
}
