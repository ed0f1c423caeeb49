package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec used for every HTTP body. It is configured to behave
// exactly like encoding/json.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client that encodes and
// decodes JSON with [JSON].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetJSONMarshaler(JSON.Marshal).
		SetJSONUnmarshaler(JSON.Unmarshal)

	return &HTTPClient{Client: client}
}

// HTTPClientOptions configures [NewConfiguredHTTPClient].
type HTTPClientOptions struct {
	// BaseURL is prefixed to every relative request URL.
	BaseURL string
	// Timeout bounds a whole request. Zero means no timeout.
	Timeout time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewConfiguredHTTPClient returns [NewHTTPClient] with opts applied.
func NewConfiguredHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := NewHTTPClient()
	client.SetBaseURL(opts.BaseURL)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return client
}
