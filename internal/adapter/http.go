package adapter

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-spine-client/internal/config"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/utils"
	"github.com/MKhiriev/go-spine-client/models"
	"golang.org/x/crypto/blake2b"
)

const (
	analyzePath = "/analyze"
	healthPath  = "/health"

	// FileField is the multipart field name the server reads the image from.
	FileField = "file"

	// RequestIDHeader carries the per-upload request token.
	RequestIDHeader = "X-Request-ID"
)

type httpAnalysisAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAnalysisAdapter constructs an HTTP/REST implementation of
// [AnalysisAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL, request timeout and userAgent.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAnalysisAdapter(adapterCfg config.ClientAdapter, userAgent string, logger *logger.Logger) (AnalysisAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewConfiguredHTTPClient(utils.HTTPClientOptions{
		BaseURL:   baseURL,
		Timeout:   adapterCfg.RequestTimeout,
		UserAgent: userAgent,
	})

	return &httpAnalysisAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Analyze implements [AnalysisAdapter]. The file is opened lazily and read
// once; a BLAKE2b-256 digest of the uploaded bytes is logged at debug level.
func (h *httpAnalysisAdapter) Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error) {
	log := h.logger
	requestID, hasRequestID := utils.GetRequestIDFromContext(ctx)
	if hasRequestID {
		log = log.WithRequestID(requestID)
	}

	content, err := file.Open()
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("open selected file: %w", err)
	}
	defer content.Close()

	digest, err := blake2b.New256(nil)
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("init upload digest: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetFileReader(FileField, file.Name, io.TeeReader(content, digest))
	if hasRequestID {
		req.SetHeader(RequestIDHeader, requestID)
	}

	resp, err := req.Post(analyzePath)
	if err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("analyze request: %w", err)
	}

	log.Debug().
		Str("file", file.Name).
		Str("blake2b", hex.EncodeToString(digest.Sum(nil))).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("analyze request finished")

	if err = mapHTTPError(resp); err != nil {
		return models.AnalysisResponse{}, err
	}

	var out models.AnalysisResponse
	if err = utils.JSON.Unmarshal(resp.Body(), &out); err != nil {
		return models.AnalysisResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return out, nil
}

// Health implements [AnalysisAdapter].
func (h *httpAnalysisAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(healthPath)
	if err != nil {
		return status, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return status, err
	}

	if err = utils.JSON.Unmarshal(resp.Body(), &status); err != nil {
		return status, fmt.Errorf("decode health response: %w", err)
	}

	return status, nil
}
