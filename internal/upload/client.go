package upload

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/utils"
	"github.com/MKhiriev/go-spine-client/models"
)

// Client drives one [Surface] through repeated upload cycles.
type Client struct {
	analyzer Analyzer
	surface  Surface
	tokens   TokenGenerator

	mu         sync.Mutex
	inFlight   bool
	token      string
	state      models.UIState
	last       *models.AnalysisResponse
	dropActive bool

	logger *logger.Logger
}

// NewClient returns a Client in the idle state.
func NewClient(analyzer Analyzer, surface Surface, tokens TokenGenerator, logger *logger.Logger) *Client {
	return &Client{
		analyzer: analyzer,
		surface:  surface,
		tokens:   tokens,
		state:    models.StateIdle,
		logger:   logger,
	}
}

// DragEnter marks the drop zone. It has no effect on the upload state.
func (c *Client) DragEnter() {
	c.setDropActive(true)
}

// DragLeave unmarks the drop zone.
func (c *Client) DragLeave() {
	c.setDropActive(false)
}

func (c *Client) setDropActive(active bool) {
	c.mu.Lock()
	c.dropActive = active
	c.mu.Unlock()

	c.surface.SetDropTargetActive(active)
}

// SelectFile handles a drop or picker event. A drop always clears the drop
// zone mark. Only the first path is submitted; an event with no paths
// returns [ErrNoFile] and changes nothing else.
//
// The returned error is the outcome of [Client.Submit] for the chosen file.
func (c *Client) SelectFile(ctx context.Context, ev models.FileEvent) (models.SelectedFile, error) {
	if ev.Source == models.SourceDrop {
		c.mu.Lock()
		wasActive := c.dropActive
		c.dropActive = false
		c.mu.Unlock()

		if wasActive {
			c.surface.SetDropTargetActive(false)
		}
	}

	if len(ev.Paths) == 0 {
		return models.SelectedFile{}, ErrNoFile
	}

	if len(ev.Paths) > 1 {
		c.logger.Debug().
			Str("source", ev.Source.String()).
			Int("ignored", len(ev.Paths)-1).
			Msg("more than one file selected, using the first")
	}

	file := models.NewSelectedFile(ev.Paths[0])
	return file, c.Submit(ctx, file)
}

// Submit runs one upload cycle for file and returns its failure, if any.
// The failure has already been shown on the surface when Submit returns.
func (c *Client) Submit(ctx context.Context, file models.SelectedFile) error {
	token, ok := c.acquire()
	if !ok {
		c.logger.Warn().Str("file", file.Name).Msg("upload rejected: another upload in progress")
		return ErrUploadInProgress
	}
	defer c.release(token)

	log := c.logger.WithRequestID(token)
	log.Info().Str("file", file.Name).Msg("upload started")

	c.surface.SetLoadingVisible(true)
	c.surface.SetResultsVisible(false)
	c.surface.SetErrorVisible(false)
	defer c.surface.SetLoadingVisible(false)

	resp, err := c.analyzer.Analyze(utils.WithRequestID(ctx, token), file)
	if err == nil {
		err = c.Render(resp)
	}
	if err != nil {
		log.Error().Err(err).Str("file", file.Name).Msg("upload failed")
		c.fail(err)
		return err
	}

	log.Info().Str("file", file.Name).Msg("upload finished")
	return nil
}

// Render projects resp onto the surface and reveals the results region.
// A response without the three angle summaries is rejected with an error
// wrapping models.ErrMalformedResponse before anything is drawn.
func (c *Client) Render(resp models.AnalysisResponse) error {
	cards, err := AngleCards(resp.Angles)
	if err != nil {
		return err
	}

	c.surface.SetImageSource(ImageSource(resp.AnnotatedImage))
	c.surface.SetAngleCards(cards)
	c.surface.SetSegmentRows(SegmentRows(resp.Angles.Segments))
	c.surface.SetResultsVisible(true)

	c.mu.Lock()
	c.state = models.StateResults
	c.last = &resp
	c.mu.Unlock()

	return nil
}

func (c *Client) fail(err error) {
	c.surface.SetErrorText(ErrorText(err.Error()))
	c.surface.SetErrorVisible(true)

	c.mu.Lock()
	c.state = models.StateError
	c.mu.Unlock()
}

func (c *Client) acquire() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return "", false
	}

	c.inFlight = true
	c.token = c.tokens.Generate()
	c.state = models.StateLoading
	return c.token, true
}

func (c *Client) release(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight && c.token == token {
		c.inFlight = false
		c.token = ""
	}
}

// State returns the current display state.
func (c *Client) State() models.UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Last returns the most recently rendered response.
func (c *Client) Last() (models.AnalysisResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return models.AnalysisResponse{}, false
	}
	return *c.last, true
}

// InFlight reports whether a submit is outstanding.
func (c *Client) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}
