// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/mock"
	"github.com/MKhiriev/go-spine-client/internal/utils"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingSurface logs every call as a short string, in order.
type recordingSurface struct {
	mu    sync.Mutex
	calls []string

	errorText string
	imageSrc  string
	cards     []models.AngleCard
	rows      []models.SegmentRow
}

func (s *recordingSurface) record(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *recordingSurface) SetDropTargetActive(active bool) { s.record("drop=%t", active) }
func (s *recordingSurface) SetLoadingVisible(visible bool)  { s.record("loading=%t", visible) }
func (s *recordingSurface) SetResultsVisible(visible bool)  { s.record("results=%t", visible) }
func (s *recordingSurface) SetErrorVisible(visible bool)    { s.record("error=%t", visible) }

func (s *recordingSurface) SetErrorText(text string) {
	s.record("errorText")
	s.mu.Lock()
	s.errorText = text
	s.mu.Unlock()
}

func (s *recordingSurface) SetImageSource(src string) {
	s.record("image")
	s.mu.Lock()
	s.imageSrc = src
	s.mu.Unlock()
}

func (s *recordingSurface) SetAngleCards(cards []models.AngleCard) {
	s.record("cards")
	s.mu.Lock()
	s.cards = cards
	s.mu.Unlock()
}

func (s *recordingSurface) SetSegmentRows(rows []models.SegmentRow) {
	s.record("rows")
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

func (s *recordingSurface) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func (s *recordingSurface) count(call string) int {
	n := 0
	for _, c := range s.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

// analyzerFunc adapts a function to Analyzer.
type analyzerFunc func(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error)

func (f analyzerFunc) Analyze(ctx context.Context, file models.SelectedFile) (models.AnalysisResponse, error) {
	return f(ctx, file)
}

func sampleResponse() models.AnalysisResponse {
	return models.AnalysisResponse{
		AnnotatedImage: "iVBOR...",
		Angles: &models.Angles{
			Cobb:     &models.CobbAngle{CobbAngle: "23.4", UpperVertebra: "T5", LowerVertebra: "T11"},
			Kyphosis: &models.KyphosisAngle{KyphosisAngle: "38.1"},
			Lordosis: &models.LordosisAngle{LordosisAngle: "45"},
			Segments: []models.SegmentAngle{
				{Segment: "L1-L2", Angle: "12.3"},
				{Segment: "L2-L3", Angle: "9.8"},
			},
		},
	}
}

func newRecordingClient(analyzer Analyzer) (*Client, *recordingSurface) {
	surface := &recordingSurface{}
	return NewClient(analyzer, surface, utils.NewUUIDGenerator(), logger.Nop()), surface
}

func respondWith(resp models.AnalysisResponse, err error) Analyzer {
	return analyzerFunc(func(context.Context, models.SelectedFile) (models.AnalysisResponse, error) {
		return resp, err
	})
}

// ── Submit ordering (gomock) ─────────────────────────────────────────────────

func TestClient_Submit_SuccessOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mock.NewMockSurface(ctrl)
	analyzer := mock.NewMockAnalyzer(ctrl)
	tokens := mock.NewMockTokenGenerator(ctrl)

	file := models.NewSelectedFile("/scans/xray.png")
	resp := sampleResponse()

	gomock.InOrder(
		tokens.EXPECT().Generate().Return("token-1"),
		surface.EXPECT().SetLoadingVisible(true),
		surface.EXPECT().SetResultsVisible(false),
		surface.EXPECT().SetErrorVisible(false),
		analyzer.EXPECT().Analyze(gomock.Any(), file).DoAndReturn(
			func(ctx context.Context, _ models.SelectedFile) (models.AnalysisResponse, error) {
				requestID, ok := utils.GetRequestIDFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, "token-1", requestID)
				return resp, nil
			},
		),
		surface.EXPECT().SetImageSource("data:image/png;base64,iVBOR..."),
		surface.EXPECT().SetAngleCards(gomock.Len(3)),
		surface.EXPECT().SetSegmentRows(gomock.Len(2)),
		surface.EXPECT().SetResultsVisible(true),
		surface.EXPECT().SetLoadingVisible(false),
	)

	c := NewClient(analyzer, surface, tokens, logger.Nop())
	require.NoError(t, c.Submit(context.Background(), file))

	assert.Equal(t, models.StateResults, c.State())
	assert.False(t, c.InFlight())
}

func TestClient_Submit_FailureOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	surface := mock.NewMockSurface(ctrl)
	analyzer := mock.NewMockAnalyzer(ctrl)
	tokens := mock.NewMockTokenGenerator(ctrl)

	file := models.NewSelectedFile("xray.png")
	failure := &adapter.StatusError{Code: 500, Message: "model failed"}

	gomock.InOrder(
		tokens.EXPECT().Generate().Return("token-1"),
		surface.EXPECT().SetLoadingVisible(true),
		surface.EXPECT().SetResultsVisible(false),
		surface.EXPECT().SetErrorVisible(false),
		analyzer.EXPECT().Analyze(gomock.Any(), file).Return(models.AnalysisResponse{}, failure),
		surface.EXPECT().SetErrorText("Error: model failed"),
		surface.EXPECT().SetErrorVisible(true),
		surface.EXPECT().SetLoadingVisible(false),
	)

	c := NewClient(analyzer, surface, tokens, logger.Nop())
	err := c.Submit(context.Background(), file)

	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, models.StateError, c.State())
	_, ok := c.Last()
	assert.False(t, ok)
}

// ── Submit outcomes ──────────────────────────────────────────────────────────

func TestClient_Submit_StatusTextFallback(t *testing.T) {
	c, surface := newRecordingClient(respondWith(models.AnalysisResponse{},
		&adapter.StatusError{Code: 500, Message: "Internal Server Error"}))

	require.Error(t, c.Submit(context.Background(), models.NewSelectedFile("x.png")))
	assert.Equal(t, "Error: Internal Server Error", surface.errorText)
}

func TestClient_Submit_ImageSourceVerbatim(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("x.png")))
	assert.Equal(t, "data:image/png;base64,iVBOR...", surface.imageSrc)
}

func TestClient_Submit_SegmentRowsInOrder(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("x.png")))

	assert.Equal(t, []models.SegmentRow{
		{Segment: "L1-L2", Angle: "12.3°"},
		{Segment: "L2-L3", Angle: "9.8°"},
	}, surface.rows)
}

func TestClient_Submit_CardsInFixedOrder(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("x.png")))

	assert.Equal(t, []models.AngleCard{
		{Kind: models.AngleCobb, Label: "Cobb Angle", Value: "23.4°", Detail: "T5 – T11"},
		{Kind: models.AngleKyphosis, Label: "Kyphosis (T1-T12)", Value: "38.1°"},
		{Kind: models.AngleLordosis, Label: "Lordosis (L1-L5)", Value: "45°"},
	}, surface.cards)
}

func TestClient_Submit_LoadingHiddenExactlyOnce(t *testing.T) {
	outcomes := map[string]Analyzer{
		"success":   respondWith(sampleResponse(), nil),
		"failure":   respondWith(models.AnalysisResponse{}, errors.New("connection refused")),
		"malformed": respondWith(models.AnalysisResponse{AnnotatedImage: "x"}, nil),
	}

	for name, analyzer := range outcomes {
		t.Run(name, func(t *testing.T) {
			c, surface := newRecordingClient(analyzer)
			_ = c.Submit(context.Background(), models.NewSelectedFile("x.png"))

			calls := surface.Calls()
			require.NotEmpty(t, calls)
			assert.Equal(t, "loading=true", calls[0])
			assert.Equal(t, "loading=false", calls[len(calls)-1])
			assert.Equal(t, 1, surface.count("loading=true"))
			assert.Equal(t, 1, surface.count("loading=false"))
		})
	}
}

func TestClient_Submit_SuccessKeepsErrorHidden(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("x.png")))

	assert.Equal(t, 0, surface.count("error=true"))
	assert.Equal(t, 1, surface.count("results=true"))
	resp, ok := c.Last()
	require.True(t, ok)
	assert.Equal(t, "iVBOR...", resp.AnnotatedImage)
}

func TestClient_Submit_MissingKyphosisGoesToErrorPath(t *testing.T) {
	resp := sampleResponse()
	resp.Angles.Kyphosis = nil
	c, surface := newRecordingClient(respondWith(resp, nil))

	err := c.Submit(context.Background(), models.NewSelectedFile("x.png"))

	require.ErrorIs(t, err, models.ErrMalformedResponse)
	assert.Equal(t, 0, surface.count("results=true"))
	assert.Equal(t, 0, surface.count("image"))
	assert.Equal(t, 1, surface.count("error=true"))
	assert.Equal(t, "Error: malformed analysis response: missing angle summary", surface.errorText)
	assert.Equal(t, models.StateError, c.State())
}

func TestClient_Submit_ResultsThenErrorHidesResults(t *testing.T) {
	calls := 0
	analyzer := analyzerFunc(func(context.Context, models.SelectedFile) (models.AnalysisResponse, error) {
		calls++
		if calls == 1 {
			return sampleResponse(), nil
		}
		return models.AnalysisResponse{}, errors.New("boom")
	})
	c, surface := newRecordingClient(analyzer)

	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("a.png")))
	require.Error(t, c.Submit(context.Background(), models.NewSelectedFile("b.png")))

	calls2 := surface.Calls()
	assert.Equal(t, []string{"loading=true", "results=false", "error=false", "errorText", "error=true", "loading=false"},
		calls2[len(calls2)-6:])
	resp, ok := c.Last()
	require.True(t, ok, "last successful response is kept")
	assert.Equal(t, "iVBOR...", resp.AnnotatedImage)
}

// ── In-flight policy ─────────────────────────────────────────────────────────

func TestClient_Submit_RejectsWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var requests int

	analyzer := analyzerFunc(func(context.Context, models.SelectedFile) (models.AnalysisResponse, error) {
		requests++
		if requests == 1 {
			close(started)
			<-release
		}
		return sampleResponse(), nil
	})
	c, surface := newRecordingClient(analyzer)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), models.NewSelectedFile("first.png")) }()

	<-started
	assert.True(t, c.InFlight())
	assert.Equal(t, models.StateLoading, c.State())
	before := len(surface.Calls())

	err := c.Submit(context.Background(), models.NewSelectedFile("second.png"))

	assert.ErrorIs(t, err, ErrUploadInProgress)
	assert.Len(t, surface.Calls(), before, "rejected submit must not touch the surface")

	close(release)
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("first submit did not finish")
	}

	assert.Equal(t, 1, requests)
	assert.False(t, c.InFlight())
	require.NoError(t, c.Submit(context.Background(), models.NewSelectedFile("third.png")))
	assert.Equal(t, 2, requests)
}

func TestClient_Submit_ContextCanceled(t *testing.T) {
	analyzer := analyzerFunc(func(ctx context.Context, _ models.SelectedFile) (models.AnalysisResponse, error) {
		<-ctx.Done()
		return models.AnalysisResponse{}, ctx.Err()
	})
	c, surface := newRecordingClient(analyzer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Submit(ctx, models.NewSelectedFile("x.png"))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Error: context canceled", surface.errorText)
	assert.False(t, c.InFlight())
}

// ── SelectFile ───────────────────────────────────────────────────────────────

func TestClient_SelectFile_ZeroFilesIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any surface, analyzer or token call fails the test.
	c := NewClient(mock.NewMockAnalyzer(ctrl), mock.NewMockSurface(ctrl), mock.NewMockTokenGenerator(ctrl), logger.Nop())

	for _, source := range []models.FileSource{models.SourceDrop, models.SourcePicker} {
		_, err := c.SelectFile(context.Background(), models.FileEvent{Source: source})
		assert.ErrorIs(t, err, ErrNoFile)
	}
	assert.Equal(t, models.StateIdle, c.State())
}

func TestClient_SelectFile_SingleFileIssuesOneRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mock.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().
		Analyze(gomock.Any(), models.NewSelectedFile("/scans/one.png")).
		Return(sampleResponse(), nil).
		Times(1)

	c := NewClient(analyzer, &recordingSurface{}, utils.NewUUIDGenerator(), logger.Nop())

	file, err := c.SelectFile(context.Background(), models.FileEvent{
		Source: models.SourcePicker,
		Paths:  []string{"/scans/one.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "one.png", file.Name)
}

func TestClient_SelectFile_MultipleFilesUsesFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mock.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().
		Analyze(gomock.Any(), models.NewSelectedFile("/scans/first.png")).
		Return(sampleResponse(), nil).
		Times(1)

	c := NewClient(analyzer, &recordingSurface{}, utils.NewUUIDGenerator(), logger.Nop())

	file, err := c.SelectFile(context.Background(), models.FileEvent{
		Source: models.SourceDrop,
		Paths:  []string{"/scans/first.png", "/scans/second.png", "/scans/third.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/scans/first.png", file.Path)
}

func TestClient_SelectFile_DropClearsMark(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	c.DragEnter()
	_, err := c.SelectFile(context.Background(), models.FileEvent{Source: models.SourceDrop, Paths: []string{"x.png"}})
	require.NoError(t, err)

	calls := surface.Calls()
	require.GreaterOrEqual(t, len(calls), 3)
	assert.Equal(t, []string{"drop=true", "drop=false", "loading=true"}, calls[:3])
}

func TestClient_SelectFile_EmptyDropAfterDragClearsOnlyMark(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	c.DragEnter()
	_, err := c.SelectFile(context.Background(), models.FileEvent{Source: models.SourceDrop})

	assert.ErrorIs(t, err, ErrNoFile)
	assert.Equal(t, []string{"drop=true", "drop=false"}, surface.Calls())
	assert.Equal(t, models.StateIdle, c.State())
}

func TestClient_DragEnterLeave(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	c.DragEnter()
	c.DragLeave()

	assert.Equal(t, []string{"drop=true", "drop=false"}, surface.Calls())
	assert.Equal(t, models.StateIdle, c.State())
}

// ── Render ───────────────────────────────────────────────────────────────────

func TestClient_Render_Direct(t *testing.T) {
	c, surface := newRecordingClient(respondWith(sampleResponse(), nil))

	require.NoError(t, c.Render(sampleResponse()))

	assert.Equal(t, []string{"image", "cards", "rows", "results=true"}, surface.Calls())
	assert.Equal(t, models.StateResults, c.State())
}

func TestClient_Render_EmptySegments(t *testing.T) {
	c, surface := newRecordingClient(nil)
	resp := sampleResponse()
	resp.Angles.Segments = nil

	require.NoError(t, c.Render(resp))
	assert.Empty(t, surface.rows)
	assert.NotNil(t, surface.rows)
}
