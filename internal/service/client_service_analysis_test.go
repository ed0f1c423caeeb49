package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/mock"
	"github.com/MKhiriev/go-spine-client/internal/validators"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleResponse() models.AnalysisResponse {
	return models.AnalysisResponse{
		AnnotatedImage: "aGVsbG8=",
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

// newTestAnalysisSvc is a helper building analysisService with mocks.
func newTestAnalysisSvc(t *testing.T, ctrl *gomock.Controller) (AnalysisService, *mock.MockAnalysisAdapter, *mock.MockValidator) {
	t.Helper()
	mockAdapter := mock.NewMockAnalysisAdapter(ctrl)
	mockValidator := mock.NewMockValidator(ctrl)

	return NewAnalysisService(mockAdapter, mockValidator, logger.Nop()), mockAdapter, mockValidator
}

// ── Analyze ──────────────────────────────────────────────────────────────────

func TestAnalysisService_Analyze_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockValidator := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()
	file := models.NewSelectedFile("/scans/xray.png")
	resp := sampleResponse()

	gomock.InOrder(
		mockAdapter.EXPECT().Analyze(ctx, file).Return(resp, nil),
		mockValidator.EXPECT().Validate(ctx, resp).Return(nil),
	)

	got, err := svc.Analyze(ctx, file)

	require.NoError(t, err)
	assert.Equal(t, resp, got)
}

func TestAnalysisService_Analyze_AdapterErrorSkipsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAnalysisSvc(t, ctrl)
	failure := &adapter.StatusError{Code: 500, Message: "model failed"}

	mockAdapter.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisResponse{}, failure)

	_, err := svc.Analyze(context.Background(), models.NewSelectedFile("x.png"))

	require.Error(t, err)
	assert.Equal(t, "model failed", err.Error())
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}

func TestAnalysisService_Analyze_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockValidator := newTestAnalysisSvc(t, ctrl)
	shapeErr := fmt.Errorf("%w: angles.kyphosis is required", models.ErrMalformedResponse)

	mockAdapter.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisResponse{}, nil)
	mockValidator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(shapeErr)

	got, err := svc.Analyze(context.Background(), models.NewSelectedFile("x.png"))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "angles.kyphosis is required")
	assert.Equal(t, models.AnalysisResponse{}, got)
}

func TestAnalysisService_Analyze_RealValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockAnalysisAdapter(ctrl)
	svc := NewAnalysisService(mockAdapter, validators.NewAnalysisResponseValidator(), logger.Nop())

	resp := sampleResponse()
	resp.Angles.Kyphosis = nil
	mockAdapter.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(resp, nil)

	_, err := svc.Analyze(context.Background(), models.NewSelectedFile("x.png"))

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
	assert.Contains(t, err.Error(), "malformed analysis response: angles.kyphosis is required")
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockAnalysisAdapter(ctrl)
	svc := NewHealthService(mockAdapter)

	want := models.HealthStatus{Status: "ok", ModelLoaded: true}
	mockAdapter.EXPECT().Health(gomock.Any()).Return(want, nil)

	got, err := svc.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHealthService_Check_ModelNotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockAnalysisAdapter(ctrl)
	svc := NewHealthService(mockAdapter)

	mockAdapter.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{},
		&adapter.StatusError{Code: 503, Message: "Model not loaded. Place best.pth in models/"})

	_, err := svc.Check(context.Background())

	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "model not loaded",
			err:     &adapter.StatusError{Code: 503, Message: "Model not loaded. Place best.pth in models/"},
			wantIs:  ErrModelNotLoaded,
			wantMsg: "Model not loaded. Place best.pth in models/",
		},
		{
			name:    "empty file",
			err:     &adapter.StatusError{Code: 400, Message: "Empty file"},
			wantIs:  ErrEmptyFile,
			wantMsg: "Empty file",
		},
		{
			name:    "invalid image",
			err:     &adapter.StatusError{Code: 400, Message: "Invalid image: cannot identify image file"},
			wantIs:  ErrInvalidImage,
			wantMsg: "Invalid image: cannot identify image file",
		},
		{
			name:    "other bad request",
			err:     &adapter.StatusError{Code: 400, Message: "something else"},
			wantIs:  adapter.ErrBadRequest,
			wantMsg: "something else",
		},
		{
			name:    "transport error",
			err:     errors.New("analyze request: connection refused"),
			wantMsg: "analyze request: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.err)

			require.Error(t, got)
			assert.Equal(t, tt.wantMsg, got.Error())
			assert.ErrorIs(t, got, tt.err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, got, tt.wantIs)
			}
		})
	}
}

func TestMapAdapterError_Nil(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
}
