package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-spine-client/internal/adapter"
	"github.com/MKhiriev/go-spine-client/internal/config"
	"github.com/MKhiriev/go-spine-client/internal/logger"
	"github.com/MKhiriev/go-spine-client/internal/mock"
	"github.com/MKhiriev/go-spine-client/internal/service"
	"github.com/MKhiriev/go-spine-client/internal/store"
	"github.com/MKhiriev/go-spine-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func oneShotApp(t *testing.T, analysis service.AnalysisService, out *bytes.Buffer) *App {
	t.Helper()

	cfg := &config.ClientConfig{App: config.ClientApp{InputFile: "/scans/xray.png"}}
	app, err := NewApp(cfg, &service.ClientServices{AnalysisService: analysis}, out, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_OneShotSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	analysis := mock.NewMockAnalysisService(ctrl)

	resp := models.AnalysisResponse{
		AnnotatedImage: "iVBORw0KGgo=",
		Angles: &models.Angles{
			Cobb:     &models.CobbAngle{CobbAngle: "23.4", UpperVertebra: "T5", LowerVertebra: "T11"},
			Kyphosis: &models.KyphosisAngle{KyphosisAngle: "38.1"},
			Lordosis: &models.LordosisAngle{LordosisAngle: "45"},
			Segments: []models.SegmentAngle{{Segment: "L1-L2", Angle: "12.3"}},
		},
		ImageSize: &models.ImageSize{Width: 512, Height: 1024},
	}
	analysis.EXPECT().
		Analyze(gomock.Any(), models.SelectedFile{Name: "xray.png", Path: "/scans/xray.png"}).
		Return(resp, nil)

	var out bytes.Buffer
	require.NoError(t, oneShotApp(t, analysis, &out).Run(context.Background()))

	assert.Contains(t, out.String(), "Cobb Angle")
	assert.Contains(t, out.String(), "23.4°")
	assert.Contains(t, out.String(), "T5 – T11")
	assert.Contains(t, out.String(), "L1-L2")
	assert.Contains(t, out.String(), "data:image/png;base64,iVBORw0KGgo=")
	assert.Contains(t, out.String(), "Image size: 512x1024 px")
}

func TestApp_OneShotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	analysis := mock.NewMockAnalysisService(ctrl)

	analysis.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		Return(models.AnalysisResponse{}, &adapter.StatusError{Code: 503, Message: "Model not loaded. Place best.pth in models/"})

	var out bytes.Buffer
	err := oneShotApp(t, analysis, &out).Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrServiceUnavailable))
	assert.Equal(t, "Error: Model not loaded. Place best.pth in models/\n", out.String())
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &service.ClientServices{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = NewApp(&config.ClientConfig{}, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilServices)
}

func TestApp_OneShotStraightSpineFromServer(t *testing.T) {
	body, err := os.ReadFile(filepath.Join("testdata", "analyze_straight_spine.json"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	scan := filepath.Join(t.TempDir(), "straight.png")
	require.NoError(t, os.WriteFile(scan, []byte("png bytes"), 0o644))

	cfg := &config.ClientConfig{
		App:     config.ClientApp{InputFile: scan},
		Adapter: config.ClientAdapter{HTTPAddress: srv.URL},
		Storage: config.ClientStorage{OutputDir: t.TempDir()},
	}
	log := logger.Nop()

	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), log)
	require.NoError(t, err)
	analysisAdapter, err := adapter.NewHTTPAnalysisAdapter(cfg.Adapter, appInfo.UserAgent(), log)
	require.NoError(t, err)
	storages, err := store.NewClientStorages(cfg.Storage, log)
	require.NoError(t, err)

	var out bytes.Buffer
	app, err := NewApp(cfg, service.NewClientServices(storages, analysisAdapter, appInfo, log), &out, log)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	got := out.String()
	assert.NotContains(t, got, "Error:")
	assert.Contains(t, got, "Cobb Angle")
	assert.Contains(t, got, "0°")
	assert.Contains(t, got, " – ")
	assert.Contains(t, got, "Kyphosis (T1-T12)")
	assert.Contains(t, got, "Lordosis (L1-L5)")
	assert.Contains(t, got, "data:image/png;base64,iVBORw0KGgo")
	assert.Contains(t, got, "Image size: 1200x2400 px")
	assert.Contains(t, got, "Landmarks: 17 vertebrae")
	assert.Less(t, strings.Index(got, "T1-T2"), strings.Index(got, "L4-L5"))
}
