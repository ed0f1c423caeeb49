// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
  "annotated_image": "iVBORw0KGgo=",
  "angles": {
    "cobb": {"cobb_angle": 23.4, "upper_vertebra": "T5", "lower_vertebra": "T11"},
    "kyphosis": {"kyphosis_angle": 38.1},
    "lordosis": {"lordosis_angle": "45.0"},
    "segments": [
      {"segment": "L1-L2", "angle": 12.3},
      {"segment": "L2-L3", "angle": 9.8}
    ]
  },
  "landmarks": [
    {"vertebra": "T1", "landmarks": {"superior_anterior": {"x": 10.5, "y": 20.0}}}
  ],
  "image_size": {"width": 1024, "height": 2048}
}`

func TestAnalysisResponse_Decode(t *testing.T) {
	var resp AnalysisResponse
	require.NoError(t, codec.Unmarshal([]byte(fullResponse), &resp))

	assert.Equal(t, "iVBORw0KGgo=", resp.AnnotatedImage)
	require.NotNil(t, resp.Angles)
	require.NotNil(t, resp.Angles.Cobb)
	assert.Equal(t, Measurement("23.4"), resp.Angles.Cobb.CobbAngle)
	assert.Equal(t, "T5", resp.Angles.Cobb.UpperVertebra)
	assert.Equal(t, "T11", resp.Angles.Cobb.LowerVertebra)
	assert.Equal(t, Measurement("38.1"), resp.Angles.Kyphosis.KyphosisAngle)
	assert.Equal(t, Measurement("45.0"), resp.Angles.Lordosis.LordosisAngle)

	require.Len(t, resp.Angles.Segments, 2)
	assert.Equal(t, "L1-L2", resp.Angles.Segments[0].Segment)
	assert.Equal(t, Measurement("12.3"), resp.Angles.Segments[0].Angle)
	assert.Equal(t, "L2-L3", resp.Angles.Segments[1].Segment)
	assert.Equal(t, Measurement("9.8"), resp.Angles.Segments[1].Angle)

	require.Len(t, resp.Landmarks, 1)
	assert.Equal(t, Point{X: 10.5, Y: 20}, resp.Landmarks[0].Landmarks["superior_anterior"])
	require.NotNil(t, resp.ImageSize)
	assert.Equal(t, 1024, resp.ImageSize.Width)
}

func TestAnalysisResponse_MissingKeysStayNil(t *testing.T) {
	var resp AnalysisResponse
	require.NoError(t, codec.Unmarshal([]byte(`{"angles": {"cobb": null}}`), &resp))

	require.NotNil(t, resp.Angles)
	assert.Nil(t, resp.Angles.Cobb)
	assert.Nil(t, resp.Angles.Kyphosis)
	assert.Nil(t, resp.Angles.Segments)
}

func TestAnalysisError_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string detail", body: `{"detail":"model failed"}`, want: "model failed"},
		{name: "missing detail", body: `{}`, want: ""},
		{name: "null detail", body: `{"detail":null}`, want: ""},
		{name: "list detail", body: `{"detail":[{"msg":"field required"}]}`, want: `[{"msg":"field required"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e AnalysisError
			require.NoError(t, codec.Unmarshal([]byte(tt.body), &e))
			assert.Equal(t, tt.want, e.Message())
		})
	}
}

func TestHealthStatus_Ready(t *testing.T) {
	assert.True(t, HealthStatus{Status: "ok", ModelLoaded: true}.Ready())
	assert.False(t, HealthStatus{Status: "ok"}.Ready())
	assert.False(t, HealthStatus{Status: "degraded", ModelLoaded: true}.Ready())
}

func TestSelectedFile_NewSelectedFile(t *testing.T) {
	f := NewSelectedFile("/tmp/scans/xray.png")
	assert.Equal(t, "xray.png", f.Name)
	assert.Equal(t, "/tmp/scans/xray.png", f.Path)
}
