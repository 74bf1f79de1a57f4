//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package groundtruth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

const sampleDoc = `{
  "subplots": [
    {
      "coordinates": {
        "baseline": [[0, 1], [1, 2]],
        "treated": [[0, 3], [1, 4]]
      },
      "x_label": "Time (h)",
      "y_label": "Yield (%)"
    },
    {
      "coordinates": {
        "single": [[0.5, 0.5]]
      },
      "x_label": "Voltage (V)",
      "y_label": "Current (A)"
    }
  ]
}`

// TestLoad_Structured checks the structured conversion of a two-subplot
// document, including deterministic series order.
func TestLoad_Structured(t *testing.T) {
	plots, err := Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, plots, 2)

	first := plots[0]
	assert.Equal(t, "Time (h)", first.Metadata.XAxisLabel)
	assert.Equal(t, "Yield (%)", first.Metadata.LeftYAxisLabel)
	require.Equal(t, []string{"baseline", "treated"}, first.SeriesNames())

	baseline := first.Series("baseline")
	require.NotNil(t, baseline)
	require.Len(t, baseline.Points, 2)
	assert.Equal(t, 1.0, baseline.Points[0].Y)
	assert.Equal(t, plot.AxisLeft, baseline.Axis)

	second := plots[1]
	assert.Equal(t, "Voltage (V)", second.Metadata.XAxisLabel)
	require.Equal(t, []string{"single"}, second.SeriesNames())
}

// TestLoadFile_RoundTrip writes the document to disk and loads it back.
func TestLoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	plots, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, plots, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

// TestLoadLinePlot checks the simple-shape conversion uses the first subplot.
func TestLoadLinePlot(t *testing.T) {
	line, err := LoadLinePlot(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, "Time (h)", line.XAxisLabel)
	assert.Equal(t, "Yield (%)", line.YLeftAxisLabel)
	require.Len(t, line.NameToCoordinates, 2)
	assert.Equal(t, [][2]float64{{0, 1}, {1, 2}}, line.NameToCoordinates["baseline"])
}

// TestLoad_Malformed covers decode failures and shape violations.
func TestLoad_Malformed(t *testing.T) {
	_, err := Load(strings.NewReader("{"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"subplots": []}`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"subplots": [{"coordinates": {}, "x_label": "x", "y_label": "y"}]}`))
	assert.Error(t, err)

	// A coordinate triple is rejected.
	_, err = Load(strings.NewReader(`{"subplots": [{"coordinates": {"s": [[1, 2, 3]]}, "x_label": "x", "y_label": "y"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 2")

	_, err = LoadLinePlot(strings.NewReader(`{"subplots": []}`))
	assert.Error(t, err)
}
