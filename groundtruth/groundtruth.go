//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package groundtruth loads human-curated reference digitizations from their
// JSON contract: a "subplots" array whose entries hold per-series coordinates
// and axis labels.
package groundtruth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// subplotJSON is one entry of the persisted "subplots" array.
type subplotJSON struct {
	Coordinates map[string][][]float64 `json:"coordinates"`
	XLabel      string                 `json:"x_label"`
	YLabel      string                 `json:"y_label"`
}

// fileJSON is the persisted ground truth document.
type fileJSON struct {
	Subplots []subplotJSON `json:"subplots"`
}

// Load parses a ground truth document into the structured digitization
// shape, one ExtractedPlotData per subplot.
func Load(r io.Reader) ([]*plot.ExtractedPlotData, error) {
	var doc fileJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ground truth: %w", err)
	}
	if len(doc.Subplots) == 0 {
		return nil, errors.New("ground truth has no subplots")
	}
	out := make([]*plot.ExtractedPlotData, 0, len(doc.Subplots))
	for i, sp := range doc.Subplots {
		data, err := convertSubplot(&sp)
		if err != nil {
			return nil, fmt.Errorf("subplot %d: %w", i, err)
		}
		out = append(out, data)
	}
	return out, nil
}

// LoadFile parses the ground truth document at path.
func LoadFile(path string) ([]*plot.ExtractedPlotData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ground truth: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadLinePlot parses a ground truth document into the simple
// name-to-coordinates shape. The first subplot is used; the simple shape
// carries a single plot.
func LoadLinePlot(r io.Reader) (*plot.LinePlotData, error) {
	var doc fileJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ground truth: %w", err)
	}
	if len(doc.Subplots) == 0 {
		return nil, errors.New("ground truth has no subplots")
	}
	sp := doc.Subplots[0]
	coords := make(map[string][][2]float64, len(sp.Coordinates))
	for name, pairs := range sp.Coordinates {
		converted, err := convertPairs(name, pairs)
		if err != nil {
			return nil, err
		}
		coords[name] = converted
	}
	line := &plot.LinePlotData{
		NameToCoordinates: coords,
		XAxisLabel:        sp.XLabel,
		YLeftAxisLabel:    sp.YLabel,
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return line, nil
}

// convertSubplot maps one persisted subplot into ExtractedPlotData with
// construction-time validation.
func convertSubplot(sp *subplotJSON) (*plot.ExtractedPlotData, error) {
	if len(sp.Coordinates) == 0 {
		return nil, errors.New("no data series")
	}
	names := make([]string, 0, len(sp.Coordinates))
	for name := range sp.Coordinates {
		names = append(names, name)
	}
	sort.Strings(names)
	series := make([]plot.DataSeries, 0, len(names))
	for _, name := range names {
		pairs, err := convertPairs(name, sp.Coordinates[name])
		if err != nil {
			return nil, err
		}
		points := make([]plot.DataPoint, 0, len(pairs))
		for _, c := range pairs {
			p, err := plot.NewDataPoint(c[0], c[1], name, plot.AxisLeft)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
		}
		s, err := plot.NewDataSeries(name, points, plot.AxisLeft)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return &plot.ExtractedPlotData{
		Metadata: plot.PlotMetadata{
			XAxisLabel:     sp.XLabel,
			LeftYAxisLabel: sp.YLabel,
		},
		DataSeries: series,
	}, nil
}

// convertPairs validates that every coordinate entry is an [x, y] pair.
func convertPairs(name string, pairs [][]float64) ([][2]float64, error) {
	out := make([][2]float64, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("series %q: coordinate entry has %d values, want 2", name, len(pair))
		}
		out = append(out, [2]float64{pair[0], pair[1]})
	}
	return out, nil
}
