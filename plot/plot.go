//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package plot provides the digitized plot data model shared by predicted and
// reference digitizations.
package plot

import (
	"errors"
	"fmt"
	"math"
)

// Axis identifies which y-axis a point or series belongs to.
type Axis string

const (
	// AxisLeft is the left (primary) y-axis.
	AxisLeft Axis = "left"
	// AxisRight is the right (secondary) y-axis of a dual-axis plot.
	AxisRight Axis = "right"
)

// Validate checks that the axis is one of the supported values.
func (a Axis) Validate() error {
	switch a {
	case AxisLeft, AxisRight:
		return nil
	default:
		return fmt.Errorf("invalid axis %q", string(a))
	}
}

// DataPoint represents a single digitized data point.
type DataPoint struct {
	// X is the x-coordinate value.
	X float64 `json:"x"`
	// Y is the y-coordinate value.
	Y float64 `json:"y"`
	// SeriesName is the name of the data series this point belongs to.
	SeriesName string `json:"series_name"`
	// Axis is the y-axis this point belongs to.
	Axis Axis `json:"axis"`
}

// NewDataPoint creates a DataPoint and rejects malformed coordinates.
// NaN or infinite coordinates would silently corrupt downstream averages, so
// they are rejected at construction time.
func NewDataPoint(x, y float64, seriesName string, axis Axis) (DataPoint, error) {
	if !isFiniteCoordinate(x) || !isFiniteCoordinate(y) {
		return DataPoint{}, fmt.Errorf("data point (%v, %v) in series %q has non-finite coordinates", x, y, seriesName)
	}
	if err := axis.Validate(); err != nil {
		return DataPoint{}, fmt.Errorf("data point in series %q: %w", seriesName, err)
	}
	return DataPoint{X: x, Y: y, SeriesName: seriesName, Axis: axis}, nil
}

// DataSeries represents one named data trace within a plot. Point order is
// irrelevant for scoring purposes: points are geometric, not sequential, data.
type DataSeries struct {
	// Name uniquely identifies the series within one plot.
	Name string `json:"name"`
	// Points contains the digitized data points of this series.
	Points []DataPoint `json:"points"`
	// Axis is the y-axis this series belongs to.
	Axis Axis `json:"axis"`
	// Color of the series if identifiable.
	Color string `json:"color,omitempty"`
	// MarkerStyle of the series (circle, square, triangle, etc.) if identifiable.
	MarkerStyle string `json:"marker_style,omitempty"`
}

// NewDataSeries creates a DataSeries after validating its name and points.
func NewDataSeries(name string, points []DataPoint, axis Axis, opt ...SeriesOption) (DataSeries, error) {
	if name == "" {
		return DataSeries{}, errors.New("data series name is empty")
	}
	if err := axis.Validate(); err != nil {
		return DataSeries{}, fmt.Errorf("data series %q: %w", name, err)
	}
	for _, p := range points {
		if !isFiniteCoordinate(p.X) || !isFiniteCoordinate(p.Y) {
			return DataSeries{}, fmt.Errorf("data series %q contains non-finite point (%v, %v)", name, p.X, p.Y)
		}
	}
	s := DataSeries{
		Name:   name,
		Points: append([]DataPoint(nil), points...),
		Axis:   axis,
	}
	opts := newSeriesOptions(opt...)
	s.Color = opts.color
	s.MarkerStyle = opts.markerStyle
	return s, nil
}

// PlotMetadata describes the axes and title of one plot.
type PlotMetadata struct {
	// XAxisLabel is the label of the x-axis.
	XAxisLabel string `json:"x_axis_label"`
	// XAxisUnit is the unit of the x-axis.
	XAxisUnit string `json:"x_axis_unit,omitempty"`
	// LeftYAxisLabel is the label of the left y-axis.
	LeftYAxisLabel string `json:"left_y_axis_label"`
	// LeftYAxisUnit is the unit of the left y-axis.
	LeftYAxisUnit string `json:"left_y_axis_unit,omitempty"`
	// RightYAxisLabel is the label of the right y-axis for dual-axis plots.
	RightYAxisLabel string `json:"right_y_axis_label,omitempty"`
	// RightYAxisUnit is the unit of the right y-axis for dual-axis plots.
	RightYAxisUnit string `json:"right_y_axis_unit,omitempty"`
	// PlotTitle is the title of the plot.
	PlotTitle string `json:"plot_title,omitempty"`
	// IsDualAxis reports whether the plot has a secondary y-axis.
	IsDualAxis bool `json:"is_dual_axis"`
}

// Validate checks the dual-axis invariant: right-axis fields must be empty
// when the plot is not dual-axis.
func (m *PlotMetadata) Validate() error {
	if !m.IsDualAxis && (m.RightYAxisLabel != "" || m.RightYAxisUnit != "") {
		return errors.New("right y-axis fields set on a single-axis plot")
	}
	return nil
}

// ExtractedPlotData is the complete digitization of one subplot.
type ExtractedPlotData struct {
	// Metadata holds the axis labels and title of the subplot.
	Metadata PlotMetadata `json:"metadata"`
	// DataSeries contains all data series found in the subplot.
	DataSeries []DataSeries `json:"data_series"`
	// TechnicalTakeaways lists key technical insights read off the subplot.
	TechnicalTakeaways []string `json:"technical_takeaways,omitempty"`
}

// Validate checks the metadata invariant and that series names are unique.
func (e *ExtractedPlotData) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(e.DataSeries))
	for _, s := range e.DataSeries {
		if s.Name == "" {
			return errors.New("data series name is empty")
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("duplicate data series %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// SeriesNames returns the names of all data series in declaration order.
func (e *ExtractedPlotData) SeriesNames() []string {
	names := make([]string, 0, len(e.DataSeries))
	for _, s := range e.DataSeries {
		names = append(names, s.Name)
	}
	return names
}

// Series returns the data series with the given name, or nil if absent.
func (e *ExtractedPlotData) Series(name string) *DataSeries {
	for i := range e.DataSeries {
		if e.DataSeries[i].Name == name {
			return &e.DataSeries[i]
		}
	}
	return nil
}

// isFiniteCoordinate reports whether v is usable as a plot coordinate.
func isFiniteCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
