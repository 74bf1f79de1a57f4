//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package plot

import (
	"errors"
	"fmt"
)

// LinePlotData is the lower-ceremony digitization shape: a mapping from
// series name to raw [x, y] pairs plus flat optional axis metadata. It is
// used when the extractor cannot reliably emit the full ExtractedPlotData
// shape.
type LinePlotData struct {
	// NameToCoordinates maps each series name to its ordered [x, y] pairs.
	NameToCoordinates map[string][][2]float64 `json:"name_to_coordinates"`
	// Title of the plot if available.
	Title string `json:"title,omitempty"`
	// XAxisLabel is the label of the x-axis if available.
	XAxisLabel string `json:"x_axis_label,omitempty"`
	// XAxisUnit is the unit of the x-axis if available.
	XAxisUnit string `json:"x_axis_unit,omitempty"`
	// YLeftAxisLabel is the label of the left y-axis if available.
	YLeftAxisLabel string `json:"y_left_axis_label,omitempty"`
	// YLeftAxisUnit is the unit of the left y-axis if available.
	YLeftAxisUnit string `json:"y_left_axis_unit,omitempty"`
}

// Validate rejects series with empty names or non-finite coordinates.
func (l *LinePlotData) Validate() error {
	for name, coords := range l.NameToCoordinates {
		if name == "" {
			return errors.New("line plot series name is empty")
		}
		for _, c := range coords {
			if !isFiniteCoordinate(c[0]) || !isFiniteCoordinate(c[1]) {
				return fmt.Errorf("line plot series %q contains non-finite point (%v, %v)", name, c[0], c[1])
			}
		}
	}
	return nil
}

// SeriesNames returns the series names of the line plot in unspecified order.
func (l *LinePlotData) SeriesNames() []string {
	names := make([]string, 0, len(l.NameToCoordinates))
	for name := range l.NameToCoordinates {
		names = append(names, name)
	}
	return names
}

// Digitization wraps one digitized figure in whichever of the two supported
// shapes the extractor produced. Exactly one of the fields is set; evaluators
// pick the shape they support.
type Digitization struct {
	// Subplots holds the structured shape, one entry per subplot.
	Subplots []*ExtractedPlotData `json:"subplots,omitempty"`
	// LinePlot holds the simple name-to-coordinates shape.
	LinePlot *LinePlotData `json:"line_plot,omitempty"`
}

// Validate checks that exactly one shape is present and that it is well formed.
func (d *Digitization) Validate() error {
	if len(d.Subplots) > 0 && d.LinePlot != nil {
		return errors.New("digitization carries both shapes")
	}
	if len(d.Subplots) == 0 && d.LinePlot == nil {
		return errors.New("digitization is empty")
	}
	for i, sp := range d.Subplots {
		if sp == nil {
			return fmt.Errorf("subplot %d is nil", i)
		}
		if err := sp.Validate(); err != nil {
			return fmt.Errorf("subplot %d: %w", i, err)
		}
	}
	if d.LinePlot != nil {
		return d.LinePlot.Validate()
	}
	return nil
}
