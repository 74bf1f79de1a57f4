//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package metric provides evaluation metric configuration and outcomes.
package metric

import (
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-ploteval-go/matcher"
)

// Metric name constants for the built-in evaluators.
const (
	// MetricNamePlotData is the composite plot digitization metric.
	MetricNamePlotData = "plot_data_accuracy"
	// MetricNamePointCloud is the nearest-neighbor point distance metric.
	MetricNamePointCloud = "point_cloud_distance"
	// MetricNameTakeaways is the technical takeaway overlap metric.
	MetricNameTakeaways = "takeaway_overlap"
)

// EvalMetric represents a metric used to evaluate one digitized figure.
type EvalMetric struct {
	// MetricName identifies the metric.
	MetricName string `json:"metric_name"`
	// Threshold is the minimum bounded score considered passing.
	Threshold float64 `json:"threshold"`
	// PlotData configures the composite plot metric.
	PlotData *PlotDataCriterion `json:"plot_data,omitempty"`
	// PointCloud configures the nearest-neighbor point metric.
	PointCloud *PointCloudCriterion `json:"point_cloud,omitempty"`
}

// PlotDataCriterion carries the tunables of the composite plot metric. The
// zero value is usable: empty fields fall back to the calibrated defaults.
type PlotDataCriterion struct {
	// MetadataWeight weights the axis-label agreement component.
	MetadataWeight float64 `json:"metadata_weight,omitempty"`
	// SeriesWeight weights the series name match component.
	SeriesWeight float64 `json:"series_weight,omitempty"`
	// NumericalWeight weights the curve similarity component.
	NumericalWeight float64 `json:"numerical_weight,omitempty"`
	// Precision is the x-grid step used for curve interpolation.
	Precision float64 `json:"precision,omitempty"`
	// RMSECutoff is the average normalized RMSE at which the numerical
	// score collapses to zero.
	RMSECutoff float64 `json:"rmse_cutoff,omitempty"`
	// Matcher selects the series matching strategy. Defaults to exact
	// name matching.
	Matcher matcher.Matcher `json:"-"`
}

// Default tunables of the composite plot metric. The weights follow the
// 0.2/0.2/0.6 calibration; the cutoff means an average normalized RMSE of
// 10% of the data range or worse scores zero.
const (
	DefaultMetadataWeight  = 0.2
	DefaultSeriesWeight    = 0.2
	DefaultNumericalWeight = 0.6
	DefaultPrecision       = 0.1
	DefaultRMSECutoff      = 0.1
)

// DefaultPlotDataCriterion returns a criterion populated with the default
// weights, precision and cutoff, and the exact series matcher.
func DefaultPlotDataCriterion() *PlotDataCriterion {
	return &PlotDataCriterion{
		MetadataWeight:  DefaultMetadataWeight,
		SeriesWeight:    DefaultSeriesWeight,
		NumericalWeight: DefaultNumericalWeight,
		Precision:       DefaultPrecision,
		RMSECutoff:      DefaultRMSECutoff,
		Matcher:         matcher.NewExact(),
	}
}

// Normalized returns a copy with unset fields replaced by defaults. Weights
// are filled as a triple: when all three are zero the default calibration is
// used, otherwise they are taken as given (callers keep them summing to 1.0
// by convention; this is not enforced at runtime).
func (c *PlotDataCriterion) Normalized() *PlotDataCriterion {
	out := DefaultPlotDataCriterion()
	if c == nil {
		return out
	}
	if c.MetadataWeight != 0 || c.SeriesWeight != 0 || c.NumericalWeight != 0 {
		out.MetadataWeight = c.MetadataWeight
		out.SeriesWeight = c.SeriesWeight
		out.NumericalWeight = c.NumericalWeight
	}
	if c.Precision > 0 {
		out.Precision = c.Precision
	}
	if c.RMSECutoff > 0 {
		out.RMSECutoff = c.RMSECutoff
	}
	if c.Matcher != nil {
		out.Matcher = c.Matcher
	}
	return out
}

// ErrorMetric selects the per-point error aggregation of the nearest-neighbor
// point metric.
type ErrorMetric string

const (
	// ErrorMetricRMSE aggregates squared nearest-neighbor distances.
	ErrorMetricRMSE ErrorMetric = "rmse"
	// ErrorMetricMAE aggregates absolute nearest-neighbor distances.
	ErrorMetricMAE ErrorMetric = "mae"
)

// PointCloudCriterion carries the tunables of the nearest-neighbor point
// metric.
type PointCloudCriterion struct {
	// ErrorMetric selects rmse or mae aggregation. Defaults to rmse.
	ErrorMetric ErrorMetric `json:"error_metric,omitempty"`
}

// Validate checks the error metric mode.
func (c *PointCloudCriterion) Validate() error {
	if c == nil {
		return errors.New("point cloud criterion is nil")
	}
	switch c.ErrorMetric {
	case ErrorMetricRMSE, ErrorMetricMAE, "":
		return nil
	default:
		return fmt.Errorf("invalid error metric %q", string(c.ErrorMetric))
	}
}
