//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package evaluator defines the evaluator contract for scoring digitized
// plots against ground truth.
package evaluator

import (
	"context"

	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
	"trpc.group/trpc-go/trpc-ploteval-go/status"
)

// Evaluator scores a predicted digitization against a reference digitization.
// Implementations are pure: no I/O, no shared mutable state, and every
// data-shape degeneracy is reported through the result rather than raised.
type Evaluator interface {
	// Name returns the evaluator identifier.
	Name() string
	// Description describes the evaluator purpose.
	Description() string
	// Evaluate compares the actual (predicted) digitization with the
	// expected (reference) digitization under the given metric.
	Evaluate(ctx context.Context, actual, expected *plot.Digitization,
		evalMetric *metric.EvalMetric) (*EvaluateResult, error)
}

// EvaluateResult is the outcome of evaluating one digitized figure.
type EvaluateResult struct {
	// Outcome is the tagged overall score or distance.
	Outcome metric.Outcome `json:"outcome"`
	// OverallStatus summarizes the outcome against the metric threshold.
	OverallStatus status.EvalStatus `json:"overall_status"`
	// PerPlotResults breaks the outcome down per subplot pair.
	PerPlotResults []*PerPlotResult `json:"per_plot_results,omitempty"`
	// MissingSeries lists reference series absent from the prediction.
	// They are excluded from scoring and surfaced here as a diagnostic.
	MissingSeries []string `json:"missing_series,omitempty"`
}

// PerPlotResult holds the per-criterion breakdown for one subplot pair.
type PerPlotResult struct {
	// PlotIndex is the subplot position used for pairing.
	PlotIndex int `json:"plot_index"`
	// MetadataScore is the axis-label agreement component in [0, 1].
	MetadataScore float64 `json:"metadata_score"`
	// SeriesMatchFraction is the series name match component in [0, 1].
	SeriesMatchFraction float64 `json:"series_match_fraction"`
	// NumericalScore is the curve similarity component in [0, 1].
	NumericalScore float64 `json:"numerical_score"`
	// PlotScore is the weighted combination of the three components.
	PlotScore float64 `json:"plot_score"`
	// PerSeriesResults lists the per-series curve comparisons, including
	// skipped series with their reasons.
	PerSeriesResults []*PerSeriesResult `json:"per_series_results,omitempty"`
	// SkippedSeries counts matched series excluded from the numerical
	// average because of degenerate geometry.
	SkippedSeries int `json:"skipped_series"`
}

// PerSeriesResult holds one per-series curve comparison. A series is either
// scored (Skip == SkipNone, RMSE valid) or skipped with a reason.
type PerSeriesResult struct {
	// PredictedName is the series name in the prediction.
	PredictedName string `json:"predicted_name"`
	// ReferenceName is the matched series name in the reference.
	ReferenceName string `json:"reference_name"`
	// RMSE is the grid RMSE of the normalized curves; valid only when the
	// series was not skipped.
	RMSE float64 `json:"rmse,omitempty"`
	// Skip is the reason the series was excluded from the average.
	Skip SkipReason `json:"skip,omitempty"`
}

// Skipped reports whether the series was excluded from the average.
func (r *PerSeriesResult) Skipped() bool {
	return r.Skip != SkipNone
}

// SkipReason tags why a matched series was excluded from curve scoring.
type SkipReason int

const (
	// SkipNone means the series was scored.
	SkipNone SkipReason = iota
	// SkipEmptyPoints means prediction or reference has no points.
	SkipEmptyPoints
	// SkipZeroAxisRange means the joint normalization box is degenerate
	// on at least one axis.
	SkipZeroAxisRange
	// SkipShortXSpan means a curve spans less than one grid step on x,
	// making interpolation unreliable.
	SkipShortXSpan
)

// String returns the string representation of the skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipEmptyPoints:
		return "empty_points"
	case SkipZeroAxisRange:
		return "zero_axis_range"
	case SkipShortXSpan:
		return "short_x_span"
	default:
		return "unknown"
	}
}

// StatusForOutcome maps a tagged outcome to an evaluation status. Bounded
// scores pass at or above the threshold. Unbounded distances pass at or below
// a positive threshold and stay unknown when no threshold is configured.
// Incomparable outcomes are not evaluated.
func StatusForOutcome(outcome metric.Outcome, threshold float64) status.EvalStatus {
	switch outcome.Kind {
	case metric.OutcomeBounded:
		if outcome.Value >= threshold {
			return status.EvalStatusPassed
		}
		return status.EvalStatusFailed
	case metric.OutcomeUnbounded:
		if threshold <= 0 {
			return status.EvalStatusUnknown
		}
		if outcome.Value <= threshold {
			return status.EvalStatusPassed
		}
		return status.EvalStatusFailed
	default:
		return status.EvalStatusNotEvaluated
	}
}
