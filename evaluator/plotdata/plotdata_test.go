//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package plotdata

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/matcher"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
	"trpc.group/trpc-go/trpc-ploteval-go/status"
)

// subplot builds a single-axis subplot with the given series coordinates.
func subplot(xLabel, yLabel string, series map[string][][2]float64) *plot.ExtractedPlotData {
	data := &plot.ExtractedPlotData{
		Metadata: plot.PlotMetadata{XAxisLabel: xLabel, LeftYAxisLabel: yLabel},
	}
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	// Deterministic series order for stable tests.
	sort.Strings(names)
	for _, name := range names {
		pts := make([]plot.DataPoint, 0, len(series[name]))
		for _, c := range series[name] {
			pts = append(pts, plot.DataPoint{X: c[0], Y: c[1], SeriesName: name, Axis: plot.AxisLeft})
		}
		data.DataSeries = append(data.DataSeries, plot.DataSeries{Name: name, Points: pts, Axis: plot.AxisLeft})
	}
	return data
}

func digitization(subplots ...*plot.ExtractedPlotData) *plot.Digitization {
	return &plot.Digitization{Subplots: subplots}
}

func defaultMetric() *metric.EvalMetric {
	return &metric.EvalMetric{MetricName: metric.MetricNamePlotData, Threshold: 0.8}
}

// TestEvaluateIdentity verifies that predicting the ground truth exactly
// yields a perfect composite score.
func TestEvaluateIdentity(t *testing.T) {
	e := New()
	ref := digitization(subplot("time", "yield", map[string][][2]float64{
		"A": {{0, 0}, {10, 10}},
	}))
	result, err := e.Evaluate(context.Background(), ref, ref, defaultMetric())
	require.NoError(t, err)
	assert.Equal(t, metric.OutcomeBounded, result.Outcome.Kind)
	assert.InDelta(t, 1.0, result.Outcome.Value, 1e-12)
	assert.Equal(t, status.EvalStatusPassed, result.OverallStatus)
	require.Len(t, result.PerPlotResults, 1)
	pp := result.PerPlotResults[0]
	assert.Equal(t, 1.0, pp.MetadataScore)
	assert.Equal(t, 1.0, pp.SeriesMatchFraction)
	assert.InDelta(t, 1.0, pp.NumericalScore, 1e-12)
	assert.Zero(t, pp.SkippedSeries)
}

// TestEvaluateEmptyLists verifies the no-overlap boundary: an empty
// prediction or reference scores zero with no partial credit.
func TestEvaluateEmptyLists(t *testing.T) {
	e := New()
	nonEmpty := digitization(subplot("x", "y", map[string][][2]float64{"A": {{0, 0}, {1, 1}}}))
	empty := &plot.Digitization{}

	for _, pair := range [][2]*plot.Digitization{{empty, nonEmpty}, {nonEmpty, empty}, {empty, empty}} {
		result, err := e.Evaluate(context.Background(), pair[0], pair[1], defaultMetric())
		require.NoError(t, err)
		assert.Equal(t, metric.OutcomeBounded, result.Outcome.Kind)
		assert.Equal(t, 0.0, result.Outcome.Value)
		assert.Equal(t, status.EvalStatusFailed, result.OverallStatus)
		assert.Empty(t, result.PerPlotResults)
	}
}

// TestEvaluateSeriesMatchBoundary verifies the {"a","b"} vs {"a","c"} match
// fraction of 0.5.
func TestEvaluateSeriesMatchBoundary(t *testing.T) {
	e := New()
	pred := digitization(subplot("x", "y", map[string][][2]float64{
		"a": {{0, 0}, {10, 10}},
		"b": {{0, 1}, {10, 9}},
	}))
	ref := digitization(subplot("x", "y", map[string][][2]float64{
		"a": {{0, 0}, {10, 10}},
		"c": {{0, 2}, {10, 8}},
	}))
	result, err := e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	require.Len(t, result.PerPlotResults, 1)
	assert.Equal(t, 0.5, result.PerPlotResults[0].SeriesMatchFraction)
}

// TestEvaluateHardCutoff verifies the flat-line vs rising-line scenario: the
// normalized grid RMSE exceeds the cutoff, collapsing the numerical
// component to zero while metadata and series match still contribute.
func TestEvaluateHardCutoff(t *testing.T) {
	e := New()
	pred := digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 5}, {10, 5}},
	}))
	ref := digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 0}, {10, 10}},
	}))
	result, err := e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	require.Len(t, result.PerPlotResults, 1)
	pp := result.PerPlotResults[0]
	assert.Equal(t, 0.0, pp.NumericalScore)
	assert.Equal(t, 1.0, pp.MetadataScore)
	assert.Equal(t, 1.0, pp.SeriesMatchFraction)
	assert.InDelta(t, 0.4, result.Outcome.Value, 1e-12)
	assert.Equal(t, status.EvalStatusFailed, result.OverallStatus)
}

// TestEvaluateMonotonicity verifies that uniformly translating predicted y
// values decreases the numerical score until the cutoff caps it at zero.
func TestEvaluateMonotonicity(t *testing.T) {
	e := New()
	ref := digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 0}, {10, 10}},
	}))
	numerical := func(epsilon float64) float64 {
		pred := digitization(subplot("x", "y", map[string][][2]float64{
			"A": {{0, epsilon}, {10, 10 + epsilon}},
		}))
		result, err := e.Evaluate(context.Background(), pred, ref, defaultMetric())
		require.NoError(t, err)
		require.Len(t, result.PerPlotResults, 1)
		return result.PerPlotResults[0].NumericalScore
	}
	exact := numerical(0)
	small := numerical(0.5)
	medium := numerical(1.0)
	large := numerical(2.0)
	assert.InDelta(t, 1.0, exact, 1e-12)
	assert.Greater(t, exact, small)
	assert.Greater(t, small, medium)
	assert.Greater(t, medium, large)
	assert.Equal(t, 0.0, large)
}

// TestEvaluateSkipReasons verifies that degenerate series are excluded from
// the average with a tagged reason instead of failing the evaluation.
func TestEvaluateSkipReasons(t *testing.T) {
	e := New()

	// Zero y-range across the union box.
	pred := digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 5}, {10, 5}},
	}))
	ref := digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 5}, {10, 5}},
	}))
	result, err := e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	pp := result.PerPlotResults[0]
	assert.Equal(t, 0.0, pp.NumericalScore)
	assert.Equal(t, 1, pp.SkippedSeries)
	require.Len(t, pp.PerSeriesResults, 1)
	assert.Equal(t, evaluator.SkipZeroAxisRange, pp.PerSeriesResults[0].Skip)
	// Metadata and series match still award 0.2 + 0.2.
	assert.InDelta(t, 0.4, result.Outcome.Value, 1e-12)

	// Predicted curve narrower than one grid step after joint normalization.
	pred = digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 0}, {0.5, 1}},
	}))
	ref = digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 0}, {10, 10}},
	}))
	result, err = e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	pp = result.PerPlotResults[0]
	require.Len(t, pp.PerSeriesResults, 1)
	assert.Equal(t, evaluator.SkipShortXSpan, pp.PerSeriesResults[0].Skip)

	// Reference series with no points.
	pred = digitization(subplot("x", "y", map[string][][2]float64{
		"A": {{0, 0}, {10, 10}},
	}))
	ref = digitization(subplot("x", "y", map[string][][2]float64{
		"A": {},
	}))
	result, err = e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	pp = result.PerPlotResults[0]
	require.Len(t, pp.PerSeriesResults, 1)
	assert.Equal(t, evaluator.SkipEmptyPoints, pp.PerSeriesResults[0].Skip)
}

// TestEvaluateCustomWeightsAndMatcher verifies that criterion tunables and
// the pluggable matching strategy are honored.
func TestEvaluateCustomWeightsAndMatcher(t *testing.T) {
	e := New()
	pred := digitization(subplot("x", "y", map[string][][2]float64{
		"Sample A": {{0, 0}, {10, 10}},
	}))
	ref := digitization(subplot("x", "y", map[string][][2]float64{
		"sample a": {{0, 0}, {10, 10}},
	}))

	// Exact matching misses the case difference.
	result, err := e.Evaluate(context.Background(), pred, ref, defaultMetric())
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.PerPlotResults[0].SeriesMatchFraction)

	// Fuzzy matching pairs the series and the curves agree exactly.
	fuzzyMetric := &metric.EvalMetric{
		MetricName: metric.MetricNamePlotData,
		Threshold:  0.8,
		PlotData:   &metric.PlotDataCriterion{Matcher: matcher.NewFuzzy()},
	}
	result, err = e.Evaluate(context.Background(), pred, ref, fuzzyMetric)
	require.NoError(t, err)
	pp := result.PerPlotResults[0]
	assert.Equal(t, 1.0, pp.SeriesMatchFraction)
	assert.InDelta(t, 1.0, pp.NumericalScore, 1e-12)

	// Numerical-only weighting turns the composite into the curve score.
	numericalOnly := &metric.EvalMetric{
		MetricName: metric.MetricNamePlotData,
		PlotData: &metric.PlotDataCriterion{
			NumericalWeight: 1.0,
			Matcher:         matcher.NewFuzzy(),
		},
	}
	result, err = e.Evaluate(context.Background(), pred, ref, numericalOnly)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Outcome.Value, 1e-12)
}

// TestEvaluateMultipleSubplots verifies positional pairing and averaging
// across subplots.
func TestEvaluateMultipleSubplots(t *testing.T) {
	e := New()
	good := subplot("x", "y", map[string][][2]float64{"A": {{0, 0}, {10, 10}}})
	bad := subplot("wrong", "labels", map[string][][2]float64{"Z": {{0, 5}, {10, 5}}})
	ref := subplot("x", "y", map[string][][2]float64{"A": {{0, 0}, {10, 10}}})

	result, err := e.Evaluate(context.Background(),
		digitization(good, bad),
		digitization(ref, ref),
		defaultMetric())
	require.NoError(t, err)
	require.Len(t, result.PerPlotResults, 2)
	assert.InDelta(t, 1.0, result.PerPlotResults[0].PlotScore, 1e-12)
	assert.Equal(t, 0.0, result.PerPlotResults[1].PlotScore)
	assert.InDelta(t, 0.5, result.Outcome.Value, 1e-12)

	// Trailing unpaired subplots are ignored.
	result, err = e.Evaluate(context.Background(),
		digitization(good),
		digitization(ref, ref),
		defaultMetric())
	require.NoError(t, err)
	assert.Len(t, result.PerPlotResults, 1)
}

// TestEvaluateErrors verifies input validation.
func TestEvaluateErrors(t *testing.T) {
	e := New()
	_, err := e.Evaluate(context.Background(), nil, nil, defaultMetric())
	require.Error(t, err)
	_, err = e.Evaluate(context.Background(), &plot.Digitization{}, &plot.Digitization{}, nil)
	require.Error(t, err)
}
