//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package plotdata provides the composite evaluator for structured plot
// digitizations: a weighted combination of axis-label agreement, series name
// matching and interpolation-based curve similarity.
package plotdata

import (
	"context"
	"errors"

	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// plotDataEvaluator scores predicted subplots against reference subplots.
type plotDataEvaluator struct {
}

// New creates a new composite plot data evaluator.
func New() evaluator.Evaluator {
	return &plotDataEvaluator{}
}

// Name returns the evaluator identifier.
func (e *plotDataEvaluator) Name() string {
	return metric.MetricNamePlotData
}

// Description describes the evaluator purpose.
func (e *plotDataEvaluator) Description() string {
	return "Scores structured plot digitizations against ground truth as a weighted composite of metadata, series match and curve similarity"
}

// Evaluate compares the predicted subplots with the reference subplots.
// Subplots are paired by position: upstream extractors guarantee subplot
// ordering, and unpaired trailing subplots are ignored. An empty prediction
// or reference yields a bounded zero score, never an error.
func (e *plotDataEvaluator) Evaluate(ctx context.Context, actual, expected *plot.Digitization,
	evalMetric *metric.EvalMetric) (*evaluator.EvaluateResult, error) {
	if evalMetric == nil {
		return nil, errors.New("eval metric not configured")
	}
	if actual == nil || expected == nil {
		return nil, errors.New("plotdata: digitization is nil")
	}
	crit := evalMetric.PlotData.Normalized()
	preds := actual.Subplots
	refs := expected.Subplots
	if len(preds) == 0 || len(refs) == 0 {
		outcome := metric.Bounded(0)
		return &evaluator.EvaluateResult{
			Outcome:       outcome,
			OverallStatus: evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
		}, nil
	}
	pairCount := min(len(preds), len(refs))
	perPlot := make([]*evaluator.PerPlotResult, 0, pairCount)
	var totalScore float64
	for i := 0; i < pairCount; i++ {
		plotResult := e.evaluatePlot(i, preds[i], refs[i], crit)
		totalScore += plotResult.PlotScore
		perPlot = append(perPlot, plotResult)
	}
	outcome := metric.Bounded(totalScore / float64(pairCount))
	return &evaluator.EvaluateResult{
		Outcome:        outcome,
		OverallStatus:  evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
		PerPlotResults: perPlot,
	}, nil
}

// evaluatePlot scores one positionally paired subplot.
func (e *plotDataEvaluator) evaluatePlot(idx int, pred, ref *plot.ExtractedPlotData,
	crit *metric.PlotDataCriterion) *evaluator.PerPlotResult {
	metadataScore := scoreMetadata(&pred.Metadata, &ref.Metadata)
	matchResult := crit.Matcher.Match(pred.SeriesNames(), ref.SeriesNames())
	numericalScore, perSeries, skipped := scoreCurves(pred, ref, matchResult, crit)
	plotScore := crit.MetadataWeight*metadataScore +
		crit.SeriesWeight*matchResult.MatchFraction +
		crit.NumericalWeight*numericalScore
	return &evaluator.PerPlotResult{
		PlotIndex:           idx,
		MetadataScore:       metadataScore,
		SeriesMatchFraction: matchResult.MatchFraction,
		NumericalScore:      numericalScore,
		PlotScore:           plotScore,
		PerSeriesResults:    perSeries,
		SkippedSeries:       skipped,
	}
}
