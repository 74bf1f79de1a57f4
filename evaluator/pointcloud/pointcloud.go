//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package pointcloud provides the nearest-neighbor point evaluator for the
// simple name-to-coordinates digitization shape, where no reliable point
// ordering or interpolation basis exists.
package pointcloud

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/log"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// scaleEpsilon floors a zero axis range to avoid division by zero.
const scaleEpsilon = 1e-8

// pointCloudEvaluator scores predicted point clouds against reference point
// clouds by asymmetric nearest-neighbor distance.
type pointCloudEvaluator struct {
}

// New creates a new nearest-neighbor point evaluator.
func New() evaluator.Evaluator {
	return &pointCloudEvaluator{}
}

// Name returns the evaluator identifier.
func (e *pointCloudEvaluator) Name() string {
	return metric.MetricNamePointCloud
}

// Description describes the evaluator purpose.
func (e *pointCloudEvaluator) Description() string {
	return "Scores simple name-to-coordinates digitizations by asymmetric nearest-neighbor point distance"
}

// Evaluate compares two line plot digitizations. The result is an unbounded
// distance, lower is better: each predicted point is charged the normalized
// distance to its nearest reference point, with the normalization scale
// taken from the reference only. The metric is therefore asymmetric, and
// reference points without a nearby predicted point carry no penalty. When
// prediction and reference share no series names the result is incomparable,
// not zero: zero would read as perfect agreement.
func (e *pointCloudEvaluator) Evaluate(ctx context.Context, actual, expected *plot.Digitization,
	evalMetric *metric.EvalMetric) (*evaluator.EvaluateResult, error) {
	if evalMetric == nil {
		return nil, errors.New("eval metric not configured")
	}
	crit := evalMetric.PointCloud
	if crit == nil {
		crit = &metric.PointCloudCriterion{}
	}
	if err := crit.Validate(); err != nil {
		return nil, fmt.Errorf("pointcloud: %w", err)
	}
	if actual == nil || expected == nil {
		return nil, errors.New("pointcloud: digitization is nil")
	}
	if actual.LinePlot == nil || expected.LinePlot == nil {
		return nil, errors.New("pointcloud: digitization does not carry the line plot shape")
	}
	pred := actual.LinePlot.NameToCoordinates
	ref := expected.LinePlot.NameToCoordinates

	common, missing := splitKeys(pred, ref)
	if len(missing) > 0 {
		log.Infof("series missing in extraction: %v", missing)
	}
	if len(common) == 0 {
		return &evaluator.EvaluateResult{
			Outcome:       metric.Incomparable(),
			OverallStatus: evaluator.StatusForOutcome(metric.Incomparable(), evalMetric.Threshold),
			MissingSeries: missing,
		}, nil
	}

	xScale, yScale := referenceScale(ref)
	mode := crit.ErrorMetric
	if mode == "" {
		mode = metric.ErrorMetricRMSE
	}
	var total float64
	for _, name := range common {
		total += seriesError(pred[name], ref[name], xScale, yScale, mode)
	}
	outcome := metric.Unbounded(total / float64(len(common)))
	return &evaluator.EvaluateResult{
		Outcome:       outcome,
		OverallStatus: evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
		MissingSeries: missing,
	}, nil
}

// splitKeys returns the sorted key intersection and the sorted reference
// keys absent from the prediction. Missing series are a non-fatal
// diagnostic: they are excluded from scoring, which under-counts incomplete
// extractions.
func splitKeys(pred, ref map[string][][2]float64) (common, missing []string) {
	for name := range ref {
		if _, ok := pred[name]; ok {
			common = append(common, name)
		} else {
			missing = append(missing, name)
		}
	}
	sort.Strings(common)
	sort.Strings(missing)
	return common, missing
}

// referenceScale computes the per-axis coordinate range over every reference
// series, floored at scaleEpsilon.
func referenceScale(ref map[string][][2]float64) (xScale, yScale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, coords := range ref {
		for _, c := range coords {
			minX = math.Min(minX, c[0])
			minY = math.Min(minY, c[1])
			maxX = math.Max(maxX, c[0])
			maxY = math.Max(maxY, c[1])
		}
	}
	xScale = maxX - minX
	if !(xScale > scaleEpsilon) {
		xScale = scaleEpsilon
	}
	yScale = maxY - minY
	if !(yScale > scaleEpsilon) {
		yScale = scaleEpsilon
	}
	return xScale, yScale
}

// seriesError charges each predicted point the minimum normalized distance
// to any reference point of the same series. A series with no points on
// either side has nothing to measure and contributes zero.
func seriesError(pred, ref [][2]float64, xScale, yScale float64, mode metric.ErrorMetric) float64 {
	if len(pred) == 0 || len(ref) == 0 {
		return 0
	}
	var total float64
	for _, p := range pred {
		minSq := math.Inf(1)
		for _, r := range ref {
			dx := (p[0] - r[0]) / xScale
			dy := (p[1] - r[1]) / yScale
			if d := dx*dx + dy*dy; d < minSq {
				minSq = d
			}
		}
		if mode == metric.ErrorMetricMAE {
			total += math.Sqrt(minSq)
		} else {
			total += minSq
		}
	}
	mean := total / float64(len(pred))
	if mode == metric.ErrorMetricMAE {
		return mean
	}
	return math.Sqrt(mean)
}
