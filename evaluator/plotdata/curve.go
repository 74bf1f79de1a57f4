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
	"math"
	"sort"

	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/internal/lininterp"
	"trpc.group/trpc-go/trpc-ploteval-go/matcher"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// scoreCurves computes the numerical accuracy component over the matched
// series of one subplot pair. Each matched pair is compared as a continuous
// curve: both point sets are mapped into the unit square by their joint
// bounding box, sorted by x and interpolated onto a common grid, and the
// grid RMSE is averaged across series. Degenerate series are excluded from
// the average and reported with a skip reason; when no series qualifies the
// component is 0.0.
func scoreCurves(pred, ref *plot.ExtractedPlotData, match *matcher.Result,
	crit *metric.PlotDataCriterion) (float64, []*evaluator.PerSeriesResult, int) {
	perSeries := make([]*evaluator.PerSeriesResult, 0, len(match.Matched))
	var totalRMSE float64
	scored := 0
	skipped := 0
	for _, predName := range match.Matched {
		refName := match.Pairs[predName]
		result := &evaluator.PerSeriesResult{
			PredictedName: predName,
			ReferenceName: refName,
		}
		rmse, reason := seriesRMSE(seriesPoints(pred.Series(predName)), seriesPoints(ref.Series(refName)), crit.Precision)
		if reason != evaluator.SkipNone {
			result.Skip = reason
			skipped++
		} else {
			result.RMSE = rmse
			totalRMSE += rmse
			scored++
		}
		perSeries = append(perSeries, result)
	}
	if scored == 0 {
		return 0, perSeries, skipped
	}
	avgRMSE := totalRMSE / float64(scored)
	return math.Max(0, 1-avgRMSE/crit.RMSECutoff), perSeries, skipped
}

// seriesPoints flattens a series into raw coordinate pairs. A nil series
// yields no points.
func seriesPoints(s *plot.DataSeries) [][2]float64 {
	if s == nil {
		return nil
	}
	pts := make([][2]float64, 0, len(s.Points))
	for _, p := range s.Points {
		pts = append(pts, [2]float64{p.X, p.Y})
	}
	return pts
}

// seriesRMSE compares one predicted curve with its reference curve and
// returns the RMSE of their normalized, grid-interpolated y values, or a
// skip reason when the geometry does not support interpolation.
func seriesRMSE(predPts, refPts [][2]float64, precision float64) (float64, evaluator.SkipReason) {
	if len(predPts) == 0 || len(refPts) == 0 {
		return 0, evaluator.SkipEmptyPoints
	}
	box, ok := jointBox(predPts, refPts)
	if !ok {
		return 0, evaluator.SkipZeroAxisRange
	}
	predXs, predYs := normalizeSorted(predPts, box)
	refXs, refYs := normalizeSorted(refPts, box)
	// Interpolating a curve narrower than one grid step would be mostly
	// clamped endpoint values.
	if predXs[len(predXs)-1]-predXs[0] < precision || refXs[len(refXs)-1]-refXs[0] < precision {
		return 0, evaluator.SkipShortXSpan
	}
	grid, err := lininterp.UnitGrid(precision)
	if err != nil {
		return 0, evaluator.SkipShortXSpan
	}
	predGrid, err := lininterp.Interp(grid, predXs, predYs)
	if err != nil {
		return 0, evaluator.SkipEmptyPoints
	}
	refGrid, err := lininterp.Interp(grid, refXs, refYs)
	if err != nil {
		return 0, evaluator.SkipEmptyPoints
	}
	var sumSq float64
	for i := range grid {
		d := predGrid[i] - refGrid[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(grid))), evaluator.SkipNone
}

// box is the joint min/range normalization box of two point sets.
type box struct {
	minX, minY     float64
	rangeX, rangeY float64
}

// jointBox computes the component-wise bounding box over the union of both
// point sets. ok is false when either axis has zero range, which makes the
// normalized similarity undefined.
func jointBox(a, b [][2]float64) (box, bool) {
	first := a[0]
	result := box{minX: first[0], minY: first[1]}
	maxX, maxY := first[0], first[1]
	for _, pts := range [][][2]float64{a, b} {
		for _, p := range pts {
			result.minX = math.Min(result.minX, p[0])
			result.minY = math.Min(result.minY, p[1])
			maxX = math.Max(maxX, p[0])
			maxY = math.Max(maxY, p[1])
		}
	}
	result.rangeX = maxX - result.minX
	result.rangeY = maxY - result.minY
	if result.rangeX == 0 || result.rangeY == 0 {
		return box{}, false
	}
	return result, true
}

// normalizeSorted maps points into the unit square via the box and returns
// the coordinates sorted by x (stable, so ties keep input order).
func normalizeSorted(pts [][2]float64, b box) ([]float64, []float64) {
	normalized := make([][2]float64, len(pts))
	for i, p := range pts {
		normalized[i] = [2]float64{
			(p[0] - b.minX) / b.rangeX,
			(p[1] - b.minY) / b.rangeY,
		}
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i][0] < normalized[j][0]
	})
	xs := make([]float64, len(normalized))
	ys := make([]float64, len(normalized))
	for i, p := range normalized {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	return xs, ys
}
