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
	"strings"

	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// scoreMetadata compares axis labels after trimming and lowercasing: one
// point per agreeing non-empty label over {x axis, left y axis}. Right-axis
// labels and the plot title are not scored.
func scoreMetadata(pred, ref *plot.PlotMetadata) float64 {
	fields := [][2]string{
		{pred.XAxisLabel, ref.XAxisLabel},
		{pred.LeftYAxisLabel, ref.LeftYAxisLabel},
	}
	points := 0
	for _, f := range fields {
		predLabel := normalizeLabel(f[0])
		refLabel := normalizeLabel(f[1])
		if predLabel != "" && predLabel == refLabel {
			points++
		}
	}
	return float64(points) / float64(len(fields))
}

// normalizeLabel prepares an axis label for comparison.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}
