//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package lininterp implements clamped piecewise linear interpolation of a
// sampled curve onto a fixed unit grid.
package lininterp

import (
	"fmt"
	"sort"
)

// gridEpsilon absorbs float accumulation when building the unit grid.
const gridEpsilon = 1e-9

// UnitGrid returns the inclusive grid 0, step, 2*step, ..., 1.0.
// The end point 1.0 is always included even when step does not divide 1.
func UnitGrid(step float64) ([]float64, error) {
	if step <= 0 || step > 1 {
		return nil, fmt.Errorf("invalid grid step %v", step)
	}
	n := int((1 + gridEpsilon) / step)
	grid := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		grid = append(grid, float64(i)*step)
	}
	if grid[len(grid)-1] < 1-gridEpsilon {
		grid = append(grid, 1)
	} else {
		grid[len(grid)-1] = 1
	}
	return grid, nil
}

// Interp evaluates the piecewise linear curve defined by (xs, ys) at each
// grid point. xs must be sorted ascending; grid points outside [xs[0],
// xs[last]] clamp to the nearest endpoint value (no extrapolation).
func Interp(grid, xs, ys []float64) ([]float64, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched curve samples: %d x values, %d y values", len(xs), len(ys))
	}
	out := make([]float64, len(grid))
	for i, g := range grid {
		out[i] = at(g, xs, ys)
	}
	return out, nil
}

// at evaluates the curve at a single x.
func at(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x >= xs[last] {
		return ys[last]
	}
	// First index with xs[j] >= x; the segment is [j-1, j].
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j]
	}
	x0, x1 := xs[j-1], xs[j]
	y0, y1 := ys[j-1], ys[j]
	if x1 == x0 {
		return y1
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
