//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package registry

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// TestNewPreloadsBuiltins verifies that the default registry carries the
// three built-in evaluators.
func TestNewPreloadsBuiltins(t *testing.T) {
	r := New()
	assert.Equal(t, []string{
		metric.MetricNamePlotData,
		metric.MetricNamePointCloud,
		metric.MetricNameTakeaways,
	}, r.List())

	e, err := r.Get(metric.MetricNamePlotData)
	require.NoError(t, err)
	assert.Equal(t, metric.MetricNamePlotData, e.Name())
}

// TestRegisterAndGet verifies registration, name fallback and lookup errors.
func TestRegisterAndGet(t *testing.T) {
	r := New()
	require.Error(t, r.Register("x", nil))

	stub := &stubEvaluator{name: "stub"}
	require.NoError(t, r.Register("", stub))
	got, err := r.Get("stub")
	require.NoError(t, err)
	assert.Same(t, evaluator.Evaluator(stub), got)

	_, err = r.Get("nope")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.Error(t, r.Register("", &stubEvaluator{}))
}

type stubEvaluator struct {
	name string
}

func (s *stubEvaluator) Name() string        { return s.name }
func (s *stubEvaluator) Description() string { return "stub" }
func (s *stubEvaluator) Evaluate(ctx context.Context, actual, expected *plot.Digitization,
	m *metric.EvalMetric) (*evaluator.EvaluateResult, error) {
	return &evaluator.EvaluateResult{Outcome: metric.Bounded(1)}, nil
}
