//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides evaluation result records for digitization
// scoring runs.
package evalresult

import (
	"context"
	"time"

	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/status"
)

// EvalSetResult represents the scoring results for one batch of figures.
type EvalSetResult struct {
	// EvalSetResultID uniquely identifies this result.
	EvalSetResultID string `json:"evalSetResultId,omitempty"`
	// EvalSetID identifies the batch of figures that was scored.
	EvalSetID string `json:"evalSetId,omitempty"`
	// CaseResults contains results for each figure.
	CaseResults []*CaseResult `json:"caseResults,omitempty"`
	// CreationTimestamp when this result was created.
	CreationTimestamp time.Time `json:"creationTimestamp,omitempty"`
}

// CaseResult represents the scoring result for a single figure.
type CaseResult struct {
	// CaseID identifies the figure.
	CaseID string `json:"caseId,omitempty"`
	// FinalStatus is the reduced status across all metrics for this figure.
	FinalStatus status.EvalStatus `json:"finalStatus,omitempty"`
	// MetricResults contains the result of each metric.
	MetricResults []*MetricResult `json:"metricResults,omitempty"`
	// ErrorMessage contains error details if the case could not be scored.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// MetricResult represents the result of a single metric evaluation.
type MetricResult struct {
	// MetricName identifies the metric.
	MetricName string `json:"metricName,omitempty"`
	// Outcome is the tagged score or distance.
	Outcome metric.Outcome `json:"outcome"`
	// Status of this metric evaluation.
	Status status.EvalStatus `json:"status,omitempty"`
	// Threshold that was used.
	Threshold float64 `json:"threshold,omitempty"`
	// PerPlotResults breaks the outcome down per subplot pair.
	PerPlotResults []*evaluator.PerPlotResult `json:"perPlotResults,omitempty"`
	// MissingSeries lists reference series absent from the prediction.
	MissingSeries []string `json:"missingSeries,omitempty"`
}

// Manager defines the interface for managing evaluation results.
type Manager interface {
	// Save stores an evaluation result.
	Save(ctx context.Context, result *EvalSetResult) error
	// Get retrieves an evaluation result by evalSetResultID.
	Get(ctx context.Context, evalSetResultID string) (*EvalSetResult, error)
	// List returns all stored evaluation results.
	List(ctx context.Context) ([]*EvalSetResult, error)
}
