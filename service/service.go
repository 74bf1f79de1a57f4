//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package service provides the batch scoring service contract.
package service

import (
	"context"

	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// Service runs configured metrics over batches of digitized figures.
type Service interface {
	// Evaluate scores every case in the request and returns the persisted
	// eval set result.
	Evaluate(ctx context.Context, request *EvaluateRequest) (*evalresult.EvalSetResult, error)
	// Close releases owned resources.
	Close() error
}

// EvalCase pairs one predicted digitization with its reference.
type EvalCase struct {
	// CaseID identifies the figure.
	CaseID string `json:"case_id"`
	// Actual is the predicted digitization.
	Actual *plot.Digitization `json:"actual"`
	// Expected is the reference digitization.
	Expected *plot.Digitization `json:"expected"`
}

// EvaluateRequest represents a request to score a batch of figures.
type EvaluateRequest struct {
	// EvalSetID identifies the batch.
	EvalSetID string `json:"eval_set_id"`
	// Cases are the figures to score.
	Cases []*EvalCase `json:"cases"`
	// Metrics are run against every case.
	Metrics []*metric.EvalMetric `json:"metrics"`
}
