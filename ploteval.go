//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package ploteval orchestrates plot digitization scoring runs and
// aggregates their results.
package ploteval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
	"trpc.group/trpc-go/trpc-ploteval-go/service"
	"trpc.group/trpc-go/trpc-ploteval-go/service/local"
	"trpc.group/trpc-go/trpc-ploteval-go/status"
)

// PlotEvaluator scores batches of digitized figures against ground truth.
type PlotEvaluator interface {
	// Evaluate scores every case in the request.
	Evaluate(ctx context.Context, request *service.EvaluateRequest) (*EvaluationResult, error)
	// Close closes the evaluator and releases owned resources.
	Close() error
}

// EvaluationResult contains the aggregated outcome of one scoring run.
type EvaluationResult struct {
	EvalSetID     string                    `json:"evalSetId"`     // EvalSetID identifies the scored batch.
	OverallStatus status.EvalStatus         `json:"overallStatus"` // OverallStatus summarizes the case statuses.
	ExecutionTime time.Duration             `json:"executionTime"` // ExecutionTime records the total latency of the run.
	EvalResult    *evalresult.EvalSetResult `json:"evalSetResult"` // EvalResult contains the per-case results.
}

// New creates a PlotEvaluator with the supplied options.
func New(opt ...Option) (PlotEvaluator, error) {
	opts := newOptions(opt...)
	if opts.registry == nil {
		return nil, errors.New("registry is nil")
	}
	if opts.evalResultManager == nil {
		return nil, errors.New("eval result manager is nil")
	}
	p := &plotEvaluator{
		evalResultManager: opts.evalResultManager,
		evalService:       opts.evalService,
	}
	if p.evalService == nil {
		serviceOpts := []service.Option{
			service.WithEvalResultManager(opts.evalResultManager),
			service.WithRegistry(opts.registry),
		}
		if opts.caseParallelism > 0 {
			serviceOpts = append(serviceOpts, service.WithCaseParallelism(opts.caseParallelism))
		}
		evalService, err := local.New(serviceOpts...)
		if err != nil {
			return nil, fmt.Errorf("create eval service: %w", err)
		}
		p.evalService = evalService
	}
	return p, nil
}

// plotEvaluator is the default implementation of PlotEvaluator.
type plotEvaluator struct {
	evalResultManager evalresult.Manager
	evalService       service.Service
}

// Evaluate scores every case in the request and summarizes the outcome.
func (p *plotEvaluator) Evaluate(ctx context.Context, request *service.EvaluateRequest) (*EvaluationResult, error) {
	if request == nil {
		return nil, errors.New("evaluate request is nil")
	}
	start := time.Now()
	evalSetResult, err := p.evalService.Evaluate(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("evaluate eval set %s: %w", request.EvalSetID, err)
	}
	return &EvaluationResult{
		EvalSetID:     request.EvalSetID,
		OverallStatus: summarizeOverallStatus(evalSetResult.CaseResults),
		ExecutionTime: time.Since(start),
		EvalResult:    evalSetResult,
	}, nil
}

// Close closes the evaluator and releases owned resources.
func (p *plotEvaluator) Close() error {
	if p.evalService != nil {
		if err := p.evalService.Close(); err != nil {
			return fmt.Errorf("close eval service: %w", err)
		}
	}
	return nil
}

// summarizeOverallStatus reduces the case statuses to a run status: any
// failure fails the run, any pass without failures passes it, and a run
// whose cases were all incomparable stays not evaluated.
func summarizeOverallStatus(caseResults []*evalresult.CaseResult) status.EvalStatus {
	overall := status.EvalStatusNotEvaluated
	for _, caseResult := range caseResults {
		switch caseResult.FinalStatus {
		case status.EvalStatusFailed:
			return status.EvalStatusFailed
		case status.EvalStatusPassed:
			overall = status.EvalStatusPassed
		case status.EvalStatusUnknown:
			if overall == status.EvalStatusNotEvaluated {
				overall = status.EvalStatusUnknown
			}
		}
	}
	return overall
}
