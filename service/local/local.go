//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package local provides a local implementation of service.Service.
package local

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/panjf2000/ants/v2"

	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
	"trpc.group/trpc-go/trpc-ploteval-go/evaluator/registry"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/service"
	"trpc.group/trpc-go/trpc-ploteval-go/status"
)

// local is a local implementation of service.Service.
type local struct {
	evalResultManager evalresult.Manager
	registry          registry.Registry
	resultIDSupplier  func(ctx context.Context) string
	caseParallelism   int
	parallelEnabled   bool
	casePool          *ants.PoolWithFunc
}

// New returns a new local scoring service.
// If no service.Option is provided, the service will use the default options.
func New(opt ...service.Option) (service.Service, error) {
	opts := service.NewOptions(opt...)
	if opts.ParallelEnabled && opts.CaseParallelism <= 0 {
		return nil, errors.New("case parallelism must be greater than 0")
	}
	if opts.EvalResultManager == nil {
		return nil, errors.New("eval result manager is nil")
	}
	if opts.Registry == nil {
		return nil, errors.New("registry is nil")
	}
	if opts.ResultIDSupplier == nil {
		return nil, errors.New("result id supplier is nil")
	}
	svc := &local{
		evalResultManager: opts.EvalResultManager,
		registry:          opts.Registry,
		resultIDSupplier:  opts.ResultIDSupplier,
		caseParallelism:   opts.CaseParallelism,
		parallelEnabled:   opts.ParallelEnabled,
	}
	if svc.parallelEnabled {
		pool, err := createCaseEvalPool(svc.caseParallelism)
		if err != nil {
			return nil, fmt.Errorf("create case eval pool: %w", err)
		}
		svc.casePool = pool
	}
	return svc, nil
}

// Close closes the scoring service and releases owned resources.
func (s *local) Close() error {
	if s.casePool != nil {
		s.casePool.Release()
	}
	return nil
}

// Evaluate scores every case in the request and returns the persisted eval
// set result. Cases that cannot be scored produce failed case results
// instead of aborting the batch.
func (s *local) Evaluate(ctx context.Context, req *service.EvaluateRequest) (*evalresult.EvalSetResult, error) {
	if req == nil {
		return nil, errors.New("evaluate request is nil")
	}
	if req.EvalSetID == "" {
		return nil, errors.New("eval set id is empty")
	}
	if len(req.Metrics) == 0 {
		return nil, errors.New("no metrics configured")
	}
	caseResults := make([]*evalresult.CaseResult, len(req.Cases))
	if s.parallelEnabled {
		s.evaluateCasesParallel(ctx, req, caseResults)
	} else {
		for i, evalCase := range req.Cases {
			caseResults[i] = s.evaluateCase(ctx, evalCase, req.Metrics)
		}
	}
	evalSetResult := &evalresult.EvalSetResult{
		EvalSetResultID:   s.resultIDSupplier(ctx),
		EvalSetID:         req.EvalSetID,
		CaseResults:       caseResults,
		CreationTimestamp: time.Now(),
	}
	if err := s.evalResultManager.Save(ctx, evalSetResult); err != nil {
		return nil, fmt.Errorf("save eval set result: %w", err)
	}
	return evalSetResult, nil
}

// evaluateCasesParallel submits every case to the shared pool and waits for
// the batch to finish. Each worker writes into its own results slot.
func (s *local) evaluateCasesParallel(ctx context.Context, req *service.EvaluateRequest,
	results []*evalresult.CaseResult) {
	var wg sync.WaitGroup
	for i, evalCase := range req.Cases {
		wg.Add(1)
		param := caseEvalParamPool.Get().(*caseEvalParam)
		param.idx = i
		param.ctx = ctx
		param.evalCase = evalCase
		param.metrics = req.Metrics
		param.svc = s
		param.results = results
		param.wg = &wg
		if err := s.casePool.Invoke(param); err != nil {
			param.reset()
			caseEvalParamPool.Put(param)
			results[i] = failedCaseResult(evalCase, fmt.Errorf("submit case: %w", err))
			wg.Done()
		}
	}
	wg.Wait()
}

// evaluateCase runs every configured metric against one case. Metric errors
// are aggregated so a single broken metric does not hide the others.
func (s *local) evaluateCase(ctx context.Context, evalCase *service.EvalCase,
	metrics []*metric.EvalMetric) *evalresult.CaseResult {
	if evalCase == nil {
		return failedCaseResult(nil, errors.New("eval case is nil"))
	}
	if evalCase.Actual == nil || evalCase.Expected == nil {
		return failedCaseResult(evalCase, errors.New("eval case digitizations are nil"))
	}
	metricResults := make([]*evalresult.MetricResult, 0, len(metrics))
	var merr *multierror.Error
	for _, evalMetric := range metrics {
		result, err := s.evaluateMetric(ctx, evalCase, evalMetric)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("metric %s: %w", evalMetric.MetricName, err))
			continue
		}
		metricResults = append(metricResults, result)
	}
	if err := merr.ErrorOrNil(); err != nil && len(metricResults) == 0 {
		return failedCaseResult(evalCase, err)
	}
	caseResult := &evalresult.CaseResult{
		CaseID:        evalCase.CaseID,
		FinalStatus:   summarizeStatus(metricResults),
		MetricResults: metricResults,
	}
	if err := merr.ErrorOrNil(); err != nil {
		caseResult.ErrorMessage = err.Error()
	}
	return caseResult
}

// evaluateMetric locates the evaluator registered for the metric and runs it.
func (s *local) evaluateMetric(ctx context.Context, evalCase *service.EvalCase,
	evalMetric *metric.EvalMetric) (*evalresult.MetricResult, error) {
	metricEvaluator, err := s.registry.Get(evalMetric.MetricName)
	if err != nil {
		return nil, fmt.Errorf("get evaluator: %w", err)
	}
	result, err := metricEvaluator.Evaluate(ctx, evalCase.Actual, evalCase.Expected, evalMetric)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return &evalresult.MetricResult{
		MetricName:     evalMetric.MetricName,
		Outcome:        result.Outcome,
		Status:         result.OverallStatus,
		Threshold:      evalMetric.Threshold,
		PerPlotResults: result.PerPlotResults,
		MissingSeries:  result.MissingSeries,
	}, nil
}

// failedCaseResult records a case that could not be scored at all.
func failedCaseResult(evalCase *service.EvalCase, err error) *evalresult.CaseResult {
	result := &evalresult.CaseResult{
		FinalStatus:  status.EvalStatusFailed,
		ErrorMessage: err.Error(),
	}
	if evalCase != nil {
		result.CaseID = evalCase.CaseID
	}
	return result
}

// summarizeStatus reduces the per-metric statuses to a case status: any
// failure fails the case, any pass without failures passes it, and a case
// whose metrics were all incomparable stays not evaluated.
func summarizeStatus(results []*evalresult.MetricResult) status.EvalStatus {
	finalStatus := status.EvalStatusNotEvaluated
	for _, result := range results {
		switch result.Status {
		case status.EvalStatusFailed:
			return status.EvalStatusFailed
		case status.EvalStatusPassed:
			finalStatus = status.EvalStatusPassed
		case status.EvalStatusUnknown:
			if finalStatus == status.EvalStatusNotEvaluated {
				finalStatus = status.EvalStatusUnknown
			}
		}
	}
	return finalStatus
}
