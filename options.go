//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package ploteval

import (
	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
	evalresultinmemory "trpc.group/trpc-go/trpc-ploteval-go/evalresult/inmemory"
	"trpc.group/trpc-go/trpc-ploteval-go/evaluator/registry"
	"trpc.group/trpc-go/trpc-ploteval-go/service"
)

// options holds the configuration of a PlotEvaluator.
type options struct {
	registry          registry.Registry
	evalResultManager evalresult.Manager
	evalService       service.Service
	caseParallelism   int
}

// Option defines a function type for configuring the evaluator.
type Option func(*options)

func newOptions(opt ...Option) *options {
	opts := &options{
		registry:          registry.New(),
		evalResultManager: evalresultinmemory.NewManager(),
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithRegistry sets the evaluator registry.
// Default evaluator registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithEvalResultManager sets the eval result manager.
// InMemory eval result manager is used by default.
func WithEvalResultManager(m evalresult.Manager) Option {
	return func(o *options) {
		o.evalResultManager = m
	}
}

// WithEvalService sets the scoring service. A local service built from the
// other options is used by default.
func WithEvalService(s service.Service) Option {
	return func(o *options) {
		o.evalService = s
	}
}

// WithCaseParallelism enables parallel case scoring with the given pool size.
func WithCaseParallelism(n int) Option {
	return func(o *options) {
		o.caseParallelism = n
	}
}
