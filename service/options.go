//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package service

import (
	"context"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
	evalresultinmemory "trpc.group/trpc-go/trpc-ploteval-go/evalresult/inmemory"
	"trpc.group/trpc-go/trpc-ploteval-go/evaluator/registry"
)

// Options holds the options for the scoring service.
type Options struct {
	EvalResultManager evalresult.Manager               // EvalResultManager is used to store and retrieve eval results.
	Registry          registry.Registry                // Registry is used to look up evaluators by metric name.
	ResultIDSupplier  func(ctx context.Context) string // ResultIDSupplier generates eval set result IDs.
	CaseParallelism   int                              // CaseParallelism is the pool size for parallel case scoring.
	ParallelEnabled   bool                             // ParallelEnabled toggles parallel case scoring.
}

// Option defines a function type for configuring the scoring service.
type Option func(*Options)

// NewOptions creates a new Options with the default values.
func NewOptions(opt ...Option) *Options {
	opts := &Options{
		EvalResultManager: evalresultinmemory.NewManager(),
		Registry:          registry.New(),
		ResultIDSupplier: func(ctx context.Context) string {
			return uuid.New().String()
		},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// WithEvalResultManager sets the eval result manager.
// InMemory eval result manager is used by default.
func WithEvalResultManager(m evalresult.Manager) Option {
	return func(o *Options) {
		o.EvalResultManager = m
	}
}

// WithRegistry sets the evaluator registry.
// Default evaluator registry is used by default.
func WithRegistry(r registry.Registry) Option {
	return func(o *Options) {
		o.Registry = r
	}
}

// WithResultIDSupplier sets the function used to generate result IDs.
// UUID generator is used by default.
func WithResultIDSupplier(s func(ctx context.Context) string) Option {
	return func(o *Options) {
		o.ResultIDSupplier = s
	}
}

// WithCaseParallelism enables parallel case scoring with the given pool size.
func WithCaseParallelism(n int) Option {
	return func(o *Options) {
		o.CaseParallelism = n
		o.ParallelEnabled = true
	}
}
