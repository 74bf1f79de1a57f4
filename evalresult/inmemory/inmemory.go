//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for
// evaluation results.
package inmemory

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"trpc.group/trpc-go/trpc-ploteval-go/evalresult"
)

// Manager implements the evalresult.Manager interface using in-memory storage.
type Manager struct {
	mu      sync.RWMutex
	results map[string]*evalresult.EvalSetResult
}

// NewManager creates a new in-memory evaluation result manager.
func NewManager() *Manager {
	return &Manager{
		results: make(map[string]*evalresult.EvalSetResult),
	}
}

// Save stores an evaluation result in memory.
func (m *Manager) Save(ctx context.Context, result *evalresult.EvalSetResult) error {
	if result == nil {
		return errors.New("eval set result is nil")
	}
	if result.EvalSetResultID == "" {
		return errors.New("eval set result id is empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result.EvalSetResultID] = result
	return nil
}

// Get retrieves an evaluation result by evalSetResultID from memory.
// Returns os.ErrNotExist if the result is not found.
func (m *Manager) Get(ctx context.Context, evalSetResultID string) (*evalresult.EvalSetResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.results[evalSetResultID]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("get eval set result %s: %w", evalSetResultID, os.ErrNotExist)
}

// List returns all stored evaluation results sorted by result ID.
func (m *Manager) List(ctx context.Context) ([]*evalresult.EvalSetResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*evalresult.EvalSetResult, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EvalSetResultID < out[j].EvalSetResultID
	})
	return out, nil
}
