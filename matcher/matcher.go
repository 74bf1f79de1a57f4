//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package matcher provides pluggable series name matching strategies.
package matcher

import "sort"

// Matcher aligns predicted series names with reference series names.
type Matcher interface {
	// Name returns the strategy identifier.
	Name() string
	// Match aligns the two name sets and reports the match fraction.
	Match(predicted, reference []string) *Result
}

// Result holds the outcome of one series matching pass.
type Result struct {
	// MatchFraction is |matched| / |predicted|. Both sets empty yields 1.0;
	// one set empty yields 0.0 (nothing extracted, or every predicted
	// series hallucinated).
	MatchFraction float64 `json:"match_fraction"`
	// Pairs maps each matched predicted name to its reference name.
	Pairs map[string]string `json:"pairs,omitempty"`
	// Matched lists the matched predicted names in sorted order.
	Matched []string `json:"matched,omitempty"`
}

// fraction applies the shared empty-set rules to a match count.
func fraction(matched, predicted, reference int) float64 {
	if predicted == 0 {
		if reference == 0 {
			return 1.0
		}
		return 0.0
	}
	if reference == 0 {
		return 0.0
	}
	return float64(matched) / float64(predicted)
}

// uniqueNames deduplicates names preserving set semantics.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// newResult assembles a Result from assigned pairs.
func newResult(pairs map[string]string, predicted, reference int) *Result {
	matched := make([]string, 0, len(pairs))
	for p := range pairs {
		matched = append(matched, p)
	}
	sort.Strings(matched)
	return &Result{
		MatchFraction: fraction(len(pairs), predicted, reference),
		Pairs:         pairs,
		Matched:       matched,
	}
}
