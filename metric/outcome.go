//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package metric

// OutcomeKind tags which scale an Outcome value lives on.
type OutcomeKind int

const (
	// OutcomeIncomparable means no comparison was possible (for example,
	// no common series between prediction and reference). It carries no
	// value and is distinct from a zero score.
	OutcomeIncomparable OutcomeKind = iota
	// OutcomeBounded means Value is a score in [0, 1], higher is better.
	OutcomeBounded
	// OutcomeUnbounded means Value is a non-negative distance with no
	// fixed upper bound, lower is better.
	OutcomeUnbounded
)

// String returns the string representation of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeBounded:
		return "bounded"
	case OutcomeUnbounded:
		return "unbounded"
	default:
		return "incomparable"
	}
}

// Outcome is the tagged result shared by all evaluators. Bounded scores and
// unbounded distances live on incompatible scales, so the kind must be
// inspected before comparing values across metrics.
type Outcome struct {
	// Kind tags the scale of Value.
	Kind OutcomeKind `json:"kind"`
	// Value is the score or distance; meaningless when incomparable.
	Value float64 `json:"value,omitempty"`
}

// Bounded returns a bounded outcome with a score in [0, 1].
func Bounded(score float64) Outcome {
	return Outcome{Kind: OutcomeBounded, Value: score}
}

// Unbounded returns an unbounded outcome with a non-negative distance.
func Unbounded(distance float64) Outcome {
	return Outcome{Kind: OutcomeUnbounded, Value: distance}
}

// Incomparable returns the outcome used when no comparison is possible.
func Incomparable() Outcome {
	return Outcome{Kind: OutcomeIncomparable}
}

// IsComparable reports whether the outcome carries a usable value.
func (o Outcome) IsComparable() bool {
	return o.Kind != OutcomeIncomparable
}
