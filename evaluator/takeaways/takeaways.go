//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package takeaways provides a deterministic evaluator for the technical
// takeaways attached to structured plot digitizations.
package takeaways

import (
	"context"
	"errors"
	"fmt"

	"trpc.group/trpc-go/trpc-ploteval-go/evaluator"
	"trpc.group/trpc-go/trpc-ploteval-go/internal/textscore"
	"trpc.group/trpc-go/trpc-ploteval-go/metric"
	"trpc.group/trpc-go/trpc-ploteval-go/plot"
)

// takeawaysEvaluator scores predicted technical takeaways against reference
// takeaways by unigram overlap.
type takeawaysEvaluator struct {
}

// New creates a new takeaways evaluator.
func New() evaluator.Evaluator {
	return &takeawaysEvaluator{}
}

// Name returns the evaluator identifier.
func (e *takeawaysEvaluator) Name() string {
	return metric.MetricNameTakeaways
}

// Description describes the evaluator purpose.
func (e *takeawaysEvaluator) Description() string {
	return "Scores technical takeaways against reference takeaways by best-pair unigram overlap"
}

// Evaluate splits both sides' takeaways into sentences and scores each
// reference sentence by its best unigram F1 against any predicted sentence,
// averaged into a bounded score. The score is recall-oriented: extra
// predicted statements are not penalized, absent reference statements are.
// When neither side carries takeaways there is nothing to compare and the
// outcome is incomparable.
func (e *takeawaysEvaluator) Evaluate(ctx context.Context, actual, expected *plot.Digitization,
	evalMetric *metric.EvalMetric) (*evaluator.EvaluateResult, error) {
	if evalMetric == nil {
		return nil, errors.New("eval metric not configured")
	}
	if actual == nil || expected == nil {
		return nil, errors.New("takeaways: digitization is nil")
	}
	predSentences, err := collectSentences(actual)
	if err != nil {
		return nil, fmt.Errorf("takeaways: split predicted: %w", err)
	}
	refSentences, err := collectSentences(expected)
	if err != nil {
		return nil, fmt.Errorf("takeaways: split reference: %w", err)
	}
	if len(predSentences) == 0 && len(refSentences) == 0 {
		outcome := metric.Incomparable()
		return &evaluator.EvaluateResult{
			Outcome:       outcome,
			OverallStatus: evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
		}, nil
	}
	if len(predSentences) == 0 || len(refSentences) == 0 {
		outcome := metric.Bounded(0)
		return &evaluator.EvaluateResult{
			Outcome:       outcome,
			OverallStatus: evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
		}, nil
	}
	var total float64
	for _, ref := range refSentences {
		best := 0.0
		for _, pred := range predSentences {
			if f1 := textscore.Overlap(ref, pred).F1; f1 > best {
				best = f1
			}
		}
		total += best
	}
	outcome := metric.Bounded(total / float64(len(refSentences)))
	return &evaluator.EvaluateResult{
		Outcome:       outcome,
		OverallStatus: evaluator.StatusForOutcome(outcome, evalMetric.Threshold),
	}, nil
}

// collectSentences flattens the takeaways of every subplot into sentences.
func collectSentences(d *plot.Digitization) ([]string, error) {
	var out []string
	for _, sp := range d.Subplots {
		if sp == nil {
			continue
		}
		for _, takeaway := range sp.TechnicalTakeaways {
			split, err := textscore.SplitSentences(takeaway)
			if err != nil {
				return nil, err
			}
			out = append(out, split...)
		}
	}
	return out, nil
}
