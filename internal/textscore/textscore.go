//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

// Package textscore provides unigram overlap scoring for short technical
// statements, with Punkt-based sentence splitting.
package textscore

import (
	"strings"
	"unicode"
)

// Score holds precision, recall and F1 of a unigram overlap.
type Score struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Tokens lowercases the text and splits it into alphanumeric runs.
func Tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Overlap computes count-clipped unigram precision, recall and F1 between a
// target (reference) text and a prediction.
func Overlap(target, prediction string) Score {
	targetTokens := Tokens(target)
	predTokens := Tokens(prediction)
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	targetCounts := make(map[string]int, len(targetTokens))
	for _, tok := range targetTokens {
		targetCounts[tok]++
	}
	overlap := 0
	remaining := make(map[string]int, len(targetCounts))
	for tok, n := range targetCounts {
		remaining[tok] = n
	}
	for _, tok := range predTokens {
		if remaining[tok] > 0 {
			remaining[tok]--
			overlap++
		}
	}
	precision := float64(overlap) / float64(len(predTokens))
	recall := float64(overlap) / float64(len(targetTokens))
	score := Score{Precision: precision, Recall: recall}
	if precision+recall > 0 {
		score.F1 = 2 * precision * recall / (precision + recall)
	}
	return score
}
