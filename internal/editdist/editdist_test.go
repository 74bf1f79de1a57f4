//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package editdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDistance verifies the edit distance on known pairs.
func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"Temperature", "temperature", 1},
		{"höhe", "hohe", 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Distance(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}

// TestNormalized verifies normalization by the longer string length.
func TestNormalized(t *testing.T) {
	assert.Equal(t, 0.0, Normalized("", ""))
	assert.Equal(t, 1.0, Normalized("", "ab"))
	assert.InDelta(t, 3.0/7.0, Normalized("kitten", "sitting"), 1e-12)
	assert.Equal(t, 0.0, Normalized("same", "same"))
}
