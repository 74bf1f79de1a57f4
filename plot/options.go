//
// Tencent is pleased to support the open source community by making trpc-ploteval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-ploteval-go is licensed under the Apache License Version 2.0.
//
//

package plot

// seriesOptions holds the optional visual attributes of a data series.
type seriesOptions struct {
	color       string
	markerStyle string
}

// SeriesOption configures optional attributes on NewDataSeries.
type SeriesOption func(*seriesOptions)

// WithColor sets the series color.
func WithColor(color string) SeriesOption {
	return func(o *seriesOptions) {
		o.color = color
	}
}

// WithMarkerStyle sets the series marker style.
func WithMarkerStyle(style string) SeriesOption {
	return func(o *seriesOptions) {
		o.markerStyle = style
	}
}

func newSeriesOptions(opt ...SeriesOption) *seriesOptions {
	opts := &seriesOptions{}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
