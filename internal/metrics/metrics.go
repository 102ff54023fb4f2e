// satchat - SMS and JSON relay to a generative-text service
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// Package metrics provides Prometheus metrics and HTTP middleware for satchat.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LatencyBuckets span 100ms to 60s, the range of a single generation call.
var LatencyBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

var (
	// RequestsTotal counts HTTP requests by method, route pattern, and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "satchat_http_requests_total",
			Help: "HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration records HTTP request duration in seconds.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "satchat_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: LatencyBuckets,
		},
		[]string{"method", "route"},
	)

	// TranslationsTotal counts relay translations by transport and result
	// (ok, invalid, generation_error).
	TranslationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "satchat_translations_total",
			Help: "Relay translations",
		},
		[]string{"transport", "result"},
	)

	// GenerationsTotal counts calls to the generation backend.
	GenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "satchat_generations_total",
			Help: "Generation calls",
		},
		[]string{"provider", "status"},
	)

	// GenerationLatency records generation backend latency in seconds.
	GenerationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "satchat_generation_latency_seconds",
			Help:    "Generation latency",
			Buckets: LatencyBuckets,
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		TranslationsTotal,
		GenerationsTotal,
		GenerationLatency,
	)
}

// Handler serves the default registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
