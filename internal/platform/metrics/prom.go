// Copyright (c) 2026 Code2Lead. All rights reserved.

// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "code2lead"

// Login outcomes recorded by [Prom.LoginResults].
const (
	LoginSucceeded   = "success"
	LoginRejected    = "invalid_credentials"
	LoginLocked      = "locked"
	LoginDeactivated = "deactivated"
)

// Prom groups every collector the API exports.
type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec

	// Auth
	LoginResults *prometheus.CounterVec
	HashDuration *prometheus.HistogramVec
}

// NewProm creates the collectors and registers them on reg.
func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method"},
		),
		LoginResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "login_results_total",
				Help:      "Login attempts by outcome.",
			},
			[]string{"result"},
		),
		HashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "password_hash_duration_seconds",
				Help:      "bcrypt hash/verify latency including time spent waiting for a slot.",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"op"},
		),
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.InFlight, p.LoginResults, p.HashDuration)

	return p
}

// ObserveLogin increments the login outcome counter. It is safe on a nil receiver.
func (p *Prom) ObserveLogin(result string) {
	if p == nil {
		return
	}
	p.LoginResults.WithLabelValues(result).Inc()
}

// ObserveHash records a hash or verify duration in seconds. It is safe on a nil receiver.
func (p *Prom) ObserveHash(op string, seconds float64) {
	if p == nil {
		return
	}
	p.HashDuration.WithLabelValues(op).Observe(seconds)
}
