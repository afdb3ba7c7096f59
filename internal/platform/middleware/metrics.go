// Copyright (c) 2026 Code2Lead. All rights reserved.

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/metrics"
)

// Metrics records request counts, latencies and in-flight requests.
//
// The route label is the chi route pattern (e.g. "/api/courses/{courseID}"), which is
// only known once routing has happened; unmatched requests are labelled "unmatched".
func Metrics(prom *metrics.Prom) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()
			method := request.Method

			prom.InFlight.WithLabelValues(method).Inc()
			defer prom.InFlight.WithLabelValues(method).Dec()

			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(recorder, request)

			route := "unmatched"
			if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
				if pattern := routeContext.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := strconv.Itoa(recorder.status)
			prom.RequestsTotal.WithLabelValues(method, route, status).Inc()
			prom.RequestsDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
		})
	}
}
