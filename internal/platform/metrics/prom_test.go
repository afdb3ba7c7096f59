// Copyright (c) 2026 Code2Lead. All rights reserved.

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/metrics"
)

/*
TestProm_ObserveLogin verifies that login outcomes are counted per result label.
*/
func TestProm_ObserveLogin(t *testing.T) {
	prom := metrics.NewProm(prometheus.NewRegistry())

	prom.ObserveLogin(metrics.LoginSucceeded)
	prom.ObserveLogin(metrics.LoginSucceeded)
	prom.ObserveLogin(metrics.LoginLocked)

	assert.Equal(t, 2.0, testutil.ToFloat64(prom.LoginResults.WithLabelValues(metrics.LoginSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(prom.LoginResults.WithLabelValues(metrics.LoginLocked)))
}

/*
TestProm_NilReceiver verifies that services built without metrics do not panic.
*/
func TestProm_NilReceiver(t *testing.T) {
	var prom *metrics.Prom

	assert.NotPanics(t, func() {
		prom.ObserveLogin(metrics.LoginRejected)
		prom.ObserveHash("hash", 0.1)
	})
}
