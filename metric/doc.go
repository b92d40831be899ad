// Copyright 2024 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package metric decorates retry handlers with Prometheus
// instrumentation, so retry behavior can be watched in production
// without any metrics code in the handlers themselves.
//
// A Metrics value bundles the collectors: a counter of attempt
// outcomes partitioned by the decision made about them (ok, repeat,
// wait, forward) and a histogram of the wait durations scheduled
// between attempts. Metrics implements prometheus.Collector, so it
// registers like any other collector, and one Metrics value is
// typically shared by every decorated handler in the process.
//
//	m := metric.New()
//	prometheus.MustRegister(m)
//	h := metric.Handler(m, policy.Default())
//	conn, err := retryx.Do(ctx, factory, h)
//
// The wrapped handler's decisions are returned unchanged, so
// decorating a handler never alters retry behavior.
package metric
