// Copyright 2026 The tscope Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric identifiers, one per tool.
const (
	metricDefinition    = "definition"
	metricDeadCode      = "dead_code"
	metricCallHierarchy = "call_hierarchy"
	metricSignatureHelp = "signature_help"
	metricSafeDelete    = "safe_delete"
)

// metricsTools holds Prometheus metrics for the tool handlers.
type metricsTools struct {
	once sync.Once

	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

var toolMetrics metricsTools

func (m *metricsTools) init() {
	m.once.Do(func() {
		m.calls = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tscope_tool_calls_total",
			Help: "Tool invocations by tool name",
		}, []string{"tool"})
		m.durations = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tscope_tool_seconds",
			Help:    "Tool handler duration by tool name",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"tool"})

		prometheus.MustRegister(m.calls, m.durations)
	})
}

// observe counts one tool invocation and returns the closure that records
// its duration; handlers defer it at entry.
func observe(tool string) func() {
	toolMetrics.init()
	toolMetrics.calls.WithLabelValues(tool).Inc()
	start := time.Now()
	return func() {
		toolMetrics.durations.WithLabelValues(tool).Observe(time.Since(start).Seconds())
	}
}
