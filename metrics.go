/*
Copyright 2025 Meldq Authors. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package leftist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricsPushesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "meldq_heap_pushes_total",
	Help: "Number of elements pushed into the heap since the process was started",
}, []string{"id"})

var metricsPopsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "meldq_heap_pops_total",
	Help: "Number of elements popped from the heap since the process was started",
}, []string{"id"})

var metricsMergesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "meldq_heap_merges_total",
	Help: "Number of heaps absorbed through merge since the process was started",
}, []string{"id"})

var metricsAbortedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "meldq_heap_aborted_operations_total",
	Help: "Number of operations aborted by a failing comparator, per operation kind",
}, []string{"id", "op"})

var metricsSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "meldq_heap_size",
	Help: "Current number of elements in the heap",
}, []string{"id"})
