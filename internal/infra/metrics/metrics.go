package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote operation names used as the "operation" label.
const (
	OperationGet    = "get"
	OperationInsert = "insert"
	OperationResize = "resize"
)

// Remote operation outcomes used as the "result" label.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

var observedVMCount = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "reservation_helper_observed_vm_count",
		Help: "VM count of the reservation as last observed (0 when the fetch failed).",
	},
)

var targetVMCount = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "reservation_helper_target_vm_count",
		Help: "Desired final VM count of the reservation.",
	},
)

var operationsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "reservation_helper_operations_total",
		Help: "Total number of remote reservation operations by operation and result.",
	},
	[]string{"operation", "result"},
)

// SetObservedVMCount publishes the last observed reservation size.
func SetObservedVMCount(count int64) {
	observedVMCount.Set(float64(count))
}

// SetTargetVMCount publishes the desired reservation size.
func SetTargetVMCount(count int64) {
	targetVMCount.Set(float64(count))
}

// RecordOperation increments the counter of remote operations.
func RecordOperation(operation, result string) {
	operationsTotal.WithLabelValues(operation, result).Inc()
}
