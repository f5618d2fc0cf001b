package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Dataset Metrics
	FilesLoadedTotal *prometheus.CounterVec
	RowsLoadedTotal  prometheus.Counter
	LoadDuration     *prometheus.HistogramVec

	// Pipeline Metrics
	PipelineRunsTotal  *prometheus.CounterVec
	StageFailuresTotal *prometheus.CounterVec
	StageDuration      *prometheus.HistogramVec

	// Network Metrics
	NetworkNodesTotal      prometheus.Gauge
	NetworkEdgesTotal      prometheus.Gauge
	NetworksAssembledTotal prometheus.Counter
	EdgesMergedTotal       prometheus.Counter
	SelfInteractionsTotal  prometheus.Counter

	// Store Metrics
	StoreImportsTotal   *prometheus.CounterVec
	StoreImportDuration prometheus.Histogram

	// System Metrics
	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.RWMutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initDatasetMetrics()
	r.initPipelineMetrics()
	r.initNetworkMetrics()
	r.initStoreMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
