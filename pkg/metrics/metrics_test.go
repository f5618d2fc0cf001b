package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.FilesLoadedTotal == nil {
		t.Error("FilesLoadedTotal not initialized")
	}
	if r.StageDuration == nil {
		t.Error("StageDuration not initialized")
	}
	if r.NetworkNodesTotal == nil {
		t.Error("NetworkNodesTotal not initialized")
	}
	if r.StoreImportsTotal == nil {
		t.Error("StoreImportsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordLoad(t *testing.T) {
	r := NewRegistry()

	r.RecordLoad("tsv", "success", 10*time.Millisecond, 8)
	r.RecordLoad("tsv", "success", 20*time.Millisecond, 4)
	r.RecordLoad("zip", "error", 5*time.Millisecond, 0)

	counter, err := r.FilesLoadedTotal.GetMetricWithLabelValues("tsv", "success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Load counter = %v, want 2", metric.Counter.GetValue())
	}

	if err := r.RowsLoadedTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 12 {
		t.Errorf("Rows loaded = %v, want 12", metric.Counter.GetValue())
	}
}

func TestRecordStage(t *testing.T) {
	r := NewRegistry()

	r.RecordStage("load", "success", 10*time.Millisecond)
	r.RecordStage("validate", "error", 5*time.Millisecond)
	r.RecordStage("validate", "error", 5*time.Millisecond)

	failures, err := r.StageFailuresTotal.GetMetricWithLabelValues("validate")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := failures.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Validate failures = %v, want 2", metric.Counter.GetValue())
	}

	// Successful stages must not count as failures
	loadFailures, err := r.StageFailuresTotal.GetMetricWithLabelValues("load")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if err := loadFailures.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 0 {
		t.Errorf("Load failures = %v, want 0", metric.Counter.GetValue())
	}
}

func TestRecordAssembly(t *testing.T) {
	r := NewRegistry()

	r.RecordAssembly(7, 7, 1, 0)
	r.RecordAssembly(3, 2, 0, 1)

	var metric dto.Metric
	if err := r.NetworkNodesTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() != 3 {
		t.Errorf("Node gauge = %v, want 3 (last assembly)", metric.Gauge.GetValue())
	}

	if err := r.NetworksAssembledTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Assemblies = %v, want 2", metric.Counter.GetValue())
	}

	if err := r.EdgesMergedTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("Merged edges = %v, want 1", metric.Counter.GetValue())
	}

	if err := r.SelfInteractionsTotal.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 1 {
		t.Errorf("Self interactions = %v, want 1", metric.Counter.GetValue())
	}
}

func TestRecordStoreImport(t *testing.T) {
	r := NewRegistry()

	r.RecordStoreImport("success", 100*time.Millisecond)
	r.RecordStoreImport("success", 200*time.Millisecond)
	r.RecordStoreImport("error", 50*time.Millisecond)

	successCounter, err := r.StoreImportsTotal.GetMetricWithLabelValues("success")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := successCounter.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2 {
		t.Errorf("Success counter = %v, want 2", metric.Counter.GetValue())
	}

	if err := r.StoreImportDuration.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("Import duration samples = %v, want 3", metric.Histogram.GetSampleCount())
	}
}

func TestStageDurationHistogram(t *testing.T) {
	r := NewRegistry()

	r.RecordStage("assemble", "success", 100*time.Millisecond)
	r.RecordStage("assemble", "success", 200*time.Millisecond)
	r.RecordStage("assemble", "success", 150*time.Millisecond)

	histogram, err := r.StageDuration.GetMetricWithLabelValues("assemble")
	if err != nil {
		t.Fatalf("Failed to get histogram: %v", err)
	}

	var metric dto.Metric
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("Sample count = %v, want 3", metric.Histogram.GetSampleCount())
	}

	// Sum should be approximately 0.45 (0.1 + 0.2 + 0.15)
	sum := metric.Histogram.GetSampleSum()
	if sum < 0.44 || sum > 0.46 {
		t.Errorf("Sample sum = %v, want ~0.45", sum)
	}
}

func TestUpdateSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	var metric dto.Metric
	if err := r.GoRoutines.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() < 1 {
		t.Errorf("GoRoutines = %v, want >= 1", metric.Gauge.GetValue())
	}

	if err := r.MemoryAllocBytes.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() <= 0 {
		t.Errorf("MemoryAllocBytes = %v, want > 0", metric.Gauge.GetValue())
	}

	if err := r.UptimeSeconds.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	if metric.Gauge.GetValue() <= 0 {
		t.Errorf("UptimeSeconds = %v, want > 0", metric.Gauge.GetValue())
	}
}

func TestConcurrentMetricUpdates(t *testing.T) {
	r := NewRegistry()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				r.RecordStage("build", "success", 10*time.Millisecond)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	histogram, err := r.StageDuration.GetMetricWithLabelValues("build")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	var metric dto.Metric
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	// Should have 1000 samples (10 goroutines * 100 stages)
	if metric.Histogram.GetSampleCount() != 1000 {
		t.Errorf("Sample count = %v, want 1000", metric.Histogram.GetSampleCount())
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	promRegistry := r.GetPrometheusRegistry()

	if promRegistry == nil {
		t.Fatal("GetPrometheusRegistry() returned nil")
	}

	r.RecordLoad("tsv", "success", time.Millisecond, 1)
	r.RecordAssembly(1, 0, 0, 0)
	r.UpdateSystemMetrics()

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	if len(metrics) == 0 {
		t.Error("No metrics registered")
	}

	// Verify some expected metrics exist
	expectedMetrics := []string{
		"ppi_files_loaded_total",
		"ppi_network_nodes_total",
		"ppi_goroutines",
	}

	metricNames := make(map[string]bool)
	for _, m := range metrics {
		metricNames[m.GetName()] = true
	}

	for _, expected := range expectedMetrics {
		if !metricNames[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}
}

func TestMetricNaming(t *testing.T) {
	r := NewRegistry()
	r.RecordLoad("tsv", "success", time.Millisecond, 1)
	r.RecordAssembly(1, 0, 0, 0)
	r.UpdateSystemMetrics()

	metrics, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	// Verify all metrics have the ppi_ prefix
	for _, m := range metrics {
		name := m.GetName()
		if !strings.HasPrefix(name, "ppi_") {
			t.Errorf("Metric %s does not have ppi_ prefix", name)
		}
	}
}

func BenchmarkRecordStage(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordStage("load", "success", 10*time.Millisecond)
	}
}

func BenchmarkRecordAssembly(b *testing.B) {
	r := NewRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.RecordAssembly(100, 200, 5, 1)
	}
}
