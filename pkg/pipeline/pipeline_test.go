package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dd0wney/ppigraph/pkg/config"
	"github.com/dd0wney/ppigraph/pkg/dataset"
	"github.com/dd0wney/ppigraph/pkg/metrics"
)

func TestRunFullPipeline(t *testing.T) {
	p := New(nil, nil, metrics.NewRegistry())

	result, err := p.Run("testdata/test_ppi.tsv")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Table.NumRows() != 8 {
		t.Errorf("Table rows = %d, want 8", result.Table.NumRows())
	}
	if result.Proteins.Len() != 7 {
		t.Errorf("Proteins = %d, want 7", result.Proteins.Len())
	}
	if result.Interactions.Len() != 8 {
		t.Errorf("Interactions = %d, want 8", result.Interactions.Len())
	}
	if result.Network.NodeCount() != 7 {
		t.Errorf("Network nodes = %d, want 7", result.Network.NodeCount())
	}
	// The duplicated node_id2/node_id3 pair collapses under the default policy
	if result.Network.EdgeCount() != 7 {
		t.Errorf("Network edges = %d, want 7", result.Network.EdgeCount())
	}
	if result.Elapsed <= 0 {
		t.Error("Elapsed must be positive")
	}
}

func TestRunKeepParallel(t *testing.T) {
	cfg := config.Default()
	cfg.Build.MergePolicy = "keep_parallel"
	p := New(cfg, nil, metrics.NewRegistry())

	result, err := p.Run("testdata/test_ppi.tsv")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Network.EdgeCount() != 8 {
		t.Errorf("Network edges = %d, want 8 under keep_parallel", result.Network.EdgeCount())
	}
}

func TestRunUsesConfiguredInputPath(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Path = "testdata/test_ppi.tsv"
	p := New(cfg, nil, metrics.NewRegistry())

	result, err := p.Run("")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Network.NodeCount() != 7 {
		t.Errorf("Network nodes = %d, want 7", result.Network.NodeCount())
	}
}

func TestRunMissingFile(t *testing.T) {
	p := New(nil, nil, metrics.NewRegistry())

	_, err := p.Run("testdata/absent.tsv")
	if err == nil {
		t.Fatal("Expected error for missing input file")
	}
	if !errors.Is(err, dataset.ErrFileAccess) {
		t.Errorf("Expected ErrFileAccess, got %v", err)
	}
}

func TestRunWrongDelimiter(t *testing.T) {
	p := New(nil, nil, metrics.NewRegistry())

	_, err := p.Run("testdata/comma_delimited.tsv")
	if err == nil {
		t.Fatal("Expected error for comma-delimited input")
	}
	if !errors.Is(err, dataset.ErrDataFormat) {
		t.Errorf("Expected ErrDataFormat, got %v", err)
	}
}

func TestRunSchemaFailure(t *testing.T) {
	raw := "confidence_value\tdetection_method\n0.5\tdm1\n"
	path := filepath.Join(t.TempDir(), "partial.tsv")
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	p := New(nil, nil, metrics.NewRegistry())
	_, err := p.Run(path)
	if err == nil {
		t.Fatal("Expected schema error for missing columns")
	}
	if !errors.Is(err, dataset.ErrSchema) {
		t.Errorf("Expected ErrSchema, got %v", err)
	}
}

func TestRunRecordsStageMetrics(t *testing.T) {
	reg := metrics.NewRegistry()
	p := New(nil, nil, reg)

	if _, err := p.Run("testdata/test_ppi.tsv"); err != nil {
		t.Fatal(err)
	}

	families, err := reg.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"ppi_stage_duration_seconds",
		"ppi_pipeline_runs_total",
		"ppi_networks_assembled_total",
		"ppi_rows_loaded_total",
	} {
		if !names[want] {
			t.Errorf("Metric %s not recorded", want)
		}
	}
}

func TestRunRefreshesSystemGauges(t *testing.T) {
	reg := metrics.NewRegistry()
	p := New(nil, nil, reg)

	if _, err := p.Run("testdata/test_ppi.tsv"); err != nil {
		t.Fatal(err)
	}

	families, err := reg.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatal(err)
	}
	checked := 0
	for _, f := range families {
		switch f.GetName() {
		case "ppi_goroutines", "ppi_uptime_seconds":
			checked++
			if len(f.GetMetric()) == 0 || f.GetMetric()[0].GetGauge().GetValue() <= 0 {
				t.Errorf("Gauge %s not refreshed by the run", f.GetName())
			}
		}
	}
	if checked != 2 {
		t.Errorf("Expected both system gauges registered, found %d", checked)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	p := New(nil, nil, metrics.NewRegistry())

	first, err := p.Run("testdata/test_ppi.tsv")
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Run("testdata/test_ppi.tsv")
	if err != nil {
		t.Fatal(err)
	}

	if !first.Network.Equal(second.Network) {
		t.Error("Two runs over the same file must assemble equal networks")
	}
	if first.Network.BuildID() == second.Network.BuildID() {
		t.Error("Each run must get its own build id")
	}
}
