package metrics

import (
	"time"
)

// RecordLoad records a dataset load with its format, outcome, and row count.
func (r *Registry) RecordLoad(format, status string, duration time.Duration, rows int) {
	r.FilesLoadedTotal.WithLabelValues(format, status).Inc()
	r.LoadDuration.WithLabelValues(format).Observe(duration.Seconds())
	if rows > 0 {
		r.RowsLoadedTotal.Add(float64(rows))
	}
}

// RecordStage records the duration of one pipeline stage. Failed stages
// also increment the per-stage failure counter.
func (r *Registry) RecordStage(stage, status string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	if status != "success" {
		r.StageFailuresTotal.WithLabelValues(stage).Inc()
	}
}

// RecordPipelineRun records the outcome of a full pipeline run.
func (r *Registry) RecordPipelineRun(status string) {
	r.PipelineRunsTotal.WithLabelValues(status).Inc()
}

// RecordAssembly records the shape of a freshly assembled network.
func (r *Registry) RecordAssembly(nodes, edges, merged, selfLoops int) {
	r.NetworksAssembledTotal.Inc()
	r.NetworkNodesTotal.Set(float64(nodes))
	r.NetworkEdgesTotal.Set(float64(edges))
	if merged > 0 {
		r.EdgesMergedTotal.Add(float64(merged))
	}
	if selfLoops > 0 {
		r.SelfInteractionsTotal.Add(float64(selfLoops))
	}
}

// RecordStoreImport records a database import attempt.
func (r *Registry) RecordStoreImport(status string, duration time.Duration) {
	r.StoreImportsTotal.WithLabelValues(status).Inc()
	r.StoreImportDuration.Observe(duration.Seconds())
}
