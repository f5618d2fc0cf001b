// Package pipeline wires the loading, validation, building, and assembly
// stages into one run. A run is all-or-nothing: any stage failure aborts
// the run and no partial result is returned.
package pipeline

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dd0wney/ppigraph/pkg/config"
	"github.com/dd0wney/ppigraph/pkg/dataframe"
	"github.com/dd0wney/ppigraph/pkg/dataset"
	"github.com/dd0wney/ppigraph/pkg/logging"
	"github.com/dd0wney/ppigraph/pkg/metrics"
	"github.com/dd0wney/ppigraph/pkg/network"
	"github.com/dd0wney/ppigraph/pkg/schema"
)

// Stage names as they appear in logs and metrics.
const (
	StageLoad     = "load"
	StageValidate = "validate"
	StageBuild    = "build"
	StageAssemble = "assemble"
)

// Result carries every artifact of a successful run.
type Result struct {
	Table        *dataset.Table
	Proteins     *dataframe.ProteinFrame
	Interactions *dataframe.InteractionFrame
	Network      *network.Network
	Elapsed      time.Duration
}

// Pipeline runs the dataset-to-network transform.
type Pipeline struct {
	cfg     *config.Config
	log     logging.Logger
	metrics *metrics.Registry
	loader  *dataset.Loader
	schema  *schema.Schema
}

// New creates a pipeline. A nil logger logs nowhere; a nil registry uses
// the process-wide default.
func New(cfg *config.Config, log logging.Logger, reg *metrics.Registry) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Pipeline{
		cfg:     cfg,
		log:     log,
		metrics: reg,
		loader:  dataset.NewLoader(),
		schema:  schema.InteractionSchema(),
	}
}

// Run executes the full pipeline against the file at path. An empty path
// falls back to the configured input path.
func (p *Pipeline) Run(path string) (*Result, error) {
	if path == "" {
		path = p.cfg.Input.Path
	}
	started := time.Now()
	p.log.Info("pipeline run started", logging.Path(path))

	result := &Result{}
	stages := []struct {
		name string
		fn   func(string, *Result) error
	}{
		{StageLoad, p.load},
		{StageValidate, p.validate},
		{StageBuild, p.build},
		{StageAssemble, p.assemble},
	}

	for _, stage := range stages {
		stageStart := time.Now()
		if err := stage.fn(path, result); err != nil {
			p.metrics.RecordStage(stage.name, "error", time.Since(stageStart))
			p.metrics.RecordPipelineRun("error")
			p.log.Error("pipeline stage failed",
				logging.Stage(stage.name),
				logging.Path(path),
				logging.Error(err))
			return nil, err
		}
		p.metrics.RecordStage(stage.name, "success", time.Since(stageStart))
		p.log.Debug("pipeline stage finished",
			logging.Stage(stage.name),
			logging.Latency(time.Since(stageStart)))
	}

	result.Elapsed = time.Since(started)
	p.metrics.RecordPipelineRun("success")
	p.metrics.UpdateSystemMetrics()
	p.log.Info("pipeline run finished",
		logging.Path(path),
		logging.Int("nodes", result.Network.NodeCount()),
		logging.Int("edges", result.Network.EdgeCount()),
		logging.Latency(result.Elapsed))
	return result, nil
}

func (p *Pipeline) load(path string, result *Result) error {
	started := time.Now()
	table, err := p.loader.Load(path)
	format := "tsv"
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		format = "zip"
	}
	if err != nil {
		p.metrics.RecordLoad(format, "error", time.Since(started), 0)
		return err
	}
	p.metrics.RecordLoad(format, "success", time.Since(started), table.NumRows())
	p.log.Info("dataset loaded", logging.Path(path), logging.Rows(table.NumRows()))
	result.Table = table
	return nil
}

func (p *Pipeline) validate(path string, result *Result) error {
	return p.schema.Validate(result.Table)
}

func (p *Pipeline) build(path string, result *Result) error {
	proteins, err := dataframe.BuildProteins(result.Table)
	if err != nil {
		return err
	}
	interactions, err := dataframe.BuildInteractionsWithOptions(result.Table, proteins, dataframe.BuildOptions{
		AllowImplicit: !p.cfg.StrictReferences(),
	})
	if err != nil {
		return err
	}
	p.log.Info("dataframes built",
		logging.Int("proteins", proteins.Len()),
		logging.Int("interactions", interactions.Len()))
	result.Proteins = proteins
	result.Interactions = interactions
	return nil
}

func (p *Pipeline) assemble(path string, result *Result) error {
	policy, err := network.ParseMergePolicy(p.cfg.Build.MergePolicy)
	if err != nil {
		return err
	}
	net, err := network.Assemble(result.Proteins, result.Interactions, network.Options{
		MergePolicy: policy,
	})
	if err != nil {
		return err
	}

	merged, selfLoops := 0, 0
	for _, e := range net.Edges() {
		if e.Merged > 1 {
			merged += e.Merged - 1
		}
		if e.SelfLoop {
			selfLoops++
		}
	}
	p.metrics.RecordAssembly(net.NodeCount(), net.EdgeCount(), merged, selfLoops)
	result.Network = net
	return nil
}
