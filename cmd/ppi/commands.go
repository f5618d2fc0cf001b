package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/dd0wney/ppigraph/pkg/analysis"
	"github.com/dd0wney/ppigraph/pkg/config"
	"github.com/dd0wney/ppigraph/pkg/dataframe"
	"github.com/dd0wney/ppigraph/pkg/export"
	"github.com/dd0wney/ppigraph/pkg/logging"
	"github.com/dd0wney/ppigraph/pkg/metrics"
	"github.com/dd0wney/ppigraph/pkg/pipeline"
	"github.com/dd0wney/ppigraph/pkg/store"
	"github.com/dd0wney/ppigraph/pkg/visualization"
)

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
	os.Exit(1)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fail("Failed to load config: %v", err)
	}
	return cfg
}

// runPipeline executes the full pipeline for a command. The positional
// dataset path wins over the configured input path.
func runPipeline(cfg *config.Config, path string) *pipeline.Result {
	if path == "" && cfg.Input.Path == "" {
		fail("No dataset given: pass a file argument or set input.path in the config")
	}

	log := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.Log.Level))
	result, err := pipeline.New(cfg, log, nil).Run(path)
	if err != nil {
		fail("Pipeline failed: %v", err)
	}
	return result
}

func handleBetweenness(args []string) {
	fs := flag.NewFlagSet("bcentrality", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	top := fs.Int("top", 0, "Show only the N most central proteins (0 = all)")
	fs.Parse(args)

	result := runPipeline(loadConfig(*configPath), fs.Arg(0))
	analyzer := analysis.New(result.Network)
	scores := analyzer.BetweennessCentrality()

	nodes := result.Network.Nodes()
	sort.Slice(nodes, func(i, j int) bool {
		if scores[nodes[i].ID] != scores[nodes[j].ID] {
			return scores[nodes[i].ID] > scores[nodes[j].ID]
		}
		return nodes[i].ID < nodes[j].ID
	})
	if *top > 0 && *top < len(nodes) {
		nodes = nodes[:*top]
	}

	fmt.Println(titleStyle.Render("Betweenness Centrality"))
	rows := make([][]string, 0, len(nodes))
	for _, node := range nodes {
		rows = append(rows, []string{
			node.Accession,
			node.Name,
			fmt.Sprintf("%.6f", scores[node.ID]),
		})
	}
	fmt.Println(renderTable([]string{"ACCESSION", "NAME", "SCORE"}, rows))
}

func handleNodes(args []string) {
	fs := flag.NewFlagSet("nodes", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	fs.Parse(args)

	result := runPipeline(loadConfig(*configPath), fs.Arg(0))
	analyzer := analysis.New(result.Network)

	fmt.Println(titleStyle.Render("Network Summary"))
	fmt.Printf("  Proteins:     %d\n", analyzer.NumberOfNodes())
	fmt.Printf("  Interactions: %d\n", analyzer.NumberOfEdges())

	dist := analyzer.DegreeDistribution()
	degrees := make([]int, 0, len(dist))
	for d := range dist {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	rows := make([][]string, 0, len(degrees))
	for _, d := range degrees {
		rows = append(rows, []string{
			fmt.Sprintf("%d", d),
			fmt.Sprintf("%d", dist[d]),
		})
	}
	fmt.Println(renderTable([]string{"DEGREE", "PROTEINS"}, rows))
}

func handleNeighbors(args []string) {
	fs := flag.NewFlagSet("neighbors", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	name := fs.String("name", "", "Display name of the protein to look up")
	fs.Parse(args)

	if *name == "" {
		fail("Usage: ppi neighbors --name <protein-name> <file>")
	}

	result := runPipeline(loadConfig(*configPath), fs.Arg(0))
	neighbors, err := analysis.New(result.Network).NeighborNames(*name)
	if err != nil {
		fail("Lookup failed: %v", err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Partners of %s", *name)))
	for _, n := range neighbors {
		fmt.Printf("  %s\n", n)
	}
	fmt.Printf("\n%d interaction partners\n", len(neighbors))
}

func handleStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	column := fs.String("column", dataframe.StatDetectionMethod, "Column to group by")
	fs.Parse(args)

	result := runPipeline(loadConfig(*configPath), fs.Arg(0))
	counts, err := dataframe.CountBy(result.Interactions, *column)
	if err != nil {
		fail("Stats failed: %v", err)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Interactions by %s", *column)))
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, fmt.Sprintf("%d", c.Count)})
	}
	fmt.Println(renderTable([]string{"VALUE", "COUNT"}, rows))
}

func handleImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	dbPath := fs.String("db", "", "SQLite database path (default: ~/.ppi/ppi.sqlite)")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	result := runPipeline(cfg, fs.Arg(0))

	path := *dbPath
	if path == "" {
		path = cfg.Store.Path
	}
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			fail("Cannot resolve database path: %v", err)
		}
	}

	db, err := store.Open(path)
	if err != nil {
		fail("Cannot open database: %v", err)
	}
	defer db.Close()

	started := time.Now()
	if err := db.Import(result.Proteins, result.Interactions); err != nil {
		metrics.DefaultRegistry().RecordStoreImport("error", time.Since(started))
		fail("Import failed: %v", err)
	}
	metrics.DefaultRegistry().RecordStoreImport("success", time.Since(started))
	fmt.Printf("✅ Imported %d proteins and %d interactions into %s\n",
		result.Proteins.Len(), result.Interactions.Len(), path)
}

func handleDrop(args []string) {
	fs := flag.NewFlagSet("drop", flag.ExitOnError)
	dbPath := fs.String("db", "", "SQLite database path (default: ~/.ppi/ppi.sqlite)")
	fs.Parse(args)

	path := *dbPath
	if path == "" {
		var err error
		if path, err = store.DefaultPath(); err != nil {
			fail("Cannot resolve database path: %v", err)
		}
	}

	if err := store.Remove(path); err != nil {
		fail("Drop failed: %v", err)
	}
	fmt.Printf("✅ Removed %s\n", path)
}

func handleExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	out := fs.String("out", "", "Output file (default: stdout)")
	compress := fs.Bool("compress", false, "Write a checksummed snappy-compressed file")
	fs.Parse(args)

	result := runPipeline(loadConfig(*configPath), fs.Arg(0))

	if *compress {
		if *out == "" {
			fail("Usage: ppi export --compress --out <file> <dataset>")
		}
		if err := export.WriteCompressedEdgeList(*out, result.Network); err != nil {
			fail("Export failed: %v", err)
		}
		fmt.Printf("✅ Wrote compressed edge list to %s\n", *out)
		return
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fail("Cannot create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := export.WriteEdgeList(w, result.Network); err != nil {
		fail("Export failed: %v", err)
	}
	if *out != "" {
		fmt.Printf("✅ Wrote %d edges to %s\n", result.Network.EdgeCount(), *out)
	}
}

func handleLayout(args []string) {
	fs := flag.NewFlagSet("layout", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML config file")
	out := fs.String("out", "", "Output SVG file")
	algo := fs.String("algo", "", "Layout algorithm: force or circular (default: from config)")
	label := fs.String("label", "accession", "Node labels: accession, name, or id")
	fs.Parse(args)

	if *out == "" {
		fail("Usage: ppi layout --out <file.svg> <dataset>")
	}

	cfg := loadConfig(*configPath)
	result := runPipeline(cfg, fs.Arg(0))

	algorithm := *algo
	if algorithm == "" {
		algorithm = cfg.Layout.Algorithm
	}
	layout, err := visualization.NewLayout(algorithm, &visualization.LayoutConfig{
		Width:      float64(cfg.Layout.Width),
		Height:     float64(cfg.Layout.Height),
		Iterations: cfg.Layout.Iterations,
		Padding:    20,
		Seed:       cfg.Layout.Seed,
	})
	if err != nil {
		fail("Layout failed: %v", err)
	}

	positions, err := layout.ComputeLayout(result.Network)
	if err != nil {
		fail("Layout failed: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		fail("Cannot create %s: %v", *out, err)
	}
	defer f.Close()

	err = visualization.RenderSVG(f, result.Network, positions, visualization.SVGOptions{
		Width:   float64(cfg.Layout.Width),
		Height:  float64(cfg.Layout.Height),
		LabelBy: *label,
	})
	if err != nil {
		fail("Render failed: %v", err)
	}
	fmt.Printf("✅ Rendered %d nodes to %s\n", result.Network.NodeCount(), *out)
}
