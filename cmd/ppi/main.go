package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "bcentrality":
		handleBetweenness(os.Args[2:])
	case "nodes":
		handleNodes(os.Args[2:])
	case "neighbors":
		handleNeighbors(os.Args[2:])
	case "stats":
		handleStats(os.Args[2:])
	case "import":
		handleImport(os.Args[2:])
	case "drop":
		handleDrop(os.Args[2:])
	case "export":
		handleExport(os.Args[2:])
	case "layout":
		handleLayout(os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		printVersion()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `ppi - protein interaction network toolkit

Usage:
  ppi <command> [options] <file>

Available Commands:
  bcentrality   Rank proteins by betweenness centrality
  nodes         Show node and edge counts for a dataset
  neighbors     List the interaction partners of a protein
  stats         Count interactions grouped by a column
  import        Import a dataset into the local SQLite database
  drop          Remove the local SQLite database
  export        Write the network as a tab-separated edge list
  layout        Render the network as an SVG drawing
  help          Show this help message
  version       Show version information

Common Flags:
  --config PATH   YAML config file (default: none, built-in defaults)

Examples:
  # Rank proteins in a dataset by centrality
  ppi bcentrality interactions.tsv

  # List the partners of a protein by display name
  ppi neighbors --name name_5 interactions.tsv

  # Count interactions per detection method
  ppi stats --column detection_method interactions.tsv

  # Import into ~/.ppi/ppi.sqlite
  ppi import interactions.tsv

  # Render a force-directed SVG
  ppi layout --out network.svg interactions.tsv

Use "ppi <command> --help" for more information about a command.
`
	fmt.Print(usage)
}

func printVersion() {
	fmt.Println("ppi v1.0.0")
}
