// Package export writes an assembled network to external formats. Exports
// only read the network; they never mutate it.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dd0wney/ppigraph/pkg/network"
)

// WriteEdgeList writes the network as a tab-separated edge list:
// accession_a, accession_b, weight. Unweighted edges get an empty weight
// column. Rows appear in edge id order.
func WriteEdgeList(w io.Writer, net *network.Network) error {
	if _, err := fmt.Fprintln(w, "accession_a\taccession_b\tweight"); err != nil {
		return err
	}

	for _, edge := range net.Edges() {
		from, err := net.Node(edge.A)
		if err != nil {
			return err
		}
		to, err := net.Node(edge.B)
		if err != nil {
			return err
		}

		weight := ""
		if edge.HasWeight {
			weight = strconv.FormatFloat(edge.Weight, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", from.Accession, to.Accession, weight); err != nil {
			return err
		}
	}
	return nil
}
