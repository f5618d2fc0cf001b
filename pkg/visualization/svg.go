package visualization

import (
	"fmt"
	"io"

	"github.com/dd0wney/ppigraph/pkg/network"
)

// SVGOptions controls rendering.
type SVGOptions struct {
	Width      float64
	Height     float64
	NodeRadius float64
	// LabelBy selects the node label: "accession" (default), "name" or "id".
	LabelBy string
	// EdgeLabels adds the weight next to each weighted edge.
	EdgeLabels bool
}

// RenderSVG writes the network as a standalone SVG document using the given
// positions. Nodes without a position are skipped, as are edges touching
// them. The network is not modified.
func RenderSVG(w io.Writer, net *network.Network, positions map[uint64]Position, opts SVGOptions) error {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.NodeRadius == 0 {
		opts.NodeRadius = 8
	}

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height); err != nil {
		return err
	}

	for _, edge := range net.Edges() {
		from, okA := positions[edge.A]
		to, okB := positions[edge.B]
		if !okA || !okB {
			continue
		}
		if edge.SelfLoop {
			// Small loop above the node
			fmt.Fprintf(w,
				`  <circle cx="%g" cy="%g" r="%g" fill="none" stroke="#999" stroke-width="1"/>`+"\n",
				from.X, from.Y-opts.NodeRadius*1.5, opts.NodeRadius)
			continue
		}
		fmt.Fprintf(w,
			`  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="#999" stroke-width="1"/>`+"\n",
			from.X, from.Y, to.X, to.Y)
		if opts.EdgeLabels && edge.HasWeight {
			fmt.Fprintf(w,
				`  <text x="%g" y="%g" font-size="9" fill="#666">%g</text>`+"\n",
				(from.X+to.X)/2, (from.Y+to.Y)/2, edge.Weight)
		}
	}

	for _, node := range net.Nodes() {
		pos, ok := positions[node.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w,
			`  <circle cx="%g" cy="%g" r="%g" fill="#4a90d9" stroke="#2a5a8a" stroke-width="1.5"/>`+"\n",
			pos.X, pos.Y, opts.NodeRadius)
		fmt.Fprintf(w,
			`  <text x="%g" y="%g" font-size="11" text-anchor="middle">%s</text>`+"\n",
			pos.X, pos.Y-opts.NodeRadius-3, nodeLabel(node, opts.LabelBy))
	}

	_, err := fmt.Fprintln(w, `</svg>`)
	return err
}

func nodeLabel(node *network.Node, labelBy string) string {
	switch labelBy {
	case "name":
		return node.Name
	case "id":
		return fmt.Sprintf("%d", node.ID)
	default:
		return node.Accession
	}
}
