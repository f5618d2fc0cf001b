// Package network assembles the protein and interaction frames into an
// in-memory interaction network: one node per protein, one edge per
// interaction, adjacency owned by the network itself. A Network is built once
// and read-only afterwards, so concurrent readers need no locking.
package network

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Node is a protein in the network.
type Node struct {
	ID        uint64
	Accession string
	Name      string
	TaxID     int64
}

// Edge is an interaction between two proteins. A and B are node ids; for
// merged edges Weight carries the maximum confidence of the collapsed group.
type Edge struct {
	ID              uint64
	A               uint64
	B               uint64
	Weight          float64
	HasWeight       bool
	DetectionMethod string
	InteractionType string
	PMID            string
	SelfLoop        bool
	// Merged counts how many interaction rows were collapsed into this edge.
	// 1 for an unmerged edge.
	Merged int
}

// Network is the assembled interaction network.
type Network struct {
	buildID     string
	nodes       map[uint64]*Node
	nodeIDs     []uint64 // ascending
	byAccession map[string]uint64
	edges       []*Edge
	adjacency   map[uint64][]int // node id -> indexes into edges
}

// BuildID returns the unique id assigned when the network was assembled.
func (n *Network) BuildID() string {
	return n.buildID
}

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int {
	return len(n.nodeIDs)
}

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int {
	return len(n.edges)
}

// Node returns the node with the given id.
func (n *Network) Node(id uint64) (*Node, error) {
	node, ok := n.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d not found", id)
	}
	return node, nil
}

// NodeByAccession returns the node with the given accession.
func (n *Network) NodeByAccession(accession string) (*Node, bool) {
	id, ok := n.byAccession[accession]
	if !ok {
		return nil, false
	}
	return n.nodes[id], true
}

// Nodes returns all nodes in ascending id order.
func (n *Network) Nodes() []*Node {
	nodes := make([]*Node, len(n.nodeIDs))
	for i, id := range n.nodeIDs {
		nodes[i] = n.nodes[id]
	}
	return nodes
}

// Edges returns all edges in id order.
func (n *Network) Edges() []*Edge {
	return append([]*Edge(nil), n.edges...)
}

// IncidentEdges returns the edges touching the given node.
func (n *Network) IncidentEdges(id uint64) []*Edge {
	indexes := n.adjacency[id]
	edges := make([]*Edge, len(indexes))
	for i, idx := range indexes {
		edges[i] = n.edges[idx]
	}
	return edges
}

// Neighbors returns the distinct neighbor ids of a node in ascending order.
// A self-loop makes a node its own neighbor.
func (n *Network) Neighbors(id uint64) []uint64 {
	seen := make(map[uint64]bool)
	for _, idx := range n.adjacency[id] {
		edge := n.edges[idx]
		other := edge.B
		if edge.B == id && edge.A != id {
			other = edge.A
		}
		if edge.SelfLoop {
			other = id
		}
		seen[other] = true
	}

	neighbors := make([]uint64, 0, len(seen))
	for nid := range seen {
		neighbors = append(neighbors, nid)
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i] < neighbors[j] })
	return neighbors
}

// Degree returns the number of edge endpoints at the node; a self-loop
// contributes two.
func (n *Network) Degree(id uint64) int {
	degree := 0
	for _, idx := range n.adjacency[id] {
		if n.edges[idx].SelfLoop {
			degree += 2
		} else {
			degree++
		}
	}
	return degree
}

// Equal reports structural equality: same nodes (ids and attributes) and the
// same multiset of edges with the same weights. Build ids are ignored.
func (n *Network) Equal(other *Network) bool {
	if other == nil {
		return false
	}
	if len(n.nodeIDs) != len(other.nodeIDs) || len(n.edges) != len(other.edges) {
		return false
	}
	for _, id := range n.nodeIDs {
		a := n.nodes[id]
		b, ok := other.nodes[id]
		if !ok || *a != *b {
			return false
		}
	}

	as := edgeKeys(n.edges)
	bs := edgeKeys(other.edges)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func edgeKeys(edges []*Edge) []string {
	keys := make([]string, len(edges))
	for i, e := range edges {
		a, b := e.A, e.B
		if b < a {
			a, b = b, a
		}
		keys[i] = fmt.Sprintf("%d|%d|%v|%t|%s|%s|%s", a, b, e.Weight, e.HasWeight, e.DetectionMethod, e.InteractionType, e.PMID)
	}
	sort.Strings(keys)
	return keys
}

func newNetwork() *Network {
	return &Network{
		buildID:     uuid.NewString(),
		nodes:       make(map[uint64]*Node),
		byAccession: make(map[string]uint64),
		adjacency:   make(map[uint64][]int),
	}
}
