package network

import (
	"fmt"
	"sort"

	"github.com/dd0wney/ppigraph/pkg/dataframe"
	"github.com/dd0wney/ppigraph/pkg/dataset"
)

// MergePolicy decides what happens when two interactions connect the same
// protein pair.
type MergePolicy int

const (
	// MergeMaxScore collapses duplicate pairs into one edge carrying the
	// highest confidence of the group. The default.
	MergeMaxScore MergePolicy = iota
	// KeepParallel keeps every interaction as its own edge.
	KeepParallel
)

// ParseMergePolicy converts a config string to a MergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "", "max_score":
		return MergeMaxScore, nil
	case "keep_parallel":
		return KeepParallel, nil
	default:
		return MergeMaxScore, fmt.Errorf("unknown merge policy %q", s)
	}
}

// Options configures assembly.
type Options struct {
	MergePolicy MergePolicy
}

// Assemble builds the network from the two frames. Every protein becomes a
// node whether or not it participates in an interaction; every interaction
// becomes an edge subject to the merge policy. Self-interactions become
// self-loop edges flagged as such, never dropped. The transform is pure and
// in-memory; the frames are not modified.
func Assemble(proteins *dataframe.ProteinFrame, interactions *dataframe.InteractionFrame, opts Options) (*Network, error) {
	net := newNetwork()

	for _, p := range proteins.Proteins() {
		node := &Node{ID: p.ID, Accession: p.Accession, Name: p.Name, TaxID: p.TaxID}
		net.nodes[node.ID] = node
		net.byAccession[node.Accession] = node.ID
		net.nodeIDs = append(net.nodeIDs, node.ID)
	}
	sort.Slice(net.nodeIDs, func(i, j int) bool { return net.nodeIDs[i] < net.nodeIDs[j] })

	rows := interactions.Interactions()
	for _, ia := range rows {
		if _, ok := net.nodes[ia.ProteinA]; !ok {
			return nil, referenceError(ia.ID, ia.ProteinA)
		}
		if _, ok := net.nodes[ia.ProteinB]; !ok {
			return nil, referenceError(ia.ID, ia.ProteinB)
		}
	}

	switch opts.MergePolicy {
	case KeepParallel:
		for _, ia := range rows {
			net.addEdge(edgeFromInteraction(ia))
		}
	case MergeMaxScore:
		assembleMerged(net, rows)
	default:
		return nil, fmt.Errorf("unknown merge policy %d", opts.MergePolicy)
	}

	return net, nil
}

func assembleMerged(net *Network, rows []dataframe.Interaction) {
	type pair struct{ a, b uint64 }
	best := make(map[pair]*Edge)
	order := make([]pair, 0, len(rows))

	for _, ia := range rows {
		key := pair{ia.ProteinA, ia.ProteinB}
		if key.b < key.a {
			key.a, key.b = key.b, key.a
		}

		candidate := edgeFromInteraction(ia)
		current, ok := best[key]
		if !ok {
			best[key] = candidate
			order = append(order, key)
			continue
		}
		current.Merged++
		if betterWeight(candidate, current) {
			candidate.Merged = current.Merged
			best[key] = candidate
		}
	}

	for _, key := range order {
		net.addEdge(best[key])
	}
}

// betterWeight prefers any weighted edge over an unweighted one, then the
// higher weight.
func betterWeight(candidate, current *Edge) bool {
	if candidate.HasWeight != current.HasWeight {
		return candidate.HasWeight
	}
	return candidate.HasWeight && candidate.Weight > current.Weight
}

func edgeFromInteraction(ia dataframe.Interaction) *Edge {
	return &Edge{
		A:               ia.ProteinA,
		B:               ia.ProteinB,
		Weight:          ia.Confidence,
		HasWeight:       ia.HasConfidence,
		DetectionMethod: ia.DetectionMethod,
		InteractionType: ia.InteractionType,
		PMID:            ia.PMID,
		SelfLoop:        ia.ProteinA == ia.ProteinB,
		Merged:          1,
	}
}

func (n *Network) addEdge(edge *Edge) {
	edge.ID = uint64(len(n.edges) + 1)
	idx := len(n.edges)
	n.edges = append(n.edges, edge)

	n.adjacency[edge.A] = append(n.adjacency[edge.A], idx)
	if edge.B != edge.A {
		n.adjacency[edge.B] = append(n.adjacency[edge.B], idx)
	}
}

func referenceError(interactionID, proteinID uint64) error {
	return dataset.NewError("assemble", "Assemble").
		Context(fmt.Sprintf("interaction %d", interactionID)).
		Cause(fmt.Errorf("%w: protein id %d not in frame", dataset.ErrValidation, proteinID)).Err()
}
