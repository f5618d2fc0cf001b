package analysis

import (
	"fmt"
)

// NumberOfNodes returns the node count of the underlying network.
func (a *Analyzer) NumberOfNodes() int {
	return a.net.NodeCount()
}

// NumberOfEdges returns the edge count of the underlying network.
func (a *Analyzer) NumberOfEdges() int {
	return a.net.EdgeCount()
}

// NeighborNames returns the names of the neighbors of the first node carrying
// the given protein name, in ascending node id order.
func (a *Analyzer) NeighborNames(name string) ([]string, error) {
	var nodeID uint64
	found := false
	for _, node := range a.net.Nodes() {
		if node.Name == name {
			nodeID = node.ID
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no node named %q", ErrNodeNotFound, name)
	}

	neighborIDs := a.net.Neighbors(nodeID)
	names := make([]string, 0, len(neighborIDs))
	for _, id := range neighborIDs {
		neighbor, err := a.net.Node(id)
		if err != nil {
			return nil, err
		}
		names = append(names, neighbor.Name)
	}
	return names, nil
}

// DegreeDistribution returns a histogram of node degrees: degree -> number of
// nodes with that degree. Self-loops count twice, isolated proteins appear
// under degree zero.
func (a *Analyzer) DegreeDistribution() map[int]int {
	distribution := make(map[int]int)
	for _, node := range a.net.Nodes() {
		distribution[a.net.Degree(node.ID)]++
	}
	return distribution
}
