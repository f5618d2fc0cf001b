package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/ppigraph/pkg/network"
)

// ForceDirectedLayout implements force-directed graph layout
type ForceDirectedLayout struct {
	config *LayoutConfig
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig) *ForceDirectedLayout {
	if config.Iterations == 0 {
		config.Iterations = 50
	}
	if config.Padding == 0 {
		config.Padding = 50
	}
	return &ForceDirectedLayout{config: config}
}

// ComputeLayout computes positions using a force-directed algorithm with
// repulsion between all node pairs and attraction along edges
func (fdl *ForceDirectedLayout) ComputeLayout(net *network.Network) (map[uint64]Position, error) {
	nodes := net.Nodes()
	if len(nodes) == 0 {
		return make(map[uint64]Position), nil
	}

	nodeIDs := make([]uint64, len(nodes))
	for i, node := range nodes {
		nodeIDs[i] = node.ID
	}

	// Single node - center it
	if len(nodeIDs) == 1 {
		return map[uint64]Position{
			nodeIDs[0]: {
				X: fdl.config.Width / 2,
				Y: fdl.config.Height / 2,
			},
		}, nil
	}

	// Seeded so repeated runs over the same network are reproducible
	rng := rand.New(rand.NewSource(fdl.config.Seed))

	positions := make(map[uint64]Position)
	for _, nodeID := range nodeIDs {
		positions[nodeID] = Position{
			X: rng.Float64()*(fdl.config.Width-2*fdl.config.Padding) + fdl.config.Padding,
			Y: rng.Float64()*(fdl.config.Height-2*fdl.config.Padding) + fdl.config.Padding,
		}
	}

	// Neighbor map for the attraction pass; self-loops exert no force
	neighbors := make(map[uint64][]uint64, len(nodeIDs))
	for _, nodeID := range nodeIDs {
		for _, other := range net.Neighbors(nodeID) {
			if other != nodeID {
				neighbors[nodeID] = append(neighbors[nodeID], other)
			}
		}
	}

	k := math.Sqrt((fdl.config.Width * fdl.config.Height) / float64(len(nodeIDs))) // Optimal distance
	temperature := fdl.config.Width / 10.0

	for iter := 0; iter < fdl.config.Iterations; iter++ {
		forces := make(map[uint64]Position)
		for _, nodeID := range nodeIDs {
			forces[nodeID] = Position{X: 0, Y: 0}
		}

		// Repulsion between all pairs
		for i, nodeID1 := range nodeIDs {
			for j := i + 1; j < len(nodeIDs); j++ {
				nodeID2 := nodeIDs[j]
				dx := positions[nodeID1].X - positions[nodeID2].X
				dy := positions[nodeID1].Y - positions[nodeID2].Y
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < 0.01 {
					dist = 0.01
				}

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[nodeID1] = Position{X: forces[nodeID1].X + fx, Y: forces[nodeID1].Y + fy}
				forces[nodeID2] = Position{X: forces[nodeID2].X - fx, Y: forces[nodeID2].Y - fy}
			}
		}

		// Attraction along edges
		for _, nodeID1 := range nodeIDs {
			for _, nodeID2 := range neighbors[nodeID1] {
				dx := positions[nodeID1].X - positions[nodeID2].X
				dy := positions[nodeID1].Y - positions[nodeID2].Y
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < 0.01 {
					continue
				}

				force := (dist * dist) / k
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[nodeID1] = Position{X: forces[nodeID1].X - fx, Y: forces[nodeID1].Y - fy}
			}
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(fdl.config.Iterations)
		for _, nodeID := range nodeIDs {
			fx := forces[nodeID].X
			fy := forces[nodeID].Y
			force := math.Sqrt(fx*fx + fy*fy)

			if force > 0 {
				dx := (fx / force) * math.Min(force, temperature) * cool
				dy := (fy / force) * math.Min(force, temperature) * cool

				positions[nodeID] = Position{
					X: positions[nodeID].X + dx,
					Y: positions[nodeID].Y + dy,
				}
			}
		}

		temperature *= 0.95
	}

	return normalizePositions(positions, fdl.config.Width, fdl.config.Height, fdl.config.Padding), nil
}
