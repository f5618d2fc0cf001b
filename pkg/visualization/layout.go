// Package visualization computes node positions for an interaction network
// and renders them. Layouts read the network, never mutate it.
package visualization

import (
	"fmt"
	"math"

	"github.com/dd0wney/ppigraph/pkg/network"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
	Seed       int64   // Seed for randomized layouts; same seed, same result
}

// Layout is a positioning algorithm over an interaction network.
type Layout interface {
	ComputeLayout(net *network.Network) (map[uint64]Position, error)
}

// NewLayout creates a layout by algorithm name ("circular" or "force").
func NewLayout(algorithm string, config *LayoutConfig) (Layout, error) {
	switch algorithm {
	case "circular":
		return NewCircularLayout(config), nil
	case "", "force":
		return NewForceDirectedLayout(config), nil
	default:
		return nil, fmt.Errorf("unknown layout algorithm %q", algorithm)
	}
}

// normalizePositions scales positions to fit within bounds
func normalizePositions(positions map[uint64]Position, width, height, padding float64) map[uint64]Position {
	if len(positions) == 0 {
		return positions
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[uint64]Position, len(positions))
	for nodeID, pos := range positions {
		normalized[nodeID] = Position{
			X: padding + ((pos.X-minX)/rangeX)*targetWidth,
			Y: padding + ((pos.Y-minY)/rangeY)*targetHeight,
		}
	}
	return normalized
}
