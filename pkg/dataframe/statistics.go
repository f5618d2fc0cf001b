package dataframe

import (
	"fmt"
	"strconv"
)

// CountEntry is one row of a frequency table.
type CountEntry struct {
	Value string
	Count int
}

// Statistic names accepted by CountBy.
const (
	StatDetectionMethod = "detection_method"
	StatInteractionType = "interaction_type"
	StatPMID            = "pmid"
	StatConfidence      = "confidence_value"
)

// CountBy tallies occurrences of the named attribute across the interaction
// frame. Entries appear in first-seen order, matching the row order of the
// underlying frame.
func CountBy(frame *InteractionFrame, statistic string) ([]CountEntry, error) {
	extract, err := extractor(statistic)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, ia := range frame.interactions {
		v := extract(ia)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	entries := make([]CountEntry, len(order))
	for i, v := range order {
		entries[i] = CountEntry{Value: v, Count: counts[v]}
	}
	return entries, nil
}

func extractor(statistic string) (func(Interaction) string, error) {
	switch statistic {
	case StatDetectionMethod:
		return func(ia Interaction) string { return ia.DetectionMethod }, nil
	case StatInteractionType:
		return func(ia Interaction) string { return ia.InteractionType }, nil
	case StatPMID:
		return func(ia Interaction) string { return ia.PMID }, nil
	case StatConfidence:
		return func(ia Interaction) string {
			if !ia.HasConfidence {
				return ""
			}
			return strconv.FormatFloat(ia.Confidence, 'g', -1, 64)
		}, nil
	default:
		return nil, fmt.Errorf("unknown statistic %q", statistic)
	}
}
