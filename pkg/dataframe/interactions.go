package dataframe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dd0wney/ppigraph/pkg/dataset"
)

// Interaction is one row of the interaction frame. Protein references are
// frame ids, not accessions, mirroring the relational layout of the export.
type Interaction struct {
	ID              uint64
	Confidence      float64
	HasConfidence   bool
	DetectionMethod string
	InteractionType string
	PMID            string
	ProteinA        uint64
	ProteinB        uint64
}

// InteractionFrame holds normalized interaction rows.
type InteractionFrame struct {
	interactions []Interaction
}

// BuildOptions controls how interaction rows are normalized.
type BuildOptions struct {
	// AllowImplicit adds accessions missing from the protein frame as new
	// attribute-less proteins instead of rejecting the row.
	AllowImplicit bool
}

// BuildInteractions normalizes the raw table into interaction rows: duplicate
// raw records are dropped, confidence values are coerced to float64, and both
// accessions are resolved against the protein frame. An accession the protein
// frame does not know is a validation error.
func BuildInteractions(table *dataset.Table, proteins *ProteinFrame) (*InteractionFrame, error) {
	return BuildInteractionsWithOptions(table, proteins, BuildOptions{})
}

// BuildInteractionsWithOptions is BuildInteractions with an explicit policy
// for out-of-frame accessions.
func BuildInteractionsWithOptions(table *dataset.Table, proteins *ProteinFrame, opts BuildOptions) (*InteractionFrame, error) {
	for _, col := range []string{"a_uniprot_id", "b_uniprot_id"} {
		if !table.HasColumn(col) {
			return nil, dataset.NewError("build", "BuildInteractions").Column(col).
				Cause(fmt.Errorf("%w: identifier column absent", dataset.ErrValidation)).Err()
		}
	}

	frame := &InteractionFrame{interactions: make([]Interaction, 0, table.NumRows())}
	seen := make(map[string]bool, table.NumRows())

	cell := func(row int, col string) string {
		if !table.HasColumn(col) {
			return ""
		}
		return table.MustCell(row, col)
	}

	for row := 0; row < table.NumRows(); row++ {
		rawConfidence := cell(row, "confidence_value")
		accessionA := table.MustCell(row, "a_uniprot_id")
		accessionB := table.MustCell(row, "b_uniprot_id")

		ia := Interaction{
			DetectionMethod: cell(row, "detection_method"),
			InteractionType: cell(row, "interaction_type"),
			PMID:            cell(row, "pmid"),
		}

		if rawConfidence != "" {
			confidence, err := strconv.ParseFloat(rawConfidence, 64)
			if err != nil {
				return nil, dataset.NewError("build", "BuildInteractions").Column("confidence_value").Line(row + 2).
					Cause(fmt.Errorf("%w: %v", dataset.ErrValidation, err)).Err()
			}
			ia.Confidence = confidence
			ia.HasConfidence = true
		}

		// Dedupe on the parsed value so spellings like 0.1 and 0.10 collapse
		canonical := ""
		if ia.HasConfidence {
			canonical = strconv.FormatFloat(ia.Confidence, 'g', -1, 64)
		}
		key := strings.Join([]string{canonical, ia.DetectionMethod, ia.InteractionType, ia.PMID, accessionA, accessionB}, "\x1f")
		if seen[key] {
			continue
		}
		seen[key] = true

		idA, ok := proteins.ByAccession(accessionA)
		if !ok {
			if !opts.AllowImplicit {
				return nil, unknownAccession(accessionA, row)
			}
			idA = proteins.addImplicit(accessionA)
		}
		idB, ok := proteins.ByAccession(accessionB)
		if !ok {
			if !opts.AllowImplicit {
				return nil, unknownAccession(accessionB, row)
			}
			idB = proteins.addImplicit(accessionB)
		}
		ia.ProteinA = idA
		ia.ProteinB = idB

		ia.ID = uint64(len(frame.interactions) + 1)
		frame.interactions = append(frame.interactions, ia)
	}

	return frame, nil
}

func unknownAccession(accession string, row int) error {
	return dataset.NewError("build", "BuildInteractions").Line(row + 2).
		Context("accession " + accession).
		Cause(fmt.Errorf("%w: accession not in protein frame", dataset.ErrValidation)).Err()
}

// Len returns the number of interactions.
func (f *InteractionFrame) Len() int {
	return len(f.interactions)
}

// Interactions returns the rows in id order.
func (f *InteractionFrame) Interactions() []Interaction {
	return append([]Interaction(nil), f.interactions...)
}
