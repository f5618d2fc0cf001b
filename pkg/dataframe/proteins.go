// Package dataframe turns a validated raw table into the two relational
// frames the rest of the pipeline works with: a protein frame (one row per
// unique protein) and an interaction frame (one row per unique interaction).
package dataframe

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/dd0wney/ppigraph/pkg/dataset"
)

// Protein is one row of the protein frame. IDs are assigned 1..n after
// sorting by accession, so equal inputs always produce equal frames.
type Protein struct {
	ID        uint64
	Accession string
	Name      string
	TaxID     int64
}

// ProteinFrame holds the deduplicated protein rows.
type ProteinFrame struct {
	proteins    []Protein
	byAccession map[string]uint64 // accession -> protein ID
}

// BuildProteins collects the a_* and b_* column triples of every row into a
// single frame, deduplicated by accession. When the same accession appears
// with different attributes, the first occurrence wins.
func BuildProteins(table *dataset.Table) (*ProteinFrame, error) {
	for _, col := range []string{"a_uniprot_id", "b_uniprot_id"} {
		if !table.HasColumn(col) {
			return nil, dataset.NewError("build", "BuildProteins").Column(col).
				Cause(fmt.Errorf("%w: identifier column absent", dataset.ErrValidation)).Err()
		}
	}

	firstSeen := make(map[string]Protein)
	order := make([]string, 0)

	add := func(row int, idCol, nameCol, taxCol string) error {
		accession := table.MustCell(row, idCol)
		if accession == "" {
			return dataset.NewError("build", "BuildProteins").Column(idCol).Line(row + 2).
				Cause(fmt.Errorf("%w: empty protein identifier", dataset.ErrValidation)).Err()
		}
		if _, ok := firstSeen[accession]; ok {
			return nil
		}

		p := Protein{Accession: accession}
		if table.HasColumn(nameCol) {
			p.Name = table.MustCell(row, nameCol)
		}
		if table.HasColumn(taxCol) {
			if raw := table.MustCell(row, taxCol); raw != "" {
				taxid, err := strconv.ParseInt(raw, 10, 64)
				if err != nil {
					return dataset.NewError("build", "BuildProteins").Column(taxCol).Line(row + 2).
						Cause(fmt.Errorf("%w: %v", dataset.ErrValidation, err)).Err()
				}
				p.TaxID = taxid
			}
		}
		firstSeen[accession] = p
		order = append(order, accession)
		return nil
	}

	for row := 0; row < table.NumRows(); row++ {
		if err := add(row, "a_uniprot_id", "a_name", "a_taxid"); err != nil {
			return nil, err
		}
		if err := add(row, "b_uniprot_id", "b_name", "b_taxid"); err != nil {
			return nil, err
		}
	}

	sort.Strings(order)

	frame := &ProteinFrame{
		proteins:    make([]Protein, 0, len(order)),
		byAccession: make(map[string]uint64, len(order)),
	}
	for i, accession := range order {
		p := firstSeen[accession]
		p.ID = uint64(i + 1)
		frame.proteins = append(frame.proteins, p)
		frame.byAccession[accession] = p.ID
	}
	return frame, nil
}

// Len returns the number of proteins.
func (f *ProteinFrame) Len() int {
	return len(f.proteins)
}

// Proteins returns the rows in id order.
func (f *ProteinFrame) Proteins() []Protein {
	return append([]Protein(nil), f.proteins...)
}

// ByAccession looks up a protein id by accession.
func (f *ProteinFrame) ByAccession(accession string) (uint64, bool) {
	id, ok := f.byAccession[accession]
	return id, ok
}

// addImplicit appends an attribute-less protein for an accession seen only in
// an interaction row. The new row keeps the next free id so existing ids stay
// stable.
func (f *ProteinFrame) addImplicit(accession string) uint64 {
	id := uint64(len(f.proteins) + 1)
	f.proteins = append(f.proteins, Protein{ID: id, Accession: accession})
	f.byAccession[accession] = id
	return id
}

// Protein returns the row with the given id.
func (f *ProteinFrame) Protein(id uint64) (Protein, error) {
	if id < 1 || id > uint64(len(f.proteins)) {
		return Protein{}, errors.New("protein id out of range")
	}
	return f.proteins[id-1], nil
}
