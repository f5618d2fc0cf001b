package dataset

import (
	"testing"
)

func TestNewTableRejectsDuplicateColumns(t *testing.T) {
	_, err := NewTable([]string{"a_uniprot_id", "a_uniprot_id"})
	if err == nil {
		t.Fatal("Expected error for duplicate column names")
	}
}

func TestAppendRowWidthCheck(t *testing.T) {
	table, err := NewTable([]string{"a_uniprot_id", "b_uniprot_id"})
	if err != nil {
		t.Fatal(err)
	}

	if err := table.AppendRow([]string{"p1", "p2"}); err != nil {
		t.Fatalf("AppendRow failed: %v", err)
	}
	if err := table.AppendRow([]string{"p1"}); err == nil {
		t.Error("Expected error for short row")
	}
	if err := table.AppendRow([]string{"p1", "p2", "p3"}); err == nil {
		t.Error("Expected error for long row")
	}
}

func TestColumnValues(t *testing.T) {
	table, _ := NewTable([]string{"a_uniprot_id", "b_uniprot_id"})
	table.AppendRow([]string{"p1", "p2"})
	table.AppendRow([]string{"p3", "p4"})

	values, err := table.ColumnValues("b_uniprot_id")
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 || values[0] != "p2" || values[1] != "p4" {
		t.Errorf("ColumnValues = %v, want [p2 p4]", values)
	}

	if _, err := table.ColumnValues("missing"); err == nil {
		t.Error("Expected error for unknown column")
	}
}

func TestCellOutOfRange(t *testing.T) {
	table, _ := NewTable([]string{"a_uniprot_id"})
	table.AppendRow([]string{"p1"})

	if _, err := table.Cell(1, "a_uniprot_id"); err == nil {
		t.Error("Expected error for row out of range")
	}
	if _, err := table.Cell(0, "nope"); err == nil {
		t.Error("Expected error for unknown column")
	}
}
