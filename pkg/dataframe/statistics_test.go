package dataframe

import (
	"testing"
)

func statsFrame(t *testing.T) *InteractionFrame {
	t.Helper()
	table := fixtureTable(t, fixtureRows)
	proteins, err := BuildProteins(table)
	if err != nil {
		t.Fatal(err)
	}
	frame, err := BuildInteractions(table, proteins)
	if err != nil {
		t.Fatal(err)
	}
	return frame
}

func TestCountByDetectionMethod(t *testing.T) {
	entries, err := CountBy(statsFrame(t), StatDetectionMethod)
	if err != nil {
		t.Fatal(err)
	}

	expected := []CountEntry{
		{"dm1", 3},
		{"dm2", 2},
		{"dm3", 1},
		{"dm4", 1},
		{"dm5", 1},
	}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d: %v", len(expected), len(entries), entries)
	}
	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d = %+v, want %+v", i, entries[i], want)
		}
	}
}

func TestCountByInteractionType(t *testing.T) {
	entries, err := CountBy(statsFrame(t), StatInteractionType)
	if err != nil {
		t.Fatal(err)
	}

	expected := []CountEntry{{"it1", 1}, {"it2", 4}, {"it3", 3}}
	for i, want := range expected {
		if entries[i] != want {
			t.Errorf("Entry %d = %+v, want %+v", i, entries[i], want)
		}
	}
}

func TestCountByPMID(t *testing.T) {
	entries, err := CountBy(statsFrame(t), StatPMID)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Value != "pmid1" || entries[0].Count != 8 {
		t.Errorf("CountBy(pmid) = %v, want [{pmid1 8}]", entries)
	}
}

func TestCountByConfidence(t *testing.T) {
	entries, err := CountBy(statsFrame(t), StatConfidence)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Errorf("Expected 8 distinct confidence values, got %d", len(entries))
	}
	if entries[0].Value != "0.1" || entries[0].Count != 1 {
		t.Errorf("First entry = %+v, want {0.1 1}", entries[0])
	}
}

func TestCountByUnknownStatistic(t *testing.T) {
	if _, err := CountBy(statsFrame(t), "taxid"); err == nil {
		t.Error("Expected error for unknown statistic")
	}
}
