package types

import (
	"testing"
)

func sampleStore() *ReportStore {
	store := NewReportStore()
	store.Add(&RunReport{Name: "first", Outcome: "Passes"})
	store.Add(&RunReport{Name: "second", Outcome: "Passes"})
	store.Add(&RunReport{Name: "third", Outcome: "Passes"})
	return store
}

func TestReportStoreAssignsIDs(t *testing.T) {
	store := sampleStore()
	for i, report := range store.All() {
		if report.ID != i {
			t.Errorf("expected ID %d, got %d", i, report.ID)
		}
	}
}

func TestReportStoreGetAndHas(t *testing.T) {
	store := sampleStore()
	report, ok := store.Get("second")
	if !ok || report.Name != "second" {
		t.Fatalf("expected the second report, got %v", report)
	}
	if !store.Has("second") {
		t.Errorf("Has should see a recorded name")
	}
	if store.Has("missing") {
		t.Errorf("Has reported a name never recorded")
	}
}

func TestReportStoreByID(t *testing.T) {
	store := sampleStore()
	report, ok := store.ByID(1)
	if !ok || report.Name != "second" {
		t.Fatalf("expected the second report for ID 1, got %v", report)
	}
	if _, ok := store.ByID(99); ok {
		t.Errorf("expected no report for an unknown ID")
	}
}

func TestReportStoreByIDSurvivesRemoval(t *testing.T) {
	store := sampleStore()
	if !store.Remove("second") {
		t.Fatalf("expected removal of a recorded name")
	}
	report, ok := store.ByID(2)
	if !ok || report.Name != "third" {
		t.Errorf("IDs must not shift after a removal, got %v", report)
	}
}

func TestReportStoreNames(t *testing.T) {
	store := sampleStore()
	names := store.Names()
	want := []string{"first", "second", "third"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %q at position %d, got %q", name, i, names[i])
		}
	}
}

func TestReportStoreRemove(t *testing.T) {
	store := sampleStore()
	if store.Remove("missing") {
		t.Errorf("removing an unknown name should report false")
	}
	if !store.Remove("second") {
		t.Fatalf("expected removal of a recorded name")
	}
	if store.Size() != 2 {
		t.Errorf("expected 2 reports left, got %d", store.Size())
	}
	if store.Has("second") {
		t.Errorf("removed name still recorded")
	}
}

func TestReportStoreClear(t *testing.T) {
	store := sampleStore()
	store.Clear()
	if store.Size() != 0 || len(store.Names()) != 0 {
		t.Fatalf("expected an empty store after Clear")
	}
	store.Add(&RunReport{Name: "fresh"})
	report, ok := store.Get("fresh")
	if !ok || report.ID != 0 {
		t.Errorf("expected IDs to restart after Clear, got %v", report)
	}
}
