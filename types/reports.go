package types

import (
	"github.com/netrixframework/proptest/util"
)

// RunReport summarizes one property run for the dashboard surface.
type RunReport struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Outcome         string `json:"outcome"`
	Seed            uint64 `json:"seed"`
	ValuesGenerated int    `json:"values_generated"`
	ShrinksAccepted int    `json:"shrinks_accepted"`
}

// ReportStore keeps run reports in arrival order and indexed by name.
// The engine itself is single threaded; the store is safe to read from
// the API server while runs are appended.
type ReportStore struct {
	reports *List[*RunReport]
	byName  *Map[string, *RunReport]
	ids     *util.Counter
}

// NewReportStore creates an empty ReportStore.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: NewEmptyList[*RunReport](),
		byName:  NewMap[string, *RunReport](),
		ids:     util.NewCounter(),
	}
}

// Add appends a report, assigning its ID. A report with a name seen
// before replaces the named entry but stays in the ordered log.
func (r *ReportStore) Add(report *RunReport) {
	report.ID = r.ids.Next()
	r.reports.Append(report)
	if report.Name != "" {
		r.byName.Add(report.Name, report)
	}
}

// All returns the reports in arrival order.
func (r *ReportStore) All() []*RunReport {
	return r.reports.Iter()
}

// Get fetches a report by test name.
func (r *ReportStore) Get(name string) (*RunReport, bool) {
	return r.byName.Get(name)
}

// ByID fetches a report by its assigned ID.
func (r *ReportStore) ByID(id int) (*RunReport, bool) {
	for i := 0; i < r.reports.Size(); i++ {
		report, ok := r.reports.Elem(i)
		if ok && report.ID == id {
			return report, true
		}
	}
	return nil, false
}

// Has indicates whether a report is recorded under the name.
func (r *ReportStore) Has(name string) bool {
	return r.byName.Exists(name)
}

// Names returns the recorded test names in sorted order.
func (r *ReportStore) Names() []string {
	return r.byName.Keys()
}

// Remove drops the report recorded under the name.
func (r *ReportStore) Remove(name string) bool {
	report, ok := r.byName.Get(name)
	if !ok {
		return false
	}
	r.byName.Remove(name)
	for _, kept := range r.reports.RemoveAll() {
		if kept != report {
			r.reports.Append(kept)
		}
	}
	return true
}

// Clear drops every recorded report and restarts the ID sequence.
func (r *ReportStore) Clear() {
	r.reports.RemoveAll()
	r.byName.RemoveAll()
	r.ids.Reset()
}

// Size returns the number of recorded reports.
func (r *ReportStore) Size() int {
	return r.reports.Size()
}
