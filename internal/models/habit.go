package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	DatesCompleted DateSet   `json:"datesCompleted"`
	Created        time.Time `json:"created"`
}

// DateSet is a set of YYYY-MM-DD date strings. It marshals as a sorted JSON
// array for document compatibility but never holds a date twice, so toggling
// and streak math can treat membership as authoritative.
type DateSet map[string]struct{}

// NewDateSet builds a set from the given dates, dropping duplicates.
func NewDateSet(dates ...string) DateSet {
	ds := make(DateSet, len(dates))
	for _, d := range dates {
		ds[d] = struct{}{}
	}
	return ds
}

// Has reports whether the date is in the set
func (ds DateSet) Has(date string) bool {
	_, ok := ds[date]
	return ok
}

// Add inserts the date. Adding an existing date is a no-op.
func (ds DateSet) Add(date string) {
	ds[date] = struct{}{}
}

// Remove deletes the date if present
func (ds DateSet) Remove(date string) {
	delete(ds, date)
}

// Len returns the number of dates in the set
func (ds DateSet) Len() int {
	return len(ds)
}

// Sorted returns the dates in ascending calendar order. YYYY-MM-DD strings
// sort lexically in date order.
func (ds DateSet) Sorted() []string {
	dates := make([]string, 0, len(ds))
	for d := range ds {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// SortedDesc returns the dates in descending calendar order
func (ds DateSet) SortedDesc() []string {
	dates := ds.Sorted()
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
	return dates
}

func (ds DateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ds.Sorted())
}

func (ds *DateSet) UnmarshalJSON(data []byte) error {
	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return err
	}
	*ds = NewDateSet(dates...)
	return nil
}
