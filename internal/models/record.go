// Package models defines the passport record and the pure functions that
// mutate it.
package models

import (
	"slices"
)

// CategoryID identifies one of the fixed trait domains.
type CategoryID string

const (
	CategorySensor        CategoryID = "sensor"
	CategoryBattery       CategoryID = "battery"
	CategoryCommunication CategoryID = "communication"
)

// Categories lists every category in canonical order.
var Categories = []CategoryID{CategorySensor, CategoryBattery, CategoryCommunication}

// DefaultStampCap is how many stamps a record keeps when no cap is configured.
const DefaultStampCap = 10

// CategoryEntry holds the selections and free text for one category.
//
// Tags is a set of positional indices into the category's option list, kept
// sorted ascending without duplicates. It is never nil.
type CategoryEntry struct {
	Tags []int
	Memo string
}

// HasTag reports whether index is selected.
func (e CategoryEntry) HasTag(index int) bool {
	_, found := slices.BinarySearch(e.Tags, index)
	return found
}

// IsEmpty reports whether nothing was entered for the category.
func (e CategoryEntry) IsEmpty() bool {
	return len(e.Tags) == 0 && e.Memo == ""
}

// Stamp is a praise marker.
type Stamp struct {
	// Date is formatted for display in the language active at creation.
	Date  string
	Emoji string
	// ID is unique in creation order; it carries no meaning beyond that.
	ID string
}

// Record is the complete user dataset of one profile.
type Record struct {
	Name       string
	Categories map[CategoryID]CategoryEntry
	// Stamps is ordered most recent first.
	Stamps []Stamp
}

// NewRecord returns an empty record: no name, nothing selected, empty memos
// and no stamps.
func NewRecord() Record {
	r := Record{
		Categories: make(map[CategoryID]CategoryEntry, len(Categories)),
		Stamps:     []Stamp{},
	}
	for _, c := range Categories {
		r.Categories[c] = CategoryEntry{Tags: []int{}}
	}
	return r
}

// Entry returns the entry of category c. Missing entries read as empty.
func (r Record) Entry(c CategoryID) CategoryEntry {
	e, ok := r.Categories[c]
	if !ok || e.Tags == nil {
		e.Tags = []int{}
	}
	return e
}

// Clone returns a deep copy of r so that mutators never share backing arrays
// with their input.
func (r Record) Clone() Record {
	out := Record{
		Name:       r.Name,
		Categories: make(map[CategoryID]CategoryEntry, len(Categories)),
		Stamps:     make([]Stamp, len(r.Stamps)),
	}
	copy(out.Stamps, r.Stamps)
	for _, c := range Categories {
		e := r.Entry(c)
		out.Categories[c] = CategoryEntry{Tags: slices.Clone(e.Tags), Memo: e.Memo}
	}
	return out
}

// RecentStamps returns up to n most recent stamps.
func (r Record) RecentStamps(n int) []Stamp {
	if n > len(r.Stamps) {
		n = len(r.Stamps)
	}
	if n < 0 {
		n = 0
	}
	return r.Stamps[:n]
}

// Prune drops tag indices that no longer point into the current option lists
// and returns the cleaned record with the number of dropped indices. Such
// indices come from tokens produced by an older option list.
func (r Record) Prune() (Record, int) {
	out := r.Clone()
	dropped := 0
	for _, c := range Categories {
		e := out.Categories[c]
		n := len(OptionKeys(c))
		kept := e.Tags[:0]
		for _, idx := range e.Tags {
			if idx < 0 || idx >= n {
				dropped++
				continue
			}
			kept = append(kept, idx)
		}
		e.Tags = kept
		out.Categories[c] = e
	}
	return out, dropped
}

// NormalizeTags returns tags as a sorted set. The result is never nil.
func NormalizeTags(tags []int) []int {
	out := slices.Clone(tags)
	if out == nil {
		return []int{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
