// Package relevance computes what the catalogue shows for a given age or category.
package relevance

import (
	"sort"

	"github.com/verte-zerg/tinysteps/internal/model"
)

const (
	// SpotlightBefore is how many months back a reached milestone stays in the spotlight.
	SpotlightBefore = 2
	// SpotlightAfter is how many months ahead an upcoming milestone enters the spotlight.
	SpotlightAfter = 5
)

// SpotlightEntry is a milestone near the selected age.
// Offset is start age minus selected age: negative means already reached.
type SpotlightEntry struct {
	Record model.Record
	Offset int
}

// Relevance classifies the catalogue for a single age.
type Relevance struct {
	Spotlight        []SpotlightEntry
	History          []model.Record
	ActiveEssentials []model.Record
}

// CategoryGroup holds the records of one category inside a bracket.
type CategoryGroup struct {
	Category string
	Records  []model.Record
}

// BracketGroup holds the history of one age bracket, split by category.
type BracketGroup struct {
	Group      model.AgeGroup
	Categories []CategoryGroup
}

// LibraryView lists one category's records chronologically.
type LibraryView struct {
	Category   string
	Milestones []model.Record
	Essentials []model.Record
}

// PulseView bundles everything the pulse screen shows for an age.
type PulseView struct {
	Age       int
	Relevance Relevance
	History   []BracketGroup
}

// DistinctCategories returns the distinct categories in ascending order.
func DistinctCategories(records []model.Record) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	sort.Strings(out)
	return out
}

// ChangePoints returns the distinct milestone start ages up to maxAge, ascending.
func ChangePoints(records []model.Record, maxAge int) []int {
	seen := map[int]struct{}{}
	out := make([]int, 0)
	for _, r := range records {
		if !r.IsMilestone() || r.StartAgeMonths > maxAge {
			continue
		}
		if _, ok := seen[r.StartAgeMonths]; ok {
			continue
		}
		seen[r.StartAgeMonths] = struct{}{}
		out = append(out, r.StartAgeMonths)
	}
	sort.Ints(out)
	return out
}

// ForAge classifies every record against age.
func ForAge(records []model.Record, age int) Relevance {
	rel := Relevance{
		Spotlight:        []SpotlightEntry{},
		History:          []model.Record{},
		ActiveEssentials: []model.Record{},
	}
	for _, r := range records {
		if r.IsMilestone() {
			offset := r.StartAgeMonths - age
			if offset >= -SpotlightBefore && offset <= SpotlightAfter {
				rel.Spotlight = append(rel.Spotlight, SpotlightEntry{Record: r, Offset: offset})
			}
			if r.StartAgeMonths <= age {
				rel.History = append(rel.History, r)
			}
			continue
		}
		if r.StartAgeMonths <= age && age <= r.EndAge() {
			rel.ActiveEssentials = append(rel.ActiveEssentials, r)
		}
	}
	sort.SliceStable(rel.Spotlight, func(i, j int) bool {
		a, b := rel.Spotlight[i], rel.Spotlight[j]
		if a.Offset == b.Offset {
			return a.Record.Category < b.Record.Category
		}
		return a.Offset < b.Offset
	})
	return rel
}

// GroupHistory buckets history records by age bracket, then by category in
// first-appearance order. Brackets without records are left out.
func GroupHistory(history []model.Record, groups []model.AgeGroup) []BracketGroup {
	out := make([]BracketGroup, 0, len(groups))
	for _, g := range groups {
		var cats []CategoryGroup
		index := map[string]int{}
		for _, r := range history {
			if !g.Contains(r.StartAgeMonths) {
				continue
			}
			idx, ok := index[r.Category]
			if !ok {
				idx = len(cats)
				index[r.Category] = idx
				cats = append(cats, CategoryGroup{Category: r.Category})
			}
			cats[idx].Records = append(cats[idx].Records, r)
		}
		if len(cats) == 0 {
			continue
		}
		out = append(out, BracketGroup{Group: g, Categories: cats})
	}
	return out
}

// Library returns the records of category split by kind, each ordered by start age.
func Library(records []model.Record, category string) LibraryView {
	view := LibraryView{
		Category:   category,
		Milestones: []model.Record{},
		Essentials: []model.Record{},
	}
	for _, r := range records {
		if r.Category != category {
			continue
		}
		if r.IsEssential() {
			view.Essentials = append(view.Essentials, r)
		} else {
			view.Milestones = append(view.Milestones, r)
		}
	}
	sortByStart(view.Milestones)
	sortByStart(view.Essentials)
	return view
}

// Pulse computes the pulse screen for age.
func Pulse(records []model.Record, groups []model.AgeGroup, age int) PulseView {
	rel := ForAge(records, age)
	return PulseView{
		Age:       age,
		Relevance: rel,
		History:   GroupHistory(rel.History, groups),
	}
}

func sortByStart(records []model.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartAgeMonths < records[j].StartAgeMonths
	})
}
