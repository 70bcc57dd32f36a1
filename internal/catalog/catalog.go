// Package catalog loads, validates and serves the record catalogue.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/verte-zerg/tinysteps/internal/model"
	"github.com/verte-zerg/tinysteps/internal/relevance"
)

// Catalogue is an immutable, validated set of records and age groups.
type Catalogue struct {
	source     string
	records    []model.Record
	groups     []model.AgeGroup
	byID       map[string]int
	categories []string
}

// New validates records and groups and returns a catalogue over normalised copies.
// A nil groups slice selects the default age brackets.
func New(source string, records []model.Record, groups []model.AgeGroup) (*Catalogue, error) {
	if groups == nil {
		groups = model.DefaultAgeGroups()
	}
	normalized := make([]model.Record, len(records))
	for i, r := range records {
		normalized[i] = normalizeRecord(r)
	}
	if err := validateCatalogue(normalized, groups); err != nil {
		return nil, err
	}
	byID := make(map[string]int, len(normalized))
	for i, r := range normalized {
		byID[r.ID] = i
	}
	return &Catalogue{
		source:     source,
		records:    normalized,
		groups:     append([]model.AgeGroup(nil), groups...),
		byID:       byID,
		categories: relevance.DistinctCategories(normalized),
	}, nil
}

// Builtin returns the catalogue compiled into the binary.
func Builtin() (*Catalogue, error) {
	return New("builtin", builtinRecords(), model.DefaultAgeGroups())
}

// Load resolves a catalogue source by path. An empty path selects the builtin
// catalogue; .db and .sqlite files are read as catalogue databases.
func Load(path string) (*Catalogue, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Builtin()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return LoadDatabase(path)
	default:
		return LoadFile(path)
	}
}

// Source names where the catalogue came from.
func (c *Catalogue) Source() string {
	return c.source
}

// Records returns the records in catalogue order.
func (c *Catalogue) Records() []model.Record {
	return append([]model.Record(nil), c.records...)
}

// AgeGroups returns the age brackets in display order.
func (c *Catalogue) AgeGroups() []model.AgeGroup {
	return append([]model.AgeGroup(nil), c.groups...)
}

// Categories returns the distinct categories in ascending order.
func (c *Catalogue) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Lookup finds a record by id.
func (c *Catalogue) Lookup(id string) (model.Record, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Record{}, false
	}
	return c.records[idx], true
}

// Len returns the number of records.
func (c *Catalogue) Len() int {
	return len(c.records)
}

// CountByCategory returns milestone and essential counts for a category.
func (c *Catalogue) CountByCategory(category string) (milestones, essentials int) {
	for _, r := range c.records {
		if r.Category != category {
			continue
		}
		if r.IsEssential() {
			essentials++
		} else {
			milestones++
		}
	}
	return milestones, essentials
}

func normalizeRecord(r model.Record) model.Record {
	if r.Kind == "" {
		r.Kind = model.KindMilestone
	}
	r.ID = strings.TrimSpace(r.ID)
	r.Category = strings.TrimSpace(r.Category)
	if r.EndAgeMonths != nil {
		r.EndAgeMonths = model.Months(*r.EndAgeMonths)
	}
	if len(r.Links) > 0 {
		r.Links = append([]model.Link(nil), r.Links...)
	}
	return r
}

func describe(r model.Record, idx int) string {
	if r.ID == "" {
		return fmt.Sprintf("record #%d", idx+1)
	}
	return fmt.Sprintf("record %q", r.ID)
}
