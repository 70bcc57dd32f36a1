// Package model defines shared data structures.
package model

// Kind distinguishes milestones from essentials.
type Kind string

const (
	KindMilestone Kind = "milestone"
	KindEssential Kind = "essential"
)

// LinkType tags a reference link for display.
type LinkType string

const (
	LinkWeb       LinkType = "web"
	LinkInstagram LinkType = "instagram"
	LinkExpert    LinkType = "expert"
	LinkVideo     LinkType = "video"
)

// ViewMode selects the browsing screen.
type ViewMode string

const (
	ModePulse   ViewMode = "pulse"
	ModeLibrary ViewMode = "library"
)

const (
	// MaxAgeMonths is the upper bound of the age slider.
	MaxAgeMonths = 72
	// DefaultAgeMonths is the age a new session starts at.
	DefaultAgeMonths = 6
	// OpenEndedAge stands in for a missing essential end age.
	OpenEndedAge = 999
)

// Link is a curated reference attached to a record.
type Link struct {
	Label       string
	URL         string
	Type        LinkType
	Description string
	Author      string
	AuthorIcon  string
}

// Record is one catalogue entry.
type Record struct {
	ID               string
	Category         string
	Kind             Kind
	StartAgeMonths   int
	EndAgeMonths     *int
	Title            string
	ShortDescription string
	LongDescription  string
	Icon             string
	Links            []Link
}

// IsMilestone reports whether the record is a milestone. An unset kind counts as one.
func (r Record) IsMilestone() bool {
	return r.Kind == KindMilestone || r.Kind == ""
}

// IsEssential reports whether the record is an essential.
func (r Record) IsEssential() bool {
	return r.Kind == KindEssential
}

// EndAge returns the inclusive end of the record's relevance window.
func (r Record) EndAge() int {
	if r.EndAgeMonths == nil {
		return OpenEndedAge
	}
	return *r.EndAgeMonths
}

// AgeGroup is a named, inclusive age bracket used to group history.
type AgeGroup struct {
	ID        string
	Label     string
	MinMonths int
	MaxMonths int
}

// Contains reports whether months falls inside the bracket.
func (g AgeGroup) Contains(months int) bool {
	return months >= g.MinMonths && months <= g.MaxMonths
}

// DefaultAgeGroups returns the standard bracket set in display order.
func DefaultAgeGroups() []AgeGroup {
	return []AgeGroup{
		{ID: "infancy", Label: "Infancy (0-2)", MinMonths: 0, MaxMonths: 24},
		{ID: "preschool", Label: "Preschool (3-5)", MinMonths: 25, MaxMonths: 60},
		{ID: "school-age", Label: "School Age (6-12)", MinMonths: 61, MaxMonths: 144},
	}
}

// BrowseConfig defines the start-up browsing settings.
type BrowseConfig struct {
	Age          int
	Mode         ViewMode
	Category     string
	Hero         bool
	StickyHeader bool
	Catalogue    string
	LogLevel     string
}

// Months returns a pointer to v, for optional age fields.
func Months(v int) *int {
	return &v
}
