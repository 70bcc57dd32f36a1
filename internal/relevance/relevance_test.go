package relevance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tinysteps/internal/model"
)

func milestone(id, category string, start int) model.Record {
	return model.Record{ID: id, Category: category, Kind: model.KindMilestone, StartAgeMonths: start, Title: id}
}

func essential(id, category string, start int, end *int) model.Record {
	return model.Record{ID: id, Category: category, Kind: model.KindEssential, StartAgeMonths: start, EndAgeMonths: end, Title: id}
}

func sampleRecords() []model.Record {
	return []model.Record{
		milestone("f1", "Food", 0),
		milestone("f2", "Food", 6),
		milestone("f3", "Food", 8),
		essential("fe1", "Food", 5, model.Months(36)),
		essential("fe2", "Food", 4, model.Months(12)),
		milestone("s1", "Sleep", 2),
		milestone("s2", "Sleep", 4),
		essential("se2", "Sleep", 0, model.Months(72)),
		milestone("t1", "Toys", 0),
		milestone("t2", "Toys", 3),
		essential("te1", "Toys", 0, nil),
		{ID: "b1", Category: "Books", StartAgeMonths: 30, Title: "untyped"},
	}
}

func ids(records []model.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func spotlightIDs(entries []SpotlightEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Record.ID)
	}
	return out
}

func TestDistinctCategoriesSortedUnique(t *testing.T) {
	got := DistinctCategories(sampleRecords())
	assert.Equal(t, []string{"Books", "Food", "Sleep", "Toys"}, got)
}

func TestChangePointsMilestonesOnly(t *testing.T) {
	records := append(sampleRecords(), milestone("late", "Growth Jumps", 80))
	got := ChangePoints(records, model.MaxAgeMonths)
	assert.Equal(t, []int{0, 2, 3, 4, 6, 8, 30}, got)
}

func TestForAgeMembershipProperties(t *testing.T) {
	records := sampleRecords()
	for age := 0; age <= 100; age++ {
		rel := ForAge(records, age)
		inSpot := map[string]int{}
		for _, e := range rel.Spotlight {
			inSpot[e.Record.ID] = e.Offset
		}
		inHistory := map[string]bool{}
		for _, r := range rel.History {
			inHistory[r.ID] = true
		}
		inEssentials := map[string]bool{}
		for _, r := range rel.ActiveEssentials {
			inEssentials[r.ID] = true
		}
		for _, r := range records {
			if r.IsMilestone() {
				offset := r.StartAgeMonths - age
				_, spot := inSpot[r.ID]
				assert.Equal(t, offset >= -2 && offset <= 5, spot, "spotlight %s at age %d", r.ID, age)
				assert.Equal(t, r.StartAgeMonths <= age, inHistory[r.ID], "history %s at age %d", r.ID, age)
				assert.False(t, inEssentials[r.ID])
				continue
			}
			end := model.OpenEndedAge
			if r.EndAgeMonths != nil {
				end = *r.EndAgeMonths
			}
			assert.Equal(t, r.StartAgeMonths <= age && age <= end, inEssentials[r.ID], "essential %s at age %d", r.ID, age)
		}
	}
}

func TestForAgeSpotlightOrdering(t *testing.T) {
	rel := ForAge(sampleRecords(), 4)
	require.NotEmpty(t, rel.Spotlight)
	for i := 1; i < len(rel.Spotlight); i++ {
		prev, cur := rel.Spotlight[i-1], rel.Spotlight[i]
		if prev.Offset == cur.Offset {
			assert.LessOrEqual(t, prev.Record.Category, cur.Record.Category)
			continue
		}
		assert.Less(t, prev.Offset, cur.Offset)
	}
	assert.Equal(t, []string{"s1", "t2", "s2", "f2", "f3"}, spotlightIDs(rel.Spotlight))
}

func TestScenarioSingleMilestoneWindow(t *testing.T) {
	records := []model.Record{milestone("f2", "Food", 6)}

	rel := ForAge(records, 6)
	require.Len(t, rel.Spotlight, 1)
	assert.Equal(t, 0, rel.Spotlight[0].Offset)
	assert.Equal(t, []string{"f2"}, ids(rel.History))

	rel = ForAge(records, 1)
	require.Len(t, rel.Spotlight, 1)
	assert.Equal(t, 5, rel.Spotlight[0].Offset)
	assert.Empty(t, rel.History)

	rel = ForAge(records, 12)
	assert.Empty(t, rel.Spotlight)
	assert.Equal(t, []string{"f2"}, ids(rel.History), "reached milestones stay in history")
}

func TestScenarioEssentialBounds(t *testing.T) {
	records := []model.Record{essential("fe1", "Food", 5, model.Months(36))}
	for age, active := range map[int]bool{4: false, 5: true, 20: true, 36: true, 37: false} {
		rel := ForAge(records, age)
		assert.Equal(t, active, len(rel.ActiveEssentials) == 1, "age %d", age)
	}
}

func TestForAgeOpenEndedEssential(t *testing.T) {
	records := []model.Record{essential("te1", "Toys", 0, nil)}
	rel := ForAge(records, 500)
	assert.Equal(t, []string{"te1"}, ids(rel.ActiveEssentials))
	rel = ForAge(records, 1000)
	assert.Empty(t, rel.ActiveEssentials)
}

func TestScenarioEmptyCatalogue(t *testing.T) {
	assert.Empty(t, DistinctCategories(nil))
	assert.Empty(t, ChangePoints(nil, model.MaxAgeMonths))
	for _, age := range []int{0, 6, 72, 200} {
		rel := ForAge(nil, age)
		assert.Empty(t, rel.Spotlight)
		assert.Empty(t, rel.History)
		assert.Empty(t, rel.ActiveEssentials)
	}
	assert.Empty(t, GroupHistory(nil, model.DefaultAgeGroups()))
}

func TestGroupHistoryBracketsAndFirstAppearance(t *testing.T) {
	history := []model.Record{
		milestone("t1", "Toys", 0),
		milestone("f1", "Food", 0),
		milestone("t2", "Toys", 3),
		milestone("g1", "Growth Jumps", 70),
	}
	got := GroupHistory(history, model.DefaultAgeGroups())
	require.Len(t, got, 2, "empty preschool bracket is omitted")

	assert.Equal(t, "infancy", got[0].Group.ID)
	require.Len(t, got[0].Categories, 2)
	assert.Equal(t, "Toys", got[0].Categories[0].Category)
	assert.Equal(t, []string{"t1", "t2"}, ids(got[0].Categories[0].Records))
	assert.Equal(t, "Food", got[0].Categories[1].Category)

	assert.Equal(t, "school-age", got[1].Group.ID)
	assert.Equal(t, []string{"g1"}, ids(got[1].Categories[0].Records))
}

func TestGroupHistoryInclusiveBounds(t *testing.T) {
	history := []model.Record{milestone("a", "X", 24), milestone("b", "X", 25)}
	got := GroupHistory(history, model.DefaultAgeGroups())
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a"}, ids(got[0].Categories[0].Records))
	assert.Equal(t, []string{"b"}, ids(got[1].Categories[0].Records))
}

func TestLibraryPartitionAndOrder(t *testing.T) {
	records := []model.Record{
		milestone("late", "Food", 8),
		essential("e2", "Food", 5, nil),
		{ID: "untyped", Category: "Food", StartAgeMonths: 2},
		milestone("tie-a", "Food", 6),
		milestone("tie-b", "Food", 6),
		essential("e1", "Food", 4, model.Months(12)),
		milestone("other", "Sleep", 1),
	}
	view := Library(records, "Food")
	assert.Equal(t, "Food", view.Category)
	assert.Equal(t, []string{"untyped", "tie-a", "tie-b", "late"}, ids(view.Milestones))
	assert.Equal(t, []string{"e1", "e2"}, ids(view.Essentials))
}

func TestScenarioEssentialsOnlyCategory(t *testing.T) {
	records := []model.Record{
		essential("g2", "Gear", 12, nil),
		essential("g1", "Gear", 3, model.Months(9)),
	}
	view := Library(records, "Gear")
	assert.Empty(t, view.Milestones)
	assert.Equal(t, []string{"g1", "g2"}, ids(view.Essentials))
}

func TestLibraryUnknownCategory(t *testing.T) {
	view := Library(sampleRecords(), "Nope")
	assert.Empty(t, view.Milestones)
	assert.Empty(t, view.Essentials)
}

func TestEngineIsIdempotent(t *testing.T) {
	records := sampleRecords()
	groups := model.DefaultAgeGroups()
	for _, age := range []int{0, 4, 6, 30, 72} {
		first := Pulse(records, groups, age)
		second := Pulse(records, groups, age)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("pulse view changed between calls (-first +second):\n%s", diff)
		}
	}
	if diff := cmp.Diff(Library(records, "Food"), Library(records, "Food")); diff != "" {
		t.Fatalf("library view changed between calls:\n%s", diff)
	}
	if diff := cmp.Diff(DistinctCategories(records), DistinctCategories(records)); diff != "" {
		t.Fatalf("categories changed between calls:\n%s", diff)
	}
}

func TestEngineDoesNotReorderInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)
	_ = Library(records, "Food")
	_ = ForAge(records, 4)
	assert.Equal(t, before, ids(records))
}
