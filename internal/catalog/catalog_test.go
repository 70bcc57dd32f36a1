package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tinysteps/internal/model"
)

func TestBuiltinCatalogueIsValid(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, "builtin", c.Source())
	assert.Equal(t, []string{"Books", "Food", "Growth Jumps", "Sleep", "Toys"}, c.Categories())
	assert.Equal(t, model.DefaultAgeGroups(), c.AgeGroups())

	r, ok := c.Lookup("fe1")
	require.True(t, ok)
	assert.Equal(t, "Ergonomic High Chair", r.Title)
	assert.Equal(t, 36, r.EndAge())
}

func TestNewNormalizesMissingKind(t *testing.T) {
	c, err := New("test", []model.Record{{ID: "a", Category: "X", Title: "A"}}, nil)
	require.NoError(t, err)
	r, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, model.KindMilestone, r.Kind)
}

func TestNewRejectsMalformedRecords(t *testing.T) {
	cases := []struct {
		name    string
		records []model.Record
		want    string
	}{
		{
			name:    "negative start",
			records: []model.Record{{ID: "a", Category: "X", Title: "A", StartAgeMonths: -1}},
			want:    `record "a": start-age-months must be >= 0`,
		},
		{
			name:    "end before start",
			records: []model.Record{{ID: "a", Category: "X", Kind: model.KindEssential, Title: "A", StartAgeMonths: 10, EndAgeMonths: model.Months(4)}},
			want:    `record "a": end age 4 is before start age 10`,
		},
		{
			name: "duplicate id",
			records: []model.Record{
				{ID: "a", Category: "X", Title: "A"},
				{ID: "a", Category: "Y", Title: "B"},
			},
			want: `record "a": duplicate id (first used by record #1)`,
		},
		{
			name:    "empty category",
			records: []model.Record{{ID: "a", Title: "A"}},
			want:    `record "a": category is required`,
		},
		{
			name:    "missing id",
			records: []model.Record{{Category: "X", Title: "A"}},
			want:    `record #1: id is required`,
		},
		{
			name:    "unknown kind",
			records: []model.Record{{ID: "a", Category: "X", Title: "A", Kind: "gadget"}},
			want:    `record "a": kind must be one of: milestone essential`,
		},
		{
			name: "bad link url",
			records: []model.Record{{ID: "a", Category: "X", Title: "A", Links: []model.Link{
				{Label: "L", URL: "not a url"},
			}}},
			want: `record "a": link[0].url must be a valid URL`,
		},
		{
			name: "bad author icon",
			records: []model.Record{{ID: "a", Category: "X", Title: "A", Links: []model.Link{
				{Label: "L", URL: "https://aap.org", AuthorIcon: "aap.png"},
			}}},
			want: `record "a": link[0].author-icon must be a valid URL`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("test", tc.records, nil)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Problems, tc.want)
		})
	}
}

func TestNewRejectsInvertedAgeGroup(t *testing.T) {
	groups := []model.AgeGroup{{ID: "g", Label: "G", MinMonths: 10, MaxMonths: 5}}
	_, err := New("test", nil, groups)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `age group "g": max-months must not be less than min-months`)
}

func TestEmptyCatalogueIsValid(t *testing.T) {
	c, err := New("empty", nil, nil)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Categories())
}

func TestRecordsReturnsCopy(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	records := c.Records()
	records[0].Title = "mutated"
	again := c.Records()
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestCountByCategory(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	milestones, essentials := c.CountByCategory("Food")
	assert.Equal(t, 4, milestones)
	assert.Equal(t, 2, essentials)
}

func TestWriteAndLoadRoundTrip(t *testing.T) {
	want, err := Builtin()
	require.NoError(t, err)

	for _, ext := range []string{".toml", ".yaml", ".json", ".db"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalogue"+ext)
			format, err := FormatForPath(path)
			require.NoError(t, err)
			require.NoError(t, WriteFile(path, format, want))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, got.Source())
			if diff := cmp.Diff(want.Records(), got.Records()); diff != "" {
				t.Fatalf("records differ after round trip (-want +got):\n%s", diff)
			}
			assert.Equal(t, want.AgeGroups(), got.AgeGroups())
		})
	}
}

func TestLoadTOMLDefaultsKindAndGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.toml")
	content := strings.Join([]string{
		`[[record]]`,
		`id = "x1"`,
		`category = "Food"`,
		`title = "Untyped"`,
		`start-age-months = 6`,
		``,
		`[[record]]`,
		`id = "x2"`,
		`category = "Food"`,
		`kind = "essential"`,
		`title = "Spoon"`,
		`start-age-months = 4`,
		`end-age-months = 12`,
		``,
		`[[record.link]]`,
		`label = "Guide"`,
		`url = "https://example.com/spoons"`,
		`type = "web"`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAgeGroups(), c.AgeGroups())

	r, ok := c.Lookup("x1")
	require.True(t, ok)
	assert.Equal(t, model.KindMilestone, r.Kind)

	r, ok = c.Lookup("x2")
	require.True(t, ok)
	require.Len(t, r.Links, 1)
	assert.Equal(t, model.LinkWeb, r.Links[0].Type)
	assert.Equal(t, 12, r.EndAge())
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	content := "records:\n  - id: a\n    category: X\n    title: A\n    start-age-months: 5\n    end-age-months: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end age 2 is before start age 5")
}

func TestLoadRejectsMisspelledKeys(t *testing.T) {
	cases := map[string]struct{ content, key string }{
		"catalogue.toml": {strings.Join([]string{
			`[[record]]`,
			`id = "x1"`,
			`category = "Food"`,
			`title = "Purees"`,
			`start-age-month = 6`,
		}, "\n"), "start-age-month"},
		"catalogue.yaml": {"records:\n  - id: x1\n    category: Food\n    title: Purees\n    start-age-month: 6\n", "start-age-month"},
		"catalogue.json": {`{"records":[{"id":"x1","category":"Food","title":"Purees","startAgeMonth":6}]}`, "startAgeMonth"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoadEmptyYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "catalogue.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalogue extension")
}

func TestLoadMissingDatabase(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": FormatTOML, "YML": FormatYAML, "json": FormatJSON, "db": FormatSQLite} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	require.Error(t, err)
}
