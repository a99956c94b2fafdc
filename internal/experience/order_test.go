package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func rec(title, period string, c Category) Record {
	return Record{Title: title, Organization: "Org", Period: period, Summary: "s", Category: c}
}

func TestParseMonth(t *testing.T) {
	got, ok := ParseMonth("Aug 2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = ParseMonth("Sept 2024")
	require.True(t, ok)
	assert.Equal(t, time.September, got.Month())

	_, ok = ParseMonth("Smarch 2024")
	assert.False(t, ok)
	_, ok = ParseMonth("Aug")
	assert.False(t, ok)
	_, ok = ParseMonth("Aug twenty")
	assert.False(t, ok)
}

func TestEndDate(t *testing.T) {
	got, ok := EndDate("June 2024 - Aug 2024", fixedNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = EndDate("Jan 2023 - Present", fixedNow)
	require.True(t, ok)
	assert.Equal(t, fixedNow, got)

	_, ok = EndDate("2021 to 2023", fixedNow)
	assert.False(t, ok)
}

func TestOrder_InterleavesCategories(t *testing.T) {
	records := []Record{
		rec("TA", "Sept 2024 - Dec 2024", Academic),
		rec("Intern", "Jan 2021 - Mar 2021", Professional),
		rec("Engineer", "July 2021 - July 2023", Professional),
	}

	got := Order(records, fixedNow)
	require.Len(t, got, 3)

	assert.Equal(t, "Engineer", got[0].Title)
	assert.Equal(t, Right, got[0].Lane)
	assert.Equal(t, 0, got[0].Rank)

	assert.Equal(t, "TA", got[1].Title)
	assert.Equal(t, Left, got[1].Lane)
	assert.Equal(t, 0, got[1].Rank)

	assert.Equal(t, "Intern", got[2].Title)
	assert.Equal(t, Right, got[2].Lane)
	assert.Equal(t, 1, got[2].Rank)

	// input untouched
	assert.Equal(t, "TA", records[0].Title)
}

func TestOrder_PresentSortsFirst(t *testing.T) {
	records := []Record{
		rec("old", "Jan 2020 - Dec 2020", Professional),
		rec("current", "Jan 2024 - Present", Professional),
	}
	got := Order(records, fixedNow)
	require.Len(t, got, 2)
	assert.Equal(t, "current", got[0].Title)
}

func TestOrder_MalformedPeriodIsEarliest(t *testing.T) {
	records := []Record{
		rec("broken", "sometime", Academic),
		rec("bad month", "Jan 2020 - Foo 2021", Academic),
		rec("ok", "Jan 2010 - Feb 2010", Academic),
	}
	got := Order(records, fixedNow)
	require.Len(t, got, 3)
	assert.Equal(t, "ok", got[0].Title)
	// malformed entries keep their relative input order
	assert.Equal(t, "broken", got[1].Title)
	assert.Equal(t, "bad month", got[2].Title)
}

func TestOrder_UnequalCountsKeepsEveryRecord(t *testing.T) {
	var records []Record
	for i, p := range []string{"Jan 2020 - Jan 2021", "Jan 2019 - Jan 2020", "Jan 2018 - Jan 2019", "Jan 2017 - Jan 2018"} {
		c := Professional
		if i == 0 {
			c = Academic
		}
		records = append(records, rec(p, p, c))
	}

	got := Order(records, fixedNow)
	require.Len(t, got, len(records))

	seen := map[string]int{}
	lastRank := map[Lane]int{Left: -1, Right: -1}
	lastEnd := map[Lane]time.Time{}
	for _, o := range got {
		seen[o.Title]++
		assert.Greater(t, o.Rank, lastRank[o.Lane])
		lastRank[o.Lane] = o.Rank

		end, ok := EndDate(o.Period, fixedNow)
		require.True(t, ok)
		if prev, has := lastEnd[o.Lane]; has {
			assert.False(t, end.After(prev), "lane %s not descending", o.Lane)
		}
		lastEnd[o.Lane] = end
	}
	for _, r := range records {
		assert.Equal(t, 1, seen[r.Title])
	}
}

func TestOrder_Empty(t *testing.T) {
	assert.Empty(t, Order(nil, fixedNow))
}

func TestCounts(t *testing.T) {
	counts := Counts([]Record{
		rec("a", "Jan 2020 - Jan 2021", Academic),
		rec("b", "Jan 2020 - Jan 2021", Professional),
		rec("c", "Jan 2020 - Jan 2021", Professional),
	})
	assert.Equal(t, 1, counts[Left])
	assert.Equal(t, 2, counts[Right])
}

func TestCategoryStyle(t *testing.T) {
	assert.Equal(t, Right, Professional.Style().Lane)
	assert.Equal(t, Left, Academic.Style().Lane)
	assert.Equal(t, "Academic", Academic.Style().Label)

	var c Category
	require.NoError(t, c.UnmarshalText([]byte("Academic")))
	assert.Equal(t, Academic, c)
	assert.Error(t, c.UnmarshalText([]byte("hobby")))
}

func TestCategory_ZeroValueIsUnknown(t *testing.T) {
	var r Record
	assert.Equal(t, Unknown, r.Category)
	assert.NotContains(t, Categories, Unknown)
	assert.Panics(t, func() { Unknown.Style() })
}
