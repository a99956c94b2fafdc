package experience

import (
	"sort"
	"time"
)

// Record is one entry of the experience list.
type Record struct {
	Title            string   `yaml:"title" validate:"required"`
	Organization     string   `yaml:"organization" validate:"required"`
	OrganizationLink string   `yaml:"organization_link,omitempty" validate:"omitempty,url"`
	Period           string   `yaml:"period" validate:"required"`
	Summary          string   `yaml:"summary" validate:"required"`
	Category         Category `yaml:"category" validate:"required"`
}

// Ordered is a Record placed on the timeline.
type Ordered struct {
	Record
	Lane Lane
	Rank int // position within the category after sorting
}

// Style returns the category style of the record.
func (o Ordered) Style() Style {
	return o.Category.Style()
}

type dated struct {
	rec Record
	end time.Time
	ok  bool
}

// Order sorts each category by end date, latest first, and interleaves the
// categories pairwise: professional[i] then academic[i] for every i.
// The input slice is not modified.
func Order(records []Record, now time.Time) []Ordered {
	byCategory := make(map[Category][]dated, len(Categories))
	for _, r := range records {
		end, ok := EndDate(r.Period, now)
		byCategory[r.Category] = append(byCategory[r.Category], dated{rec: r, end: end, ok: ok})
	}

	longest := 0
	for _, c := range Categories {
		sortDescending(byCategory[c])
		if n := len(byCategory[c]); n > longest {
			longest = n
		}
	}

	out := make([]Ordered, 0, len(records))
	for i := 0; i < longest; i++ {
		for _, c := range Categories {
			if i < len(byCategory[c]) {
				out = append(out, Ordered{
					Record: byCategory[c][i].rec,
					Lane:   c.Style().Lane,
					Rank:   i,
				})
			}
		}
	}
	return out
}

func sortDescending(ds []dated) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		// malformed periods sink to the end
		if a.ok != b.ok {
			return a.ok
		}
		return a.end.After(b.end)
	})
}

// Counts returns how many records fall into each lane.
func Counts(records []Record) map[Lane]int {
	counts := map[Lane]int{Left: 0, Right: 0}
	for _, r := range records {
		counts[r.Category.Style().Lane]++
	}
	return counts
}
