package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/experience"
)

func records(prof, acad int) []experience.Record {
	var out []experience.Record
	for i := 0; i < prof; i++ {
		out = append(out, experience.Record{Title: "p", Period: "Jan 2020 - Jan 2021", Category: experience.Professional})
	}
	for i := 0; i < acad; i++ {
		out = append(out, experience.Record{Title: "a", Period: "Jan 2020 - Jan 2021", Category: experience.Academic})
	}
	return out
}

func layout(prof, acad int) Layout {
	return Compute(experience.Order(records(prof, acad), time.Now()))
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 3*RowHeight+Padding, Height(2, 3))
	assert.Equal(t, Padding, Height(0, 0))
}

func TestCompute_HeightDependsOnLongestLane(t *testing.T) {
	base := layout(3, 1)
	assert.Equal(t, 1300, base.Height)
	assert.Equal(t, 1200, base.CardsHeight)

	// growing the shorter lane leaves the height alone
	assert.Equal(t, base.Height, layout(3, 2).Height)
	assert.Equal(t, base.Height+RowHeight, layout(4, 2).Height)
}

func TestCompute_SpineAndBranches(t *testing.T) {
	l := layout(3, 2)
	assert.Equal(t, "M300,0 L300,1250", l.Spine)
	require.Len(t, l.Branches, 2)

	right := l.Branches[0]
	assert.Equal(t, experience.Right, right.Lane)
	assert.Equal(t, "M300,100 C400,100 400,150 400,200 L400,1100 C400,1150 400,1200 300,1200", right.Path)
	assert.False(t, right.Hidden)

	left := l.Branches[1]
	assert.Equal(t, experience.Left, left.Lane)
	assert.Equal(t, "M300,100 C200,100 200,150 200,200 L200,1100 C200,1150 200,1200 300,1200", left.Path)
}

func TestCompute_EmptyLaneIsHiddenNotOmitted(t *testing.T) {
	l := layout(2, 0)
	require.Len(t, l.Branches, 2)
	assert.False(t, l.Branches[0].Hidden)
	assert.True(t, l.Branches[1].Hidden)
	assert.NotEmpty(t, l.Branches[1].Path)
}

func TestCompute_Markers(t *testing.T) {
	l := layout(2, 1)
	require.Len(t, l.Markers, 3)

	assert.Equal(t, Marker{X: 400, Y: 200, Color: "#FF2E63", Top: 0}, l.Markers[0])
	assert.Equal(t, Marker{X: 200, Y: 200, Color: "#08D9D6", Top: 0}, l.Markers[1])
	assert.Equal(t, Marker{X: 400, Y: 600, Color: "#FF2E63", Top: 400}, l.Markers[2])
}
