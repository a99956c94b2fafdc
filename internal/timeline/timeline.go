// Package timeline computes the geometry of the branching experience timeline.
package timeline

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/experience"
)

const (
	Width      = 600
	RowHeight  = 400
	Padding    = 100
	BaseOffset = 200
	SpineX     = 300
	BranchY    = 100 // where the branches leave the spine
	MarkerR    = 8
)

var laneX = map[experience.Lane]int{
	experience.Left:  200,
	experience.Right: 400,
}

// LaneX returns the horizontal position of a lane.
func LaneX(l experience.Lane) int {
	return laneX[l]
}

// Branch is the curved path of one lane.
type Branch struct {
	Lane   experience.Lane
	Path   string
	Color  string
	Hidden bool // lane has no entries; the path is still rendered
}

// Marker is the dot drawn for one record.
type Marker struct {
	X, Y  int
	Color string
	Top   int // offset of the matching card inside the cards container
}

// Layout is the full geometry of the timeline.
type Layout struct {
	Width       int
	Height      int
	CardsHeight int
	Spine       string
	Branches    []Branch
	Markers     []Marker
}

// Height is the canvas height for the given lane counts.
func Height(leftCount, rightCount int) int {
	return max(leftCount, rightCount)*RowHeight + Padding
}

// Compute lays out the ordered records. Only lane counts and ranks are used.
func Compute(ordered []experience.Ordered) Layout {
	counts := map[experience.Lane]int{}
	for _, o := range ordered {
		counts[o.Lane]++
	}

	h := Height(counts[experience.Left], counts[experience.Right])
	l := Layout{
		Width:       Width,
		Height:      h,
		CardsHeight: h - Padding,
		Spine:       fmt.Sprintf("M%d,0 L%d,%d", SpineX, SpineX, h-50),
	}

	for _, c := range experience.Categories {
		s := c.Style()
		l.Branches = append(l.Branches, Branch{
			Lane:   s.Lane,
			Path:   branchPath(LaneX(s.Lane), h),
			Color:  s.Accent,
			Hidden: counts[s.Lane] == 0,
		})
	}

	l.Markers = make([]Marker, 0, len(ordered))
	for _, o := range ordered {
		l.Markers = append(l.Markers, Marker{
			X:     LaneX(o.Lane),
			Y:     BaseOffset + o.Rank*RowHeight,
			Color: o.Style().Accent,
			Top:   o.Rank * RowHeight,
		})
	}
	return l
}

func branchPath(x, h int) string {
	return fmt.Sprintf("M%d,%d C%d,%d %d,%d %d,%d L%d,%d C%d,%d %d,%d %d,%d",
		SpineX, BranchY,
		x, BranchY, x, BranchY+50, x, BaseOffset,
		x, h-200,
		x, h-150, x, h-100, SpineX, h-100,
	)
}
