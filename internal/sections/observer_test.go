package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var page = []Section{
	{ID: "home", Label: "Home", Ref: "section-home"},
	{ID: "about", Label: "About", Ref: "section-about"},
	{ID: "experience", Label: "Experience", Ref: "section-experience"},
	{ID: "projects", Label: "Projects", Ref: "section-projects"},
}

func observed(t *testing.T, changes *[]string) *Observer {
	o := New(page, func(id string) { *changes = append(*changes, id) })
	release := o.Observe()
	t.Cleanup(release)
	return o
}

func TestObserver_StartsAtHome(t *testing.T) {
	o := New(page, nil)
	assert.Equal(t, "home", o.Active())
	assert.False(t, o.Observing())
}

func TestObserver_NearTopAlwaysHome(t *testing.T) {
	var changes []string
	o := observed(t, &changes)

	o.Scroll(0)
	o.Intersect([]Entry{{Ref: "section-projects", Top: 10, Intersecting: true}})
	assert.Equal(t, "home", o.Active())
	assert.Empty(t, changes)
}

func TestObserver_IntersectionBelowThreshold(t *testing.T) {
	var changes []string
	o := observed(t, &changes)

	o.Scroll(900)
	o.Intersect([]Entry{{Ref: "section-experience", Top: 40, Intersecting: true}})
	assert.Equal(t, "experience", o.Active())

	// returning to the top resets to home without an intersection event
	o.Scroll(20)
	assert.Equal(t, "home", o.Active())
	assert.Equal(t, []string{"experience", "home"}, changes)
}

func TestObserver_TopmostWinsInBatch(t *testing.T) {
	var changes []string
	o := observed(t, &changes)
	o.Scroll(1500)

	o.Intersect([]Entry{
		{Ref: "section-projects", Top: 300, Intersecting: true},
		{Ref: "section-about", Top: -50, Intersecting: true},
		{Ref: "section-experience", Top: -400, Intersecting: false},
	})
	assert.Equal(t, "about", o.Active())

	// equal offsets fall back to page order
	o.Intersect([]Entry{
		{Ref: "section-projects", Top: 0, Intersecting: true},
		{Ref: "section-experience", Top: 0, Intersecting: true},
	})
	assert.Equal(t, "experience", o.Active())
}

func TestObserver_IgnoresUnknownAndLeaving(t *testing.T) {
	var changes []string
	o := observed(t, &changes)
	o.Scroll(500)

	o.Intersect([]Entry{{Ref: "footer", Top: 0, Intersecting: true}})
	o.Intersect([]Entry{{Ref: "section-about", Top: 0, Intersecting: false}})
	assert.Equal(t, "home", o.Active())
	assert.Empty(t, changes)
}

func TestObserver_ReleaseStopsEvents(t *testing.T) {
	o := New(page, nil)
	release := o.Observe()
	assert.True(t, o.Observing())

	release()
	release()
	assert.False(t, o.Observing())

	o.Scroll(800)
	o.Intersect([]Entry{{Ref: "section-about", Top: 0, Intersecting: true}})
	assert.Equal(t, "home", o.Active())
}

func TestObserver_IgnoresEventsBeforeObserve(t *testing.T) {
	o := New(page, nil)
	o.Scroll(800)
	o.Intersect([]Entry{{Ref: "section-about", Top: 0, Intersecting: true}})
	assert.Equal(t, "home", o.Active())
}

func TestNew_PanicsWithoutSections(t *testing.T) {
	assert.Panics(t, func() { New(nil, nil) })
}
