// Package sections tracks which page section is in view for navigation highlighting.
package sections

import (
	"sort"
	"sync"
)

// TopThreshold is the scroll offset below which the first section is always active.
const TopThreshold = 100

// Section is one navigable page region.
type Section struct {
	ID    string
	Label string
	Ref   string // DOM id of the region reported by the browser
}

// Entry is one intersection record delivered by the browser.
type Entry struct {
	Ref          string  `json:"ref"`
	Top          float64 `json:"top"`
	Intersecting bool    `json:"intersecting"`
}

// Observer reports the single section most plausibly in view.
// The zero value is not usable; construct with New.
type Observer struct {
	mu        sync.Mutex
	sections  []Section
	byRef     map[string]int
	active    string
	scrollY   float64
	observing bool
	onChange  func(id string)
}

// New builds an observer over sections in page order. The first section is
// active initially. onChange may be nil.
func New(sections []Section, onChange func(id string)) *Observer {
	if len(sections) == 0 {
		panic("sections: observer needs at least one section")
	}
	byRef := make(map[string]int, len(sections))
	for i, s := range sections {
		byRef[s.Ref] = i
	}
	return &Observer{
		sections: sections,
		byRef:    byRef,
		active:   sections[0].ID,
		onChange: onChange,
	}
}

// Observe starts accepting scroll and intersection events. The returned
// release stops both and may be called any number of times.
func (o *Observer) Observe() (release func()) {
	o.mu.Lock()
	o.observing = true
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			o.observing = false
			o.mu.Unlock()
		})
	}
}

// Observing reports whether the subscriptions are held.
func (o *Observer) Observing() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.observing
}

// Active returns the current section id.
func (o *Observer) Active() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active
}

// Sections returns the observed sections in page order.
func (o *Observer) Sections() []Section {
	return o.sections
}

// Scroll handles a scroll event at the given vertical offset.
func (o *Observer) Scroll(offsetY float64) {
	o.mu.Lock()
	if !o.observing {
		o.mu.Unlock()
		return
	}
	o.scrollY = offsetY
	changed := o.nearTopLocked()
	o.mu.Unlock()
	o.notify(changed)
}

// Intersect handles one batch of intersection entries. Near the top of the
// page the first section wins; otherwise the topmost newly intersecting region
// does.
func (o *Observer) Intersect(entries []Entry) {
	o.mu.Lock()
	if !o.observing {
		o.mu.Unlock()
		return
	}
	if o.scrollY < TopThreshold {
		changed := o.nearTopLocked()
		o.mu.Unlock()
		o.notify(changed)
		return
	}

	hits := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, known := o.byRef[e.Ref]; known && e.Intersecting {
			hits = append(hits, e)
		}
	}
	if len(hits) == 0 {
		o.mu.Unlock()
		return
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Top != hits[j].Top {
			return hits[i].Top < hits[j].Top
		}
		return o.byRef[hits[i].Ref] < o.byRef[hits[j].Ref]
	})
	changed := o.setLocked(o.sections[o.byRef[hits[0].Ref]].ID)
	o.mu.Unlock()
	o.notify(changed)
}

func (o *Observer) nearTopLocked() string {
	if o.scrollY >= TopThreshold {
		return ""
	}
	return o.setLocked(o.sections[0].ID)
}

// setLocked returns id when the active section changed, "" otherwise.
func (o *Observer) setLocked(id string) string {
	if o.active == id {
		return ""
	}
	o.active = id
	return id
}

func (o *Observer) notify(changed string) {
	if changed != "" && o.onChange != nil {
		o.onChange(changed)
	}
}
