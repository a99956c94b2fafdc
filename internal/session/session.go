// Package session keeps the in-memory UI state of each visitor.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/sections"
)

// ErrUnknownTab is returned when a skill tab that does not exist is selected.
var ErrUnknownTab = errors.New("unknown skill tab")

// State is one visitor's page state. Nothing here is persisted.
type State struct {
	ID string

	reveal   reveal.Toggle
	observer *sections.Observer
	release  func()

	mu       sync.Mutex
	tab      string
	lastSeen time.Time
}

// Revealed reports whether the visitor has used the reveal button.
func (s *State) Revealed() bool { return s.reveal.Revealed() }

// Reveal fires effect and marks the state revealed.
func (s *State) Reveal(effect reveal.Effect) bool { return s.reveal.Reveal(effect) }

// SkillTab returns the selected skill tab.
func (s *State) SkillTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SelectTab switches the skill tab. Unknown tabs leave the selection as is.
func (s *State) SelectTab(tabs content.SkillTabs, name string) error {
	if !tabs.Has(name) {
		return ErrUnknownTab
	}
	s.mu.Lock()
	s.tab = name
	s.mu.Unlock()
	return nil
}

// Sections is the visitor's section observer.
func (s *State) Sections() *sections.Observer { return s.observer }

// ActiveSection is the section highlighted in the navigation.
func (s *State) ActiveSection() string { return s.observer.Active() }

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *State) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store holds the live sessions.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*State
	ttl      time.Duration
	pages    []sections.Section
	now      func() time.Time
}

// NewStore creates an empty store. Sessions idle for longer than ttl are
// dropped by Sweep.
func NewStore(ttl time.Duration, pages []sections.Section, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*State),
		ttl:      ttl,
		pages:    pages,
		now:      now,
	}
}

// Create starts a session and acquires its section subscriptions.
func (st *Store) Create() *State {
	s := &State{
		ID:       uuid.NewString(),
		tab:      content.AllTab,
		lastSeen: st.now(),
		observer: sections.New(st.pages, nil),
	}
	s.release = s.observer.Observe()

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns a live session and marks it as seen.
func (st *Store) Get(id string) (*State, bool) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if ok {
		s.touch(st.now())
	}
	return s, ok
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep evicts idle sessions and releases their subscriptions. It returns
// the number of sessions removed.
func (st *Store) Sweep() int {
	now := st.now()
	var evicted []*State

	st.mu.Lock()
	for id, s := range st.sessions {
		if s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			evicted = append(evicted, s)
		}
	}
	st.mu.Unlock()

	for _, s := range evicted {
		s.release()
	}
	return len(evicted)
}

// Close releases every session.
func (st *Store) Close() {
	st.mu.Lock()
	all := st.sessions
	st.sessions = make(map[string]*State)
	st.mu.Unlock()

	for _, s := range all {
		s.release()
	}
}
