// Package reveal implements the one-way "For Recruiters" reveal.
package reveal

import "sync"

// Origin is where the burst starts, as fractions of the viewport.
type Origin struct {
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y"`
}

// Burst is the particle effect configuration handed to the browser.
type Burst struct {
	ParticleCount int    `json:"particleCount"`
	Spread        int    `json:"spread"`
	Origin        Origin `json:"origin"`
}

// DefaultBurst is the confetti fired on every reveal.
var DefaultBurst = Burst{ParticleCount: 100, Spread: 70, Origin: Origin{Y: 0.6}}

// Effect plays a burst. It is fire-and-forget.
type Effect interface {
	Fire(Burst)
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(Burst)

// Fire calls f(b).
func (f EffectFunc) Fire(b Burst) { f(b) }

// Toggle holds the revealed flag. It only ever moves from false to true.
type Toggle struct {
	mu       sync.Mutex
	revealed bool
}

// Revealed reports whether Reveal has been called.
func (t *Toggle) Revealed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed
}

// Reveal fires the burst and sets the flag. Repeated calls fire again; the
// flag stays true. It reports whether this call flipped the flag.
func (t *Toggle) Reveal(effect Effect) (first bool) {
	if effect != nil {
		effect.Fire(DefaultBurst)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	first = !t.revealed
	t.revealed = true
	return first
}
