package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/sections"
)

// confettiEvent is the HX-Trigger event the page script turns into a burst.
const confettiEvent = "confetti"

func (s *Server) handleIndex(c *gin.Context) {
	st := currentSession(c)
	c.HTML(http.StatusOK, "index.html", buildPage(s.content.Site(), st, s.now()))
}

// handleReveal flips the visitor to the revealed hero and asks the browser
// for a confetti burst.
func (s *Server) handleReveal(c *gin.Context) {
	st := currentSession(c)
	effect := reveal.EffectFunc(func(b reveal.Burst) {
		payload, err := json.Marshal(map[string]reveal.Burst{confettiEvent: b})
		if err != nil {
			log.Printf("Error encoding confetti trigger: %v", err)
			return
		}
		c.Header("HX-Trigger", string(payload))
	})
	st.Reveal(effect)
	s.recordEvent(analytics.EventReveal, "")

	c.HTML(http.StatusOK, "hero", buildHero(s.content.Site(), true))
}

// handleSkills switches the skills tab and returns the grid.
func (s *Server) handleSkills(c *gin.Context) {
	st := currentSession(c)
	site := s.content.Site()

	tab := c.Query("tab")
	if err := st.SelectTab(site.Tabs, tab); err != nil {
		c.HTML(HTTPStatus(err), "skills", buildSkills(site, st.SkillTab()))
		return
	}
	s.recordEvent(analytics.EventSkillTab, tab)
	c.HTML(http.StatusOK, "skills", buildSkills(site, tab))
}

// sectionEvents is one batch of scroll and intersection reports from the page.
type sectionEvents struct {
	ScrollY *float64         `json:"scrollY"`
	Entries []sections.Entry `json:"entries"`
}

// handleSectionEvents feeds the visitor's section observer and returns the
// navigation with the active item highlighted.
func (s *Server) handleSectionEvents(c *gin.Context) {
	st := currentSession(c)

	var ev sectionEvents
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.HTML(http.StatusBadRequest, "error", gin.H{"error": "Invalid section events"})
		return
	}

	obs := st.Sections()
	if ev.ScrollY != nil {
		obs.Scroll(*ev.ScrollY)
	}
	if len(ev.Entries) > 0 {
		obs.Intersect(ev.Entries)
	}

	active := obs.Active()
	c.Header("X-Active-Section", active)
	c.HTML(http.StatusOK, "nav", buildNav(active))
}

func (s *Server) recordEvent(kind, detail string) {
	if s.analytics == nil {
		return
	}
	s.goBackground(func() {
		if err := s.analytics.RecordEvent(context.Background(), kind, detail); err != nil {
			log.Printf("Error recording %s event: %v", kind, err)
		}
	})
}
