package web

import (
	"html/template"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/decor"
	"github.com/Zachkp/portfolio/internal/experience"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/timeline"
)

// PlaceholderImage is shown for projects without an image.
const PlaceholderImage = "/static/img/placeholder.svg"

type navItem struct {
	ID     string
	Label  string
	Ref    string
	Active bool
}

type heroView struct {
	Profile      content.Profile
	Revealed     bool
	Illustration template.HTML
}

type skillTab struct {
	Name   string
	Active bool
}

type skillsView struct {
	Active string
	Tabs   []skillTab
	Skills []content.Skill
	Static bool // tabs switch in the browser instead of calling /skills
}

type card struct {
	experience.Ordered
	Top int
}

type timelineView struct {
	timeline.Layout
	Cards []card
}

type projectView struct {
	content.Project
	ImageSrc string
}

type pageView struct {
	Title    string
	Nav      []navItem
	Hero     heroView
	About    content.About
	Timeline timelineView
	Projects []projectView
	Skills   skillsView
	Profile  content.Profile
	Static   bool // exported snapshot, no fragment endpoints

	// every tab's grid, pre-rendered for the exported snapshot
	SkillPanels []skillsView
}

func buildNav(active string) []navItem {
	items := make([]navItem, 0, len(pageSections))
	for _, sec := range pageSections {
		items = append(items, navItem{ID: sec.ID, Label: sec.Label, Ref: sec.Ref, Active: sec.ID == active})
	}
	return items
}

func buildHero(site *content.Site, revealed bool) heroView {
	return heroView{
		Profile:      site.Profile,
		Revealed:     revealed,
		Illustration: decor.Illustration(),
	}
}

func buildSkills(site *content.Site, active string) skillsView {
	v := skillsView{Active: active}
	for _, name := range site.Tabs.Names() {
		v.Tabs = append(v.Tabs, skillTab{Name: name, Active: name == active})
	}
	for _, name := range site.Tabs.Skills(active) {
		if sk, ok := site.Skill(name); ok {
			v.Skills = append(v.Skills, sk)
		}
	}
	return v
}

// buildSkillPanels renders one grid per tab for pages without a server.
func buildSkillPanels(site *content.Site) []skillsView {
	names := site.Tabs.Names()
	panels := make([]skillsView, 0, len(names))
	for _, name := range names {
		v := buildSkills(site, name)
		v.Static = true
		panels = append(panels, v)
	}
	return panels
}

// buildTimeline orders the experience list and lays it out. now resolves
// "Present" periods.
func buildTimeline(site *content.Site, now time.Time) timelineView {
	ordered := experience.Order(site.Experience, now)
	layout := timeline.Compute(ordered)
	cards := make([]card, len(ordered))
	for i, o := range ordered {
		cards[i] = card{Ordered: o, Top: layout.Markers[i].Top}
	}
	return timelineView{Layout: layout, Cards: cards}
}

func buildProjects(site *content.Site) []projectView {
	out := make([]projectView, 0, len(site.Projects))
	for _, p := range site.Projects {
		img := p.Image
		if img == "" {
			img = PlaceholderImage
		}
		out = append(out, projectView{Project: p, ImageSrc: img})
	}
	return out
}

func buildPage(site *content.Site, st *session.State, now time.Time) pageView {
	return pageView{
		Title:    site.Profile.Name + " | Portfolio",
		Nav:      buildNav(st.ActiveSection()),
		Hero:     buildHero(site, st.Revealed()),
		About:    site.About,
		Timeline: buildTimeline(site, now),
		Projects: buildProjects(site),
		Skills:   buildSkills(site, st.SkillTab()),
		Profile:  site.Profile,
	}
}
