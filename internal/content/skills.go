package content

import "fmt"

// AllTab is the synthetic tab holding every skill.
const AllTab = "All"

// SkillTabs maps a tab name to the skill names it shows.
type SkillTabs struct {
	names  []string
	byName map[string][]string
}

// buildTabs derives the tab mapping once. "All" lists every skill in
// declaration order and comes first.
func buildTabs(skills []Skill, categories []skillCategory, known map[string]bool) (SkillTabs, error) {
	all := make([]string, 0, len(skills))
	for _, s := range skills {
		all = append(all, s.Name)
	}

	tabs := SkillTabs{
		names:  []string{AllTab},
		byName: map[string][]string{AllTab: all},
	}
	for _, c := range categories {
		if _, dup := tabs.byName[c.Name]; dup {
			return SkillTabs{}, &ValidationError{Message: fmt.Sprintf("duplicate skill category %q", c.Name)}
		}
		for _, name := range c.Skills {
			if !known[name] {
				return SkillTabs{}, &ValidationError{Message: fmt.Sprintf("skill category %q references unknown skill %q", c.Name, name)}
			}
		}
		tabs.names = append(tabs.names, c.Name)
		tabs.byName[c.Name] = append([]string(nil), c.Skills...)
	}
	return tabs, nil
}

// Names returns the tab names in display order.
func (t SkillTabs) Names() []string {
	return append([]string(nil), t.names...)
}

// Has reports whether name is a tab.
func (t SkillTabs) Has(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Skills returns the skill names shown under a tab, nil for unknown tabs.
func (t SkillTabs) Skills(name string) []string {
	s, ok := t.byName[name]
	if !ok {
		return nil
	}
	return append([]string(nil), s...)
}
