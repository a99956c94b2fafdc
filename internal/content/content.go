// Package content holds the static records rendered by the portfolio page.
//
// The records are embedded at build time and decoded once. A Site is never
// mutated after Load returns it.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/experience"
)

const (
	dataFile  = "content.yaml"
	aboutFile = "about.md"
)

//go:embed content.yaml about.md
var embedded embed.FS

// Profile is the hero and footer copy.
type Profile struct {
	Name      string `yaml:"name" validate:"required"`
	Welcome   string `yaml:"welcome" validate:"required"`
	Headline  string `yaml:"headline" validate:"required"`
	Tagline   string `yaml:"tagline"`
	GitHub    string `yaml:"github" validate:"omitempty,url"`
	Resume    string `yaml:"resume"`
	Animation string `yaml:"animation"`
}

// Project is one card of the project gallery.
type Project struct {
	Title   string   `yaml:"title" validate:"required"`
	Summary string   `yaml:"summary" validate:"required"`
	Tags    []string `yaml:"tags" validate:"dive,required"`
	Source  string   `yaml:"source" validate:"required,url"`
	Demo    string   `yaml:"demo,omitempty" validate:"omitempty,url"`
	Image   string   `yaml:"image,omitempty"`
}

// Skill is one tile of the skills grid.
type Skill struct {
	Name string `yaml:"name" validate:"required"`
	Icon string `yaml:"icon" validate:"required"`
}

type skillCategory struct {
	Name   string   `yaml:"name" validate:"required"`
	Skills []string `yaml:"skills" validate:"required,min=1,dive,required"`
}

type document struct {
	Profile         Profile             `yaml:"profile"`
	Experience      []experience.Record `yaml:"experience" validate:"dive"`
	Projects        []Project           `yaml:"projects" validate:"dive"`
	Skills          []Skill             `yaml:"skills" validate:"dive"`
	SkillCategories []skillCategory     `yaml:"skill_categories" validate:"dive"`
}

// Site is everything the page renders.
type Site struct {
	Profile    Profile
	Experience []experience.Record
	Projects   []Project
	Skills     []Skill
	Tabs       SkillTabs
	About      About
}

// Skill looks up a skill by name.
func (s *Site) Skill(name string) (Skill, bool) {
	for _, sk := range s.Skills {
		if sk.Name == name {
			return sk, true
		}
	}
	return Skill{}, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default loads the content compiled into the binary.
func Default() (*Site, error) {
	return LoadFS(embedded)
}

// MustDefault is Default for package initialization and tests.
func MustDefault() *Site {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFS reads content.yaml and about.md from fsys.
func LoadFS(fsys fs.FS) (*Site, error) {
	raw, err := fs.ReadFile(fsys, dataFile)
	if err != nil {
		return nil, &LoadError{File: dataFile, Cause: err}
	}
	site, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	aboutRaw, err := fs.ReadFile(fsys, aboutFile)
	if err != nil {
		return nil, &LoadError{File: aboutFile, Cause: err}
	}
	about, err := ParseAbout(aboutRaw)
	if err != nil {
		return nil, &LoadError{File: aboutFile, Cause: err}
	}
	site.About = about
	return site, nil
}

// Parse decodes and validates the records of content.yaml.
func Parse(raw []byte) (*Site, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{File: dataFile, Cause: err}
	}

	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &ValidationError{Message: fmt.Sprintf("field %s failed %q", verrs[0].Namespace(), verrs[0].Tag()), Cause: err}
		}
		return nil, &ValidationError{Message: "invalid content", Cause: err}
	}

	known := make(map[string]bool, len(doc.Skills))
	for _, s := range doc.Skills {
		if known[s.Name] {
			return nil, &ValidationError{Message: fmt.Sprintf("duplicate skill %q", s.Name)}
		}
		known[s.Name] = true
	}

	tabs, err := buildTabs(doc.Skills, doc.SkillCategories, known)
	if err != nil {
		return nil, err
	}

	return &Site{
		Profile:    doc.Profile,
		Experience: doc.Experience,
		Projects:   doc.Projects,
		Skills:     doc.Skills,
		Tabs:       tabs,
	}, nil
}
