// Package experience orders the static experience records for the two-lane timeline.
package experience

import (
	"fmt"
	"strings"
)

// Category tags an experience record as professional or academic work.
// The zero value is Unknown so a record without a category fails validation.
type Category int

const (
	Unknown Category = iota
	Professional
	Academic
)

// Lane is one of the two timeline columns.
type Lane int

const (
	Left Lane = iota
	Right
)

func (l Lane) String() string {
	if l == Right {
		return "right"
	}
	return "left"
}

// Style is everything the page needs to know about a category.
type Style struct {
	Lane   Lane
	Accent string // hex color of the branch, marker and badge
	Label  string
	Badge  string // css classes for the category badge
}

var styles = map[Category]Style{
	Professional: {Lane: Right, Accent: "#FF2E63", Label: "Professional", Badge: "bg-neopop-primary text-white"},
	Academic:     {Lane: Left, Accent: "#08D9D6", Label: "Academic", Badge: "bg-neopop-secondary text-neopop-dark"},
}

// Categories lists every category in interleave order.
var Categories = []Category{Professional, Academic}

// Style returns the lookup entry for c.
func (c Category) Style() Style {
	s, ok := styles[c]
	if !ok {
		panic(fmt.Sprintf("experience: no style for category %d", int(c)))
	}
	return s
}

func (c Category) String() string {
	switch c {
	case Professional:
		return "professional"
	case Academic:
		return "academic"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts the lowercase or label form of a category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "professional":
		return Professional, nil
	case "academic":
		return Academic, nil
	}
	return 0, fmt.Errorf("unknown experience category %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
