package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/experience"
)

const minimalYAML = `
profile:
  name: Test Person
  welcome: Hi
  headline: Hire me
experience:
  - title: Engineer
    organization: Acme
    period: Jan 2020 - Present
    category: professional
    summary: Built things.
projects:
  - title: Thing
    summary: A thing.
    tags: [Go]
    source: https://example.com/thing
skills:
  - {name: Go, icon: logos:go}
  - {name: SQL, icon: carbon:sql}
skill_categories:
  - name: Languages
    skills: [Go]
`

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Neel Gandhi", site.Profile.Name)
	assert.Len(t, site.Experience, 5)
	assert.Len(t, site.Projects, 3)
	assert.Equal(t, "About Me", site.About.Title)
	assert.Contains(t, string(site.About.Body), `<h2 id="who-am-i">Who Am I?</h2>`)
	assert.Equal(t, []string{"Problem Solving", "Clean Code", "Learning", "Teaching"}, site.About.Loves)

	// every embedded period parses
	for _, r := range site.Experience {
		_, ok := experience.EndDate(r.Period, time.Now())
		assert.True(t, ok, r.Period)
	}
}

func TestParse_SkillTabs(t *testing.T) {
	site, err := Parse([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{AllTab, "Languages"}, site.Tabs.Names())
	assert.Equal(t, []string{"Go", "SQL"}, site.Tabs.Skills(AllTab))
	assert.Equal(t, []string{"Go"}, site.Tabs.Skills("Languages"))
	assert.True(t, site.Tabs.Has("Languages"))
	assert.False(t, site.Tabs.Has("Cooking"))
	assert.Nil(t, site.Tabs.Skills("Cooking"))

	// callers cannot mutate the mapping
	names := site.Tabs.Skills(AllTab)
	names[0] = "changed"
	assert.Equal(t, "Go", site.Tabs.Skills(AllTab)[0])

	sk, ok := site.Skill("SQL")
	require.True(t, ok)
	assert.Equal(t, "carbon:sql", sk.Icon)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantMsg string
		asLoad  bool
	}{
		{
			name:    "unknown category",
			mutate:  func(s string) string { return strings.Replace(s, "category: professional", "category: hobby", 1) },
			wantMsg: "unknown experience category",
			asLoad:  true,
		},
		{
			name:    "missing category",
			mutate:  func(s string) string { return strings.Replace(s, "    category: professional\n", "", 1) },
			wantMsg: "Category",
		},
		{
			name:    "unknown field",
			mutate:  func(s string) string { return strings.Replace(s, "welcome: Hi", "welcome: Hi\n  shoe_size: 11", 1) },
			wantMsg: "shoe_size",
			asLoad:  true,
		},
		{
			name:    "missing project source",
			mutate:  func(s string) string { return strings.Replace(s, "source: https://example.com/thing", "", 1) },
			wantMsg: "Source",
		},
		{
			name:    "bad demo url",
			mutate:  func(s string) string { return strings.Replace(s, "tags: [Go]", "tags: [Go]\n    demo: not a url", 1) },
			wantMsg: "Demo",
		},
		{
			name:    "unknown skill in category",
			mutate:  func(s string) string { return strings.Replace(s, "skills: [Go]", "skills: [Rust]", 1) },
			wantMsg: `unknown skill "Rust"`,
		},
		{
			name: "duplicate category",
			mutate: func(s string) string {
				return s + "  - name: Languages\n    skills: [SQL]\n"
			},
			wantMsg: "duplicate skill category",
		},
		{
			name: "category named All",
			mutate: func(s string) string {
				return s + "  - name: All\n    skills: [SQL]\n"
			},
			wantMsg: "duplicate skill category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(minimalYAML)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			if tt.asLoad {
				var le *LoadError
				assert.True(t, errors.As(err, &le))
			} else {
				var ve *ValidationError
				assert.True(t, errors.As(err, &ve))
			}
		})
	}
}

func TestLoadFS_MissingAbout(t *testing.T) {
	fsys := fstest.MapFS{"content.yaml": {Data: []byte(minimalYAML)}}
	_, err := LoadFS(fsys)
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "about.md", le.File)
}

func TestParseAbout_WithoutFrontMatter(t *testing.T) {
	about, err := ParseAbout([]byte("Just **text**."))
	require.NoError(t, err)
	assert.Equal(t, "About Me", about.Title)
	assert.Contains(t, string(about.Body), "<strong>text</strong>")
}

func writeContent(t *testing.T, dir, name string) {
	t.Helper()
	yml := strings.Replace(minimalYAML, "Test Person", name, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content.yaml"), []byte(yml), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "about.md"), []byte("---\ntitle: About\n---\nhello"), 0o644))
}

func TestStore_Reload(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "First")

	st := NewStore(MustDefault())
	require.NoError(t, st.Reload(dir))
	assert.Equal(t, "First", st.Site().Profile.Name)

	// broken content keeps the previous snapshot
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content.yaml"), []byte("profile: ["), 0o644))
	require.Error(t, st.Reload(dir))
	assert.Equal(t, "First", st.Site().Profile.Name)
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "Before")

	st := NewStore(MustDefault())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- st.Watch(ctx, dir) }()

	// give the watcher a moment to register
	time.Sleep(100 * time.Millisecond)
	writeContent(t, dir, "After")

	assert.Eventually(t, func() bool {
		return st.Site().Profile.Name == "After"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
