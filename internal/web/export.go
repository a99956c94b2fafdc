package web

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/Zachkp/portfolio/internal/session"
)

// Render writes the full page as a first-time visitor sees it. static marks
// the output as a snapshot without the fragment endpoints behind it.
func (s *Server) Render(w io.Writer, static bool) error {
	sessions := session.NewStore(s.cfg.SessionTTL, pageSections, s.now)
	defer sessions.Close()
	page := buildPage(s.content.Site(), sessions.Create(), s.now())
	if static {
		page.Static = true
		page.Skills.Static = true
		page.SkillPanels = buildSkillPanels(s.content.Site())
	}
	if err := s.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Export writes index.html and privacy/index.html into dir and copies the
// static and image directories next to them.
func (s *Server) Export(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", dir, err)
	}

	var buf bytes.Buffer
	if err := s.Render(&buf, true); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write index.html: %w", err)
	}

	buf.Reset()
	if err := s.tmpl.ExecuteTemplate(&buf, "privacy.html", map[string]any{"title": "Privacy Policy"}); err != nil {
		return fmt.Errorf("failed to render privacy page: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "privacy"), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create privacy directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "privacy", "index.html"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write privacy page: %w", err)
	}

	for src, name := range map[string]string{s.cfg.StaticDir: "static", s.cfg.ImagesDir: "images"} {
		if src == "" {
			continue
		}
		if _, err := os.Stat(src); os.IsNotExist(err) {
			log.Printf("Directory '%s' not found, skipping copy", src)
			continue
		}
		if err := copyDir(src, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to copy %s: %w", src, err)
		}
	}
	return nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
