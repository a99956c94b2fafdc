// Package web serves the portfolio page and its HTMX fragments.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/decor"
	"github.com/Zachkp/portfolio/internal/sections"
	"github.com/Zachkp/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page sections in page order. Labels default to the title-cased id.
var pageSections = newSections(
	"home", "",
	"about", "",
	"experience", "",
	"projects", "",
	"skills", "",
	"survey", "Fun Survey",
)

func newSections(pairs ...string) []sections.Section {
	title := cases.Title(language.English)
	out := make([]sections.Section, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		id, label := pairs[i], pairs[i+1]
		if label == "" {
			label = title.String(id)
		}
		out = append(out, sections.Section{ID: id, Label: label, Ref: "section-" + id})
	}
	return out
}

// Options wires a Server.
type Options struct {
	Config    *config.Config
	Content   *content.Store
	Analytics *analytics.Store // nil disables tracking and the admin pages
	Now       func() time.Time
}

// Server is the HTTP front of the portfolio.
type Server struct {
	cfg       *config.Config
	content   *content.Store
	sessions  *session.Store
	analytics *analytics.Store
	admin     *adminAuth
	now       func() time.Time
	engine    *gin.Engine
	tmpl      *template.Template

	background sync.WaitGroup
}

// New builds the gin engine and registers every route.
func New(opts Options) (*Server, error) {
	if opts.Config == nil || opts.Content == nil {
		return nil, fmt.Errorf("web: config and content are required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       opts.Config,
		content:   opts.Content,
		sessions:  session.NewStore(opts.Config.SessionTTL, pageSections, now),
		analytics: opts.Analytics,
		now:       now,
		tmpl:      tmpl,
	}

	if s.analytics != nil && opts.Config.Admin.Enabled() {
		s.admin, err = newAdminAuth(opts.Config.Admin, now)
		if err != nil {
			return nil, err
		}
	}

	gin.SetMode(opts.Config.Mode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	s.engine = r
	s.routes()
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"icon":   decor.Icon,
		"lottie": decor.Lottie,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) routes() {
	r := s.engine
	if s.cfg.StaticDir != "" {
		r.Static("/static", s.cfg.StaticDir)
	}
	if s.cfg.ImagesDir != "" {
		r.Static("/images", s.cfg.ImagesDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{"title": "Privacy Policy"})
	})

	page := r.Group("/")
	page.Use(s.sessionMiddleware())
	if s.analytics != nil {
		page.Use(s.visitorTrackingMiddleware())
	}
	page.GET("/", s.handleIndex)
	page.POST("/reveal", s.handleReveal)
	page.GET("/skills", s.handleSkills)
	page.POST("/sections/events", s.handleSectionEvents)

	if s.admin != nil {
		s.setupAdminRoutes(r)
	}
}

// Handler exposes the engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Sessions exposes the visitor session store.
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

// Serve listens on the configured port until ctx is done, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving portfolio on http://localhost%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

// Close waits for background writes and releases every visitor session.
func (s *Server) Close() {
	s.background.Wait()
	s.sessions.Close()
}

// goBackground runs fn without blocking the request, like the visitor
// tracking writes.
func (s *Server) goBackground(fn func()) {
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		fn()
	}()
}
