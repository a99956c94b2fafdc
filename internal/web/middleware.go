package web

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/session"
)

const (
	sessionCookie = "portfolio_session"
	sessionKey    = "session"
)

// sessionMiddleware attaches the visitor's UI state, starting a new session
// when the cookie is missing or expired.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var st *session.State
		if id, err := c.Cookie(sessionCookie); err == nil {
			st, _ = s.sessions.Get(id)
		}
		if st == nil {
			st = s.sessions.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, st.ID, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
		}
		c.Set(sessionKey, st)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.State {
	return c.MustGet(sessionKey).(*session.State)
}

// paths never counted as page views
var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
}

// visitorTrackingMiddleware records page views with hashed IPs. Fragment
// requests and visitors sending DNT are not recorded.
func (s *Server) visitorTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.GetHeader("HX-Request") == "true" {
			c.Next()
			return
		}
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		s.goBackground(func() {
			if err := s.analytics.RecordVisit(context.Background(), ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		})
		c.Next()
	}
}
