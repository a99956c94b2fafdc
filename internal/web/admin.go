package web

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zachkp/portfolio/internal/config"
)

const adminCookie = "admin_token"

var errUnauthorized = errors.New("unauthorized")

// adminAuth checks dashboard credentials and issues signed session cookies.
type adminAuth struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func newAdminAuth(cfg config.Admin, now func() time.Time) (*adminAuth, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("admin password hash is not bcrypt: %w", err)
	}

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate admin signing key: %w", err)
		}
		log.Println("Admin sessions are signed with a per-process key; set admin.jwt_secret to keep them across restarts")
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &adminAuth{
		username:     cfg.Username,
		passwordHash: hash,
		secret:       secret,
		ttl:          ttl,
		now:          now,
	}, nil
}

func (a *adminAuth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

func (a *adminAuth) issue() (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   a.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *adminAuth) verify(token string) error {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithSubject(a.username),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", errUnauthorized, err)
	}
	return nil
}

// adminAuthMiddleware sends visitors without a valid admin cookie to the login page.
func (s *Server) adminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || s.admin.verify(token) != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		who := s.analytics.HashIP(c.ClientIP())
		if !s.admin.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			log.Printf("Failed admin login attempt from %s", who)
			c.HTML(HTTPStatus(errUnauthorized), "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		token, err := s.admin.issue()
		if err != nil {
			log.Printf("Error issuing admin token: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Login failed"})
			return
		}
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, token, int(s.admin.ttl.Seconds()), "/admin", "", s.cfg.Mode == gin.ReleaseMode, true)
		log.Printf("Admin login successful from %s", who)
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.analytics.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuthMiddleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{"error": "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats":    stats,
			"sessions": s.sessions.Len(),
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.analytics.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		log.Printf("Admin stats exported by %s", s.analytics.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		s.goBackground(s.cleanupAnalytics)
		c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup initiated"})
	})
}

// cleanupAnalytics drops visitor data older than the retention window.
func (s *Server) cleanupAnalytics() {
	removed, err := s.analytics.Cleanup(context.Background(), s.cfg.Analytics.Retention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: removed %d records older than %s", removed, s.cfg.Analytics.Retention)
	}
}
