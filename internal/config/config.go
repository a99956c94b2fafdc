// Package config loads server configuration from defaults, an optional
// config file and PORTFOLIO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Config is the server configuration.
type Config struct {
	Port       int    `mapstructure:"port"`
	Mode       string `mapstructure:"mode"` // gin mode: debug, release or test
	ContentDir string `mapstructure:"content_dir"`
	Watch      bool   `mapstructure:"watch"`
	StaticDir  string `mapstructure:"static_dir"`
	ImagesDir  string `mapstructure:"images_dir"`

	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SweepSchedule string        `mapstructure:"sweep_schedule"`

	Analytics Analytics `mapstructure:"analytics"`
	Admin     Admin     `mapstructure:"admin"`
}

// Analytics configures visitor statistics.
type Analytics struct {
	Enabled         bool          `mapstructure:"enabled"`
	DBPath          string        `mapstructure:"db_path"`
	Salt            string        `mapstructure:"salt"`
	Retention       time.Duration `mapstructure:"retention"`
	CleanupSchedule string        `mapstructure:"cleanup_schedule"`
}

// Admin configures the stats dashboard login.
type Admin struct {
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	PasswordHash string        `mapstructure:"password_hash"` // bcrypt, preferred over Password
	JWTSecret    string        `mapstructure:"jwt_secret"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

// Enabled reports whether admin login is possible at all.
func (a Admin) Enabled() bool {
	return a.Password != "" || a.PasswordHash != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("mode", gin.DebugMode)
	v.SetDefault("content_dir", "")
	v.SetDefault("watch", false)
	v.SetDefault("static_dir", "./static")
	v.SetDefault("images_dir", "./images")
	v.SetDefault("session_ttl", "30m")
	v.SetDefault("sweep_schedule", "@every 5m")

	v.SetDefault("analytics.enabled", true)
	v.SetDefault("analytics.db_path", "portfolio.db")
	v.SetDefault("analytics.salt", "")
	v.SetDefault("analytics.retention", "8760h")
	v.SetDefault("analytics.cleanup_schedule", "@daily")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.password_hash", "")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.session_ttl", "24h")
}

// Load reads the configuration. path may be empty, in which case
// ./config.yaml is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// plain names kept for hosts that only set these
	_ = v.BindEnv("port", "PORTFOLIO_PORT", "PORT")
	_ = v.BindEnv("admin.username", "PORTFOLIO_ADMIN_USERNAME", "ADMIN_USERNAME")
	_ = v.BindEnv("admin.password", "PORTFOLIO_ADMIN_PASSWORD", "ADMIN_PASSWORD")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	switch c.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config error: 'mode' must be debug, release or test, got %q", c.Mode)
	}
	if c.Watch && c.ContentDir == "" {
		return fmt.Errorf("config error: 'watch' needs 'content_dir'")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config error: 'session_ttl' must be positive")
	}
	if err := checkSchedule("sweep_schedule", c.SweepSchedule); err != nil {
		return err
	}
	if c.Analytics.Enabled {
		if c.Analytics.DBPath == "" {
			return fmt.Errorf("config error: 'analytics.db_path' is required when analytics is enabled")
		}
		if c.Analytics.Retention <= 0 {
			return fmt.Errorf("config error: 'analytics.retention' must be positive")
		}
		if err := checkSchedule("analytics.cleanup_schedule", c.Analytics.CleanupSchedule); err != nil {
			return err
		}
	}
	if c.Admin.Enabled() && !c.Analytics.Enabled {
		return fmt.Errorf("config error: admin login needs analytics enabled")
	}
	return nil
}

func checkSchedule(key, spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("config error: '%s' is not a valid schedule: %w", key, err)
	}
	return nil
}
