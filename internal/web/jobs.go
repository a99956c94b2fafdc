package web

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// ScheduleJobs registers the idle-session sweep and, with analytics on, the
// retention cleanup.
func (s *Server) ScheduleJobs(c *cron.Cron) error {
	if _, err := c.AddFunc(s.cfg.SweepSchedule, s.sweepSessions); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	if s.analytics != nil {
		if _, err := c.AddFunc(s.cfg.Analytics.CleanupSchedule, s.cleanupAnalytics); err != nil {
			return fmt.Errorf("failed to schedule analytics cleanup: %w", err)
		}
	}
	return nil
}

func (s *Server) sweepSessions() {
	if n := s.sessions.Sweep(); n > 0 {
		log.Printf("Session sweep: released %d idle sessions", n)
	}
}
