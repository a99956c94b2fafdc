package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/web"
)

var (
	serverPort int
	watch      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio",
	Long: `The serve command starts the web server. With --watch it reloads the
content directory whenever a file in it changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			appConfig.Port = serverPort
		}
		if cmd.Flags().Changed("watch") {
			appConfig.Watch = watch
		}

		store, err := loadContent()
		if err != nil {
			return err
		}
		if err := appConfig.Validate(); err != nil {
			return err
		}

		var stats *analytics.Store
		if appConfig.Analytics.Enabled {
			stats, err = analytics.Open(appConfig.Analytics.DBPath, analytics.WithSalt(appConfig.Analytics.Salt))
			if err != nil {
				return fmt.Errorf("failed to open analytics database: %w", err)
			}
			defer stats.Close()
		}
		if !appConfig.Admin.Enabled() {
			log.Println("Admin password not set; the stats dashboard is disabled")
		}

		srv, err := web.New(web.Options{
			Config:    appConfig,
			Content:   store,
			Analytics: stats,
		})
		if err != nil {
			return err
		}
		defer srv.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		jobs := cron.New()
		if err := srv.ScheduleJobs(jobs); err != nil {
			return err
		}
		jobs.Start()
		defer jobs.Stop()

		if appConfig.Watch {
			go func() {
				if err := store.Watch(ctx, appConfig.ContentDir); err != nil {
					log.Printf("Content watcher stopped: %v", err)
				}
			}()
		}

		return srv.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&watch, "watch", false, "reload content when files change")
}
