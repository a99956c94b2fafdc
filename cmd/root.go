package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

var cfgFile string
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio: a scroll-tracked
navigation, an experience timeline, a projects gallery and a skills grid.
It can also export the page as static files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "directory holding content.yaml and about.md (default: embedded content)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

var contentDir string

// loadContent reads content from the --content flag, then the configured
// directory, then the embedded default.
func loadContent() (*content.Store, error) {
	dir := contentDir
	if dir == "" {
		dir = appConfig.ContentDir
	}
	if dir == "" {
		site, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("embedded content is invalid: %w", err)
		}
		return content.NewStore(site), nil
	}
	appConfig.ContentDir = dir
	site, err := content.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	return content.NewStore(site), nil
}
