package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/web"
)

var outputDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes the page and its assets as static files",
	Long: `The export command renders the page as a first-time visitor sees it and
copies the static and image directories next to it. The exported page runs
the reveal and navigation highlighting in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadContent()
		if err != nil {
			return err
		}
		srv, err := web.New(web.Options{Config: appConfig, Content: store})
		if err != nil {
			return err
		}
		defer srv.Close()

		if err := srv.Export(outputDir); err != nil {
			return err
		}
		log.Printf("Exported site to %s", outputDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outputDir, "out", "o", "public", "output directory")
}
