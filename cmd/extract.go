package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/pdflinks/internal/extractor"
	"github.com/btraven00/pdflinks/internal/links"
	"github.com/btraven00/pdflinks/internal/pipeline"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [pdf-file]",
	Short: "List every link occurrence found in a PDF",
	Long: `Extract prints each link occurrence in page order without counting or
writing a report. Text links on a page come before its annotation links.

Examples:
  pdflinks extract paper.pdf
  pdflinks extract --format json paper.pdf`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindFlags,
	RunE:    runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().String("format", "human", "output format (human, json)")
	extractCmd.Flags().String("backend", string(extractor.BackendNative), "PDF backend (native, docconv)")
	extractCmd.Flags().Bool("strict", false, "drop links that fail URL or DOI validation")
}

func runExtract(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	found, _, err := pipeline.New(config, logrus.StandardLogger()).Collect()
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", config.InputPath, err)
	}

	return outputLinks(cmd.OutOrStdout(), viper.GetString("format"), found)
}

func outputLinks(w io.Writer, format string, found []links.Link) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if found == nil {
			found = []links.Link{}
		}

		return encoder.Encode(found)
	case "human", "":
		for _, link := range found {
			fmt.Fprintf(w, "%d\t%s\t%s\n", link.Page, link.Type, link.URL)
		}

		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
