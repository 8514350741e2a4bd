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
	"github.com/btraven00/pdflinks/internal/frequency"
	"github.com/btraven00/pdflinks/internal/pipeline"
	"github.com/btraven00/pdflinks/internal/report"
)

// domainsCmd represents the domains command
var domainsCmd = &cobra.Command{
	Use:   "domains [pdf-file]",
	Short: "Count the domains linked from a PDF without writing a report",
	Long: `The domains command extracts every link from a PDF and prints how often
each domain occurs, most common first. Ties keep the order in which the
domains were first seen.

Examples:
  pdflinks domains paper.pdf
  pdflinks domains --top 10 paper.pdf
  pdflinks domains --format json paper.pdf`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindFlags,
	RunE:    runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)

	domainsCmd.Flags().String("format", "table", "output format (table, json)")
	domainsCmd.Flags().Int("top", 0, "only show the N most common domains (0 shows all)")
	domainsCmd.Flags().String("backend", string(extractor.BackendNative), "PDF backend (native, docconv)")
	domainsCmd.Flags().Bool("strict", false, "drop links that fail URL or DOI validation")
}

func runDomains(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	found, _, err := pipeline.New(config, logrus.StandardLogger()).Collect()
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", config.InputPath, err)
	}

	_, byDomain := pipeline.Count(found)

	return outputDomains(cmd.OutOrStdout(), viper.GetString("format"), byDomain.Top(viper.GetInt("top")))
}

func outputDomains(w io.Writer, format string, entries []frequency.Entry) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if entries == nil {
			entries = []frequency.Entry{}
		}

		return encoder.Encode(entries)
	case "table", "":
		if len(entries) == 0 {
			fmt.Fprintln(w, "No domains found")
			return nil
		}

		report.RenderEntries(w, "Domain", entries)

		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
