package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/pdflinks/internal/extractor"
	"github.com/btraven00/pdflinks/internal/pipeline"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report [pdf-file]",
	Short: "Write a link and domain frequency report for a PDF",
	Long: `Report scans every page of a PDF for doi.org links, http(s) and www. URLs,
and link annotations, then writes a Word document listing each link and
each domain with its number of occurrences, most frequent first.

The input defaults to example.pdf and the report to example.docx. Both can
also be set in the config file (input, output) or the environment
(PDFLINKS_INPUT, PDFLINKS_OUTPUT).

Examples:
  pdflinks report paper.pdf
  pdflinks report -o reports/paper-links.docx paper.pdf
  pdflinks report --summary 10 --strict paper.pdf`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindFlags,
	RunE:    runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	viper.SetDefault("input", pipeline.DefaultInputPath)

	reportCmd.Flags().StringP("output", "o", pipeline.DefaultOutputPath, "path of the generated .docx report")
	reportCmd.Flags().String("backend", string(extractor.BackendNative), "PDF backend (native, docconv)")
	reportCmd.Flags().Bool("strict", false, "drop links that fail URL or DOI validation")
	reportCmd.Flags().Int("summary", 0, "also print the N most frequent links and domains")
}

func runReport(cmd *cobra.Command, args []string) error {
	config, err := loadConfig(args)
	if err != nil {
		return err
	}

	runner := pipeline.New(config, logrus.StandardLogger())
	runner.Out = cmd.OutOrStdout()

	_, err = runner.Run()

	return err
}

// loadConfig merges the positional input with viper settings.
func loadConfig(args []string) (pipeline.Config, error) {
	backend, err := extractor.ParseBackend(viper.GetString("backend"))
	if err != nil {
		return pipeline.Config{}, err
	}

	config := pipeline.DefaultConfig()
	config.Backend = backend
	config.Strict = viper.GetBool("strict")
	config.SummaryTop = viper.GetInt("summary")

	if input := viper.GetString("input"); input != "" {
		config.InputPath = input
	}

	if output := viper.GetString("output"); output != "" {
		config.OutputPath = output
	}

	if len(args) > 0 {
		config.InputPath = args[0]
	}

	return config, nil
}
