package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/pdflinks/internal/links"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <url-or-doi>",
	Short: "Validate a single URL or DOI link and show its domain",
	Long: `Check runs the syntactic URL and DOI validators on a value and resolves
the domain it would be counted under. Nothing is fetched over the network.

Examples:
  pdflinks check https://doi.org/10.1038/s41467-021-23778-6
  pdflinks check www.example.com/page`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindFlags,
	RunE:    runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().String("format", "human", "output format (human, json)")
}

// checkResult is the outcome of validating one value.
type checkResult struct {
	Input    string `json:"input"`
	Domain   string `json:"domain"`
	ValidURL bool   `json:"valid_url"`
	ValidDOI bool   `json:"valid_doi"`
}

func checkValue(value string) checkResult {
	value = strings.TrimSpace(value)

	return checkResult{
		Input:    value,
		Domain:   links.ResolveDomain(value),
		ValidURL: links.IsValidURL(value),
		ValidDOI: links.IsValidDOI(value),
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	return outputCheck(cmd.OutOrStdout(), viper.GetString("format"), checkValue(args[0]))
}

func outputCheck(w io.Writer, format string, result checkResult) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	case "human", "":
		fmt.Fprintf(w, "Input:     %s\n", result.Input)
		fmt.Fprintf(w, "Domain:    %s\n", result.Domain)
		fmt.Fprintf(w, "Valid URL: %t\n", result.ValidURL)
		fmt.Fprintf(w, "Valid DOI: %t\n", result.ValidDOI)

		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
