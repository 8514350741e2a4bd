package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/pdflinks/internal/links"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the link patterns and test them against sample text",
	Long: `Display the text patterns used to find links in page text, in the order
they are applied. With --test, run the patterns over a sample string and show
what each one would extract from it.

Examples:
  pdflinks patterns
  pdflinks patterns --test "see www.example.com/page and https://doi.org/10.1000/182"`,
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE:    runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().StringP("test", "t", "", "test pattern matching for a sample text")
}

func runPatterns(cmd *cobra.Command, args []string) error {
	classifier := links.NewClassifier()
	w := cmd.OutOrStdout()

	if sample := viper.GetString("test"); sample != "" {
		testPatterns(w, classifier, sample)
		return nil
	}

	listPatterns(w, classifier)

	return nil
}

func listPatterns(w io.Writer, classifier *links.Classifier) {
	patterns := classifier.Patterns()

	fmt.Fprintf(w, "=== Text Patterns (%d) ===\n", len(patterns))

	for i, pattern := range patterns {
		fmt.Fprintf(w, "\n%d. %s (%s)\n", i+1, pattern.Name, pattern.Type)
		fmt.Fprintf(w, "   Description: %s\n", pattern.Description)
		fmt.Fprintf(w, "   Regex:       %s\n", pattern.Regex)
		fmt.Fprintf(w, "   Min length:  %d\n", pattern.MinLength+1)

		for _, example := range pattern.Examples {
			fmt.Fprintf(w, "   Example:     %s\n", example)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Annotation URIs are accepted without pattern matching when longer than",
		links.MinURLLength, "characters.")
}

func testPatterns(w io.Writer, classifier *links.Classifier, sample string) {
	fmt.Fprintf(w, "=== Testing Patterns for: %q ===\n", sample)

	found := classifier.ExtractFromText(sample, 1)
	if len(found) == 0 {
		fmt.Fprintln(w, "\nNo links found")
		return
	}

	fmt.Fprintf(w, "\nFound %d link(s):\n", len(found))

	for i, link := range found {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, link.Type, link.URL)
		if link.Raw != link.URL {
			fmt.Fprintf(w, "   matched: %s\n", link.Raw)
		}

		fmt.Fprintf(w, "   domain:  %s\n", links.ResolveDomain(link.URL))
		fmt.Fprintf(w, "   valid:   %t\n", links.IsValid(link))
	}
}
