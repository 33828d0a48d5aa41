package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brandguard/internal/analysis"
	"github.com/jonathan/brandguard/internal/observability"
)

var analyzeFlags struct {
	brandPath   string
	contentPath string
	jsonOutput  bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [content]",
	Short: "Run the linguistic analyzer without rule evaluation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.brandPath, "brand", "", "path to brand snapshot JSON file")
	f.StringVar(&analyzeFlags.contentPath, "content", "", "path to content file ('-' for stdin)")
	f.BoolVar(&analyzeFlags.jsonOutput, "json", false, "emit the feature bundle as JSON")
	_ = analyzeCmd.MarkFlagRequired("brand")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	brand, err := loadBrand(analyzeFlags.brandPath)
	if err != nil {
		return err
	}

	inline := ""
	if len(args) == 1 {
		inline = args[0]
	}
	content, err := loadContent(inline, analyzeFlags.contentPath)
	if err != nil {
		return err
	}

	bundle := analysis.AnalyzeAll(brand, content)
	if analyzeFlags.jsonOutput {
		return printJSON(bundle)
	}

	observability.NewPrinter(os.Stdout).PrintFeatureBundle(bundle)
	return nil
}
