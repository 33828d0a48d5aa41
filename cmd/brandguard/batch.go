package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/brandguard/internal/compliance"
	"github.com/jonathan/brandguard/internal/types"
)

var batchFlags struct {
	brandPath   string
	itemsPath   string
	concurrency int
	contentType string
	jsonOutput  bool
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate a batch of content items concurrently",
	Long:  "Reads a JSON array of {id, content} items and validates each against the brand. One item's failure never aborts the rest.",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchFlags.brandPath, "brand", "", "path to brand snapshot JSON file")
	f.StringVar(&batchFlags.itemsPath, "items", "", "path to JSON file with [{id, content}] entries")
	f.IntVar(&batchFlags.concurrency, "concurrency", compliance.DefaultMaxConcurrency, "max concurrent validations (1-16)")
	f.StringVar(&batchFlags.contentType, "content-type", "", "content type hint applied to every item")
	f.BoolVar(&batchFlags.jsonOutput, "json", false, "emit results as JSON")
	_ = batchCmd.MarkFlagRequired("brand")
	_ = batchCmd.MarkFlagRequired("items")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	brand, err := loadBrand(batchFlags.brandPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(batchFlags.itemsPath)
	if err != nil {
		return fmt.Errorf("failed to read items file %s: %w", batchFlags.itemsPath, err)
	}
	var items []types.BatchItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse items JSON: %w", err)
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	validator := compliance.NewValidator(compliance.Options{})
	results, err := validator.BatchValidate(cmd.Context(), items, brand, &types.ComplianceConfig{
		ContentType:    batchFlags.contentType,
		MaxConcurrency: batchFlags.concurrency,
	})
	if err != nil {
		return err
	}

	if batchFlags.jsonOutput {
		return printJSON(results)
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Error != "":
			failed++
			fmt.Printf("%-20s ERROR %s\n", r.ID, r.Error)
		case r.Result.IsCompliant:
			fmt.Printf("%-20s PASS  score %.0f\n", r.ID, r.Result.Score*100)
		default:
			failed++
			fmt.Printf("%-20s FAIL  score %.0f, %d violations\n", r.ID, r.Result.Score*100, len(r.Result.Violations))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d items failed validation", failed, len(results))
	}
	return nil
}
