// Package main provides the entry point for the brandguard compliance CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "brandguard",
	Short: "Brand compliance engine CLI",
	Long:  "brandguard validates marketing copy against a brand's voice, messaging and content guidelines, producing a weighted compliance score, violations and suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
