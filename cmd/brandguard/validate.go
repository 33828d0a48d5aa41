package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/brandguard/internal/compliance"
	"github.com/jonathan/brandguard/internal/config"
	"github.com/jonathan/brandguard/internal/observability"
	"github.com/jonathan/brandguard/internal/types"
)

var validateFlags struct {
	configPath  string
	brandPath   string
	contentPath string
	contentType string
	audience    string
	noVoice     bool
	noTerms     bool
	noMessaging bool
	jsonOutput  bool
	verbose     bool
}

var validateCmd = &cobra.Command{
	Use:   "validate [content]",
	Short: "Validate a piece of content against a brand's guidelines",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateFlags.configPath, "config", "", "path to JSON config file")
	f.StringVar(&validateFlags.brandPath, "brand", "", "path to brand snapshot JSON file")
	f.StringVar(&validateFlags.contentPath, "content", "", "path to content file ('-' for stdin)")
	f.StringVar(&validateFlags.contentType, "content-type", "", "content type hint (e.g. email)")
	f.StringVar(&validateFlags.audience, "audience", "", "target audience hint")
	f.BoolVar(&validateFlags.noVoice, "no-voice", false, "disable tone/voice checks")
	f.BoolVar(&validateFlags.noTerms, "no-terms", false, "disable restricted-term checks")
	f.BoolVar(&validateFlags.noMessaging, "no-messaging", false, "disable key-message checks")
	f.BoolVar(&validateFlags.jsonOutput, "json", false, "emit the result as JSON")
	f.BoolVar(&validateFlags.verbose, "verbose", false, "print detailed analysis information")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(validateFlags.configPath, validateFlags.brandPath, validateFlags.contentPath)
	if err != nil {
		return err
	}

	brand, err := loadBrand(cfg.Brand)
	if err != nil {
		return err
	}

	inline := ""
	if len(args) == 1 {
		inline = args[0]
	}
	content, err := loadContent(inline, cfg.Content)
	if err != nil {
		return err
	}

	validator := compliance.NewValidator(compliance.Options{Timeout: cfg.Timeout()})
	result, err := validator.ValidateContent(cmd.Context(), content, brand, complianceConfig(cfg))
	if err != nil {
		return err
	}

	if validateFlags.jsonOutput || cfg.OutputFormat == "json" {
		return printJSON(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose || validateFlags.verbose {
		printer.PrintBrandSnapshot(brand)
		printer.PrintFeatureBundle(result.Features)
	}
	printer.PrintComplianceResult(result)

	if !result.IsCompliant {
		return fmt.Errorf("content is not compliant (%d violations)", len(result.Violations))
	}
	return nil
}

// resolveConfig merges the optional config file with CLI flags; flags win.
func resolveConfig(configPath, brandPath, contentPath string) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := config.Config{
		Brand:          brandPath,
		Content:        contentPath,
		TargetAudience: validateFlags.audience,
		ContentType:    validateFlags.contentType,
		Verbose:        validateFlags.verbose,
	}
	merged := flags.MergeWithDefaults(*cfg)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// complianceConfig translates the CLI config and flags into the engine's
// evaluation options.
func complianceConfig(cfg *config.Config) *types.ComplianceConfig {
	out := &types.ComplianceConfig{
		EnforceBrandVoice:    cfg.EnforceBrandVoice,
		CheckRestrictedTerms: cfg.CheckRestrictedTerms,
		ValidateMessaging:    cfg.ValidateMessaging,
		TargetAudience:       cfg.TargetAudience,
		ContentType:          cfg.ContentType,
		MaxConcurrency:       cfg.MaxConcurrency,
		Timeout:              cfg.Timeout(),
	}
	off := false
	if validateFlags.noVoice {
		out.EnforceBrandVoice = &off
	}
	if validateFlags.noTerms {
		out.CheckRestrictedTerms = &off
	}
	if validateFlags.noMessaging {
		out.ValidateMessaging = &off
	}
	return out
}
