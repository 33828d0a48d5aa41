// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/brandguard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBrandSnapshot outputs a human-readable summary of the loaded brand.
func (p *Printer) PrintBrandSnapshot(brand *types.BrandSnapshot) {
	if brand == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Brand:      %s\n", brand.Name))
	if brand.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry:   %s\n", brand.Industry))
	}
	sb.WriteString(fmt.Sprintf("Guidelines: %d\n", len(brand.Guidelines)))
	sb.WriteString(fmt.Sprintf("Messages:   %d\n", len(brand.MessagingFramework.KeyMessages)))
	if brand.VoiceAnalysis != nil && brand.VoiceAnalysis.PrimaryTone != "" {
		sb.WriteString(fmt.Sprintf("Voice:      %s\n", brand.VoiceAnalysis.PrimaryTone))
	}

	p.printBox("BRAND SNAPSHOT", strings.TrimRight(sb.String(), "\n"))
}

// PrintFeatureBundle outputs the key linguistic features of analyzed content.
func (p *Printer) PrintFeatureBundle(bundle *types.FeatureBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tone:        %s (%.0f%% confidence)\n",
		bundle.Tone.PrimaryTone, bundle.Tone.ToneConfidence*100))
	sb.WriteString(fmt.Sprintf("Sentiment:   %+.2f\n", bundle.Sentiment.OverallScore))
	sb.WriteString(fmt.Sprintf("Readability: grade %s (%.1f)\n",
		bundle.Readability.Grade, bundle.Readability.GradeLevel))
	sb.WriteString(fmt.Sprintf("Formality:   %s\n", bundle.FormalityLevel))
	if len(bundle.Emotion.PrimaryEmotions) > 0 {
		emotions := bundle.Emotion.PrimaryEmotions
		if len(emotions) > maxItemsToShow {
			emotions = emotions[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("Emotions:    %s\n", strings.Join(emotions, ", ")))
	}
	if len(bundle.Degraded) > 0 {
		sb.WriteString(fmt.Sprintf("Degraded:    %s\n", strings.Join(bundle.Degraded, ", ")))
	}

	p.printBox("CONTENT ANALYSIS", strings.TrimRight(sb.String(), "\n"))
}

// PrintComplianceResult outputs the validation verdict with its violations
// and suggestions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintComplianceResult(result *types.ComplianceResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	verdict := "COMPLIANT"
	if !result.IsCompliant {
		verdict = "NOT COMPLIANT"
	}
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Score:      %.0f/100\n", result.Score*100))
	sb.WriteString(fmt.Sprintf("Alignment:  %.0f/100\n", result.BrandAlignmentScore*100))
	sb.WriteString(fmt.Sprintf("Violations: %d\n", len(result.Violations)))
	if len(result.RuleConflicts) > 0 {
		sb.WriteString(fmt.Sprintf("Conflicts:  %d\n", len(result.RuleConflicts)))
	}
	sb.WriteString(fmt.Sprintf("Duration:   %s", result.Processing.Duration.Round(time.Microsecond)))

	p.printBox("COMPLIANCE RESULT", sb.String())

	for i, v := range result.Violations {
		if i >= maxItemsToShow {
			fmt.Fprintf(p.out, "  ... and %d more\n", len(result.Violations)-maxItemsToShow)
			break
		}
		fmt.Fprintf(p.out, "  [%s] %s: %s\n", v.Severity, v.Type, v.Message)
		if v.Suggestion != "" {
			fmt.Fprintf(p.out, "        suggestion: %s\n", v.Suggestion)
		}
	}
	for _, s := range result.Suggestions {
		fmt.Fprintf(p.out, "  (suggestion) %s\n", s)
	}
}
