// Package types provides type definitions for structured data used throughout the brandguard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// MessagingFramework holds a brand's declared key messages and the terms it
// never wants to appear in its content.
type MessagingFramework struct {
	KeyMessages     []string          `json:"key_messages,omitempty"`
	RestrictedTerms []string          `json:"restricted_terms,omitempty"`
	Replacements    map[string]string `json:"replacements,omitempty"` // restricted term -> preferred substitute
}

// VoiceAnalysis is the latest voice-analysis record for a brand, produced
// upstream and treated as read-only by the engine.
type VoiceAnalysis struct {
	PrimaryTone    string   `json:"primary_tone"`
	SecondaryTones []string `json:"secondary_tones,omitempty"`
	TargetGrade    float64  `json:"target_grade,omitempty"` // max acceptable reading grade, 0 = unset
}

// BrandSnapshot is the read-only view of a brand's configuration used for a
// single evaluation. Sourced from the Brand Configuration Repository.
type BrandSnapshot struct {
	ID                 string             `json:"id" validate:"required"`
	Name               string             `json:"name" validate:"required"`
	Industry           string             `json:"industry,omitempty"`
	Version            string             `json:"version,omitempty"`
	Guidelines         []Guideline        `json:"guidelines,omitempty" validate:"dive"`
	MessagingFramework MessagingFramework `json:"messaging_framework"`
	VoiceAnalysis      *VoiceAnalysis     `json:"voice_analysis,omitempty"`
	TrackedKeywords    []string           `json:"tracked_keywords,omitempty"`
}

// GuidelineVersion returns the snapshot's version if set, otherwise a content
// hash over the guideline set. Used as the compiled-rule cache key so that a
// stale snapshot never serves another version's rules.
func (b *BrandSnapshot) GuidelineVersion() string {
	if b.Version != "" {
		return b.Version
	}
	h := sha256.New()
	ids := make([]string, 0, len(b.Guidelines))
	byID := make(map[string]Guideline, len(b.Guidelines))
	for _, g := range b.Guidelines {
		ids = append(ids, g.ID)
		byID[g.ID] = g
	}
	sort.Strings(ids)
	for _, id := range ids {
		g := byID[id]
		fmt.Fprintf(h, "%s|%s|%s|%d|%s\n", g.ID, g.Category, g.RuleType, g.Priority, g.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
