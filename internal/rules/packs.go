// Package rules compiles brand guidelines into evaluable rule sets.
package rules

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/brandguard/internal/types"
)

//go:embed packs/*.yaml
var packFS embed.FS

// pack is the on-disk shape of a built-in rule pack.
type pack struct {
	Industry   string            `yaml:"industry"`
	Guidelines []types.Guideline `yaml:"guidelines"`
}

var (
	packsOnce     sync.Once
	packsErr      error
	globalPack    []types.Guideline
	industryPacks map[string][]types.Guideline
)

// loadPacks parses every embedded YAML pack exactly once.
func loadPacks() error {
	packsOnce.Do(func() {
		industryPacks = make(map[string][]types.Guideline)

		entries, err := packFS.ReadDir("packs")
		if err != nil {
			packsErr = fmt.Errorf("failed to read embedded rule packs: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := packFS.ReadFile("packs/" + entry.Name())
			if err != nil {
				packsErr = fmt.Errorf("failed to read rule pack %s: %w", entry.Name(), err)
				return
			}
			var p pack
			if err := yaml.Unmarshal(data, &p); err != nil {
				packsErr = fmt.Errorf("failed to parse rule pack %s: %w", entry.Name(), err)
				return
			}
			if p.Industry == "" {
				globalPack = append(globalPack, p.Guidelines...)
				continue
			}
			industryPacks[p.Industry] = append(industryPacks[p.Industry], p.Guidelines...)
		}
	})
	return packsErr
}

// GlobalRules returns the built-in rules injected into every brand's rule
// set, regardless of industry.
func GlobalRules() ([]types.Guideline, error) {
	if err := loadPacks(); err != nil {
		return nil, err
	}
	out := make([]types.Guideline, len(globalPack))
	copy(out, globalPack)
	return out, nil
}

// IndustryRules returns the built-in rules for a brand's declared industry.
// Unknown industries contribute nothing.
func IndustryRules(industry string) ([]types.Guideline, error) {
	if err := loadPacks(); err != nil {
		return nil, err
	}
	pack := industryPacks[industry]
	out := make([]types.Guideline, len(pack))
	copy(out, pack)
	return out, nil
}
