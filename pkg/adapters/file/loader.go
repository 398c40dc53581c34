package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/typist/pkg/adapters/memory"
	"github.com/aretw0/typist/pkg/domain"
	"gopkg.in/yaml.v3"
)

// MatchConfig describes the injection options of a single match.
type MatchConfig struct {
	ID        int    `yaml:"id" json:"id"`
	ForceMode string `yaml:"force_mode" json:"force_mode"`
}

// ConfigFile represents the structure of a matches file (matches.yaml or matches.json).
type ConfigFile struct {
	Matches []MatchConfig `yaml:"matches" json:"matches"`
}

// Load reads a matches file (YAML or JSON) into an in-memory store.
// A missing file yields an empty store: no match forces a mode.
func Load(path string) (*memory.Store, error) {
	entries, err := LoadEntries(path)
	if err != nil {
		return nil, err
	}
	return memory.NewFromMap(entries), nil
}

// LoadEntries reads a matches file and returns the forced mode of each match.
// Entries without an override are omitted.
func LoadEntries(path string) (map[int]domain.TextInjectMode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[int]domain.TextInjectMode{}, nil
		}
		return nil, fmt.Errorf("failed to read matches file: %w", err)
	}

	var cfg ConfigFile
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	entries := make(map[int]domain.TextInjectMode, len(cfg.Matches))
	seen := make(map[int]bool, len(cfg.Matches))
	for i, m := range cfg.Matches {
		if seen[m.ID] {
			return nil, fmt.Errorf("matches[%d]: duplicate match id %d", i, m.ID)
		}
		seen[m.ID] = true

		mode, err := domain.ParseTextInjectMode(m.ForceMode)
		if err != nil {
			return nil, fmt.Errorf("matches[%d] (id %d): %w", i, m.ID, err)
		}
		if mode.IsOverride() {
			entries[m.ID] = mode
		}
	}

	return entries, nil
}
