// Package segments loads named segment presets from a YAML file and runs
// them against the backend's user-segment endpoints.
package segments

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/api"
	"github.com/thesixpathguy/VoiceWise-sub001/internal/pkg/types"
)

// Preset kinds, one per user-segment endpoint.
const (
	KindChurn   = "churn"
	KindRevenue = "revenue"
	KindFilter  = "filter"
	KindPrompt  = "prompt"
)

// Preset is a named, reusable segment query.
type Preset struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// churn / revenue
	Threshold *float64 `yaml:"threshold,omitempty"`

	// filter
	Metric string   `yaml:"metric,omitempty"`
	Op     string   `yaml:"op,omitempty"`
	Value  *float64 `yaml:"value,omitempty"`

	// prompt
	Prompt string `yaml:"prompt,omitempty"`

	Limit int `yaml:"limit,omitempty"`
}

// Validate checks the preset for the fields its kind requires.
func (p Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}

	switch p.Kind {
	case KindChurn, KindRevenue:
		if p.Threshold != nil && (*p.Threshold < 0 || *p.Threshold > 1) {
			return fmt.Errorf("preset %q: threshold %v outside [0, 1]", p.Name, *p.Threshold)
		}
	case KindFilter:
		if p.Metric == "" {
			return fmt.Errorf("preset %q: filter preset needs a metric", p.Name)
		}
		switch p.Op {
		case "lt", "lte", "gt", "gte", "eq":
		case "":
			return fmt.Errorf("preset %q: filter preset needs an op", p.Name)
		default:
			return fmt.Errorf("preset %q: unknown op %q", p.Name, p.Op)
		}
		if p.Value == nil {
			return fmt.Errorf("preset %q: filter preset needs a value", p.Name)
		}
	case KindPrompt:
		if p.Prompt == "" {
			return fmt.Errorf("preset %q: prompt preset needs a prompt", p.Name)
		}
	case "":
		return fmt.Errorf("preset %q: kind is required", p.Name)
	default:
		return fmt.Errorf("preset %q: unknown kind %q", p.Name, p.Kind)
	}

	if p.Limit < 0 {
		return fmt.Errorf("preset %q: negative limit", p.Name)
	}
	return nil
}

// Fetch runs the preset against the backend.
func (p Preset) Fetch(ctx context.Context, client *api.Client) (*types.Segment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindChurn:
		return client.ChurnSegment(ctx, api.ScoreSegmentParams{Threshold: p.Threshold, Limit: p.Limit})
	case KindRevenue:
		return client.RevenueSegment(ctx, api.ScoreSegmentParams{Threshold: p.Threshold, Limit: p.Limit})
	case KindFilter:
		return client.FilterSegment(ctx, api.FilterSegmentParams{
			Metric: p.Metric,
			Op:     p.Op,
			Value:  *p.Value,
			Limit:  p.Limit,
		})
	default:
		return client.PromptSegment(ctx, api.PromptSegmentParams{Prompt: p.Prompt, Limit: p.Limit})
	}
}

// File is the on-disk preset collection. Order is preserved for display.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Get returns the named preset.
func (f *File) Get(name string) (Preset, bool) {
	for _, p := range f.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Names lists preset names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for _, p := range f.Presets {
		names = append(names, p.Name)
	}
	return names
}

// DefaultPath returns the standard preset file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "segments.yaml"
	}
	return filepath.Join(home, ".config", "voicewise", "segments.yaml")
}

// Load reads and validates a preset file. A missing file yields an empty
// collection, not an error.
func Load(path string) (*File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := make(map[string]bool, len(f.Presets))
	for _, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true
	}

	return &f, nil
}
