package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"risk-reward/internal/form"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server ServerConfig `yaml:"server"`
	// PresetDir is where instrument preset YAMLs live.
	PresetDir string `yaml:"preset_dir"`
	// Optional: seed the inputs from an instrument preset file. Explicit
	// values under Inputs override the preset.
	PresetFile string       `yaml:"preset_file"`
	Inputs     InputsConfig `yaml:"inputs"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

// InputsConfig mirrors the calculator inputs for config-driven runs.
// Zero values mean "not set"; cost/rebate legitimately default to 0.
type InputsConfig struct {
	AvgPrice           float64 `yaml:"avg_price"`
	MaxAgainstPrice    float64 `yaml:"max_against_price"`
	TargetPrice        float64 `yaml:"target_price"`
	TickSize           float64 `yaml:"tick_size"`
	NumLots            float64 `yaml:"num_lots"`
	TickValue          float64 `yaml:"tick_value"`
	TotalLotsEntryExit float64 `yaml:"total_lots_entry_exit"`
	CostPerLot         float64 `yaml:"cost_per_lot"`
	RebatePerLot       float64 `yaml:"rebate_per_lot"`
}

// ToRaw renders the inputs as the raw strings the form layer consumes,
// so config-driven runs pass through the same validation as the UI.
// Zero fields render as blank: required-field checking still applies,
// and blank cost/rebate default to 0 anyway.
func (ic InputsConfig) ToRaw() form.RawInputs {
	f := func(v float64) string {
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return form.RawInputs{
		AvgPrice:           f(ic.AvgPrice),
		MaxAgainstPrice:    f(ic.MaxAgainstPrice),
		TargetPrice:        f(ic.TargetPrice),
		TickSize:           f(ic.TickSize),
		NumLots:            f(ic.NumLots),
		TickValue:          f(ic.TickValue),
		TotalLotsEntryExit: f(ic.TotalLotsEntryExit),
		CostPerLot:         f(ic.CostPerLot),
		RebatePerLot:       f(ic.RebatePerLot),
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If preset_file is set, load it and apply explicit overrides from
	// c.Inputs on top.
	if c.PresetFile != "" {
		presetPath := c.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, falling back to the path as given.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		p, err := LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		c.Inputs = MergeInputs(p.Inputs, c.Inputs)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port != "" {
		if _, err := strconv.Atoi(c.Server.Port); err != nil {
			return fmt.Errorf("server.port must be numeric: %q", c.Server.Port)
		}
	}
	return nil
}

// Preset is a named set of typical instrument values (tick size, tick
// value, example prices) that pre-fills the calculator.
type Preset struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Inputs      InputsConfig `yaml:"inputs"`
}

type presetFileWrapper struct {
	Preset Preset `yaml:"preset"`
}

func LoadPreset(path string) (Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, err
	}
	var w presetFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return Preset{}, err
	}
	if w.Preset.Name == "" {
		w.Preset.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return w.Preset, nil
}

// ListPresets loads every *.yaml preset in dir, sorted by name.
func ListPresets(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Preset, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		p, err := LoadPreset(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.Name(), err)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// MergeInputs overlays non-zero fields from override onto base. Used
// when a preset supplies defaults and the config or request supplies
// explicit values on top.
func MergeInputs(base, override InputsConfig) InputsConfig {
	out := base
	if override.AvgPrice != 0 {
		out.AvgPrice = override.AvgPrice
	}
	if override.MaxAgainstPrice != 0 {
		out.MaxAgainstPrice = override.MaxAgainstPrice
	}
	if override.TargetPrice != 0 {
		out.TargetPrice = override.TargetPrice
	}
	if override.TickSize != 0 {
		out.TickSize = override.TickSize
	}
	if override.NumLots != 0 {
		out.NumLots = override.NumLots
	}
	if override.TickValue != 0 {
		out.TickValue = override.TickValue
	}
	if override.TotalLotsEntryExit != 0 {
		out.TotalLotsEntryExit = override.TotalLotsEntryExit
	}
	if override.CostPerLot != 0 {
		out.CostPerLot = override.CostPerLot
	}
	if override.RebatePerLot != 0 {
		out.RebatePerLot = override.RebatePerLot
	}
	return out
}
