package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"whacamole/internal/target"
)

//go:embed rounds.yaml
var defaultRounds []byte

// PointConfig is a screen position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ShapeConfig describes a target's hit area.
type ShapeConfig struct {
	Kind   string  `yaml:"kind"` // "box" or "circle"
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type WeightConfig struct {
	Variant string  `yaml:"variant"`
	Weight  float64 `yaml:"weight"`
}

type ScoringConfig struct {
	Normal     int `yaml:"normal"`
	ArmorBreak int `yaml:"armorBreak"`
	Decoy      int `yaml:"decoy"`
}

// Preset is one playable round configuration.
type Preset struct {
	Name        string                 `yaml:"name"`
	Level       int                    `yaml:"level"`  // menu difficulty, 0 if not on the menu
	Hotkey      string                 `yaml:"hotkey"` // optional menu shortcut
	Shape       ShapeConfig            `yaml:"shape"`
	Positions   []PointConfig          `yaml:"positions"`
	Intervals   map[string]RangeConfig `yaml:"intervals"`
	Weights     []WeightConfig         `yaml:"weights"`
	Scoring     ScoringConfig          `yaml:"scoring"`
	ArmorHits   int                    `yaml:"armorHits"`
	AutoHide    bool                   `yaml:"autoHide"`
	Duration    float64                `yaml:"duration"`    // seconds, 0 = untimed
	MessageFade float64                `yaml:"messageFade"` // seconds
}

// Presets is the full set of rounds the game can start.
type Presets struct {
	Rounds []Preset `yaml:"rounds"`
}

// DefaultPresets decodes the presets compiled into the binary.
func DefaultPresets() (*Presets, error) {
	return ParsePresets(defaultRounds)
}

// LoadPresets reads a preset file from disk.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file %s: %w", path, err)
	}
	p, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePresets decodes and validates preset YAML.
func ParsePresets(data []byte) (*Presets, error) {
	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks every preset and fills in defaults.
func (p *Presets) Validate() error {
	if len(p.Rounds) == 0 {
		return fmt.Errorf("no round presets defined")
	}
	seen := make(map[int]string)
	for i := range p.Rounds {
		r := &p.Rounds[i]
		if err := r.validate(); err != nil {
			return fmt.Errorf("preset %q: %w", r.Name, err)
		}
		if r.Level == 0 {
			continue
		}
		if other, dup := seen[r.Level]; dup {
			return fmt.Errorf("presets %q and %q share level %d", other, r.Name, r.Level)
		}
		seen[r.Level] = r.Name
	}
	return nil
}

func (r *Preset) validate() error {
	if r.Name == "" {
		return fmt.Errorf("missing name")
	}
	if r.Level < 0 {
		return fmt.Errorf("negative level %d", r.Level)
	}
	if len(r.Positions) == 0 {
		return fmt.Errorf("no target positions")
	}
	switch r.Shape.Kind {
	case "box":
		if r.Shape.Width <= 0 || r.Shape.Height <= 0 {
			return fmt.Errorf("box shape needs positive width and height")
		}
	case "circle":
		if r.Shape.Radius <= 0 {
			return fmt.Errorf("circle shape needs a positive radius")
		}
	default:
		return fmt.Errorf("unknown shape kind %q", r.Shape.Kind)
	}

	if _, ok := r.Intervals[target.Normal.String()]; !ok {
		return fmt.Errorf("intervals must define %q", target.Normal.String())
	}
	for name, rng := range r.Intervals {
		if _, ok := target.ParseVariant(name); !ok {
			return fmt.Errorf("unknown variant %q in intervals", name)
		}
		if rng.Min < 0 || rng.Max < rng.Min {
			return fmt.Errorf("bad %s interval [%v, %v]", name, rng.Min, rng.Max)
		}
	}

	if len(r.Weights) == 0 {
		return fmt.Errorf("no variant weights")
	}
	total := 0.0
	for _, w := range r.Weights {
		if _, ok := target.ParseVariant(w.Variant); !ok {
			return fmt.Errorf("unknown variant %q in weights", w.Variant)
		}
		if w.Weight <= 0 {
			return fmt.Errorf("weight for %s must be positive", w.Variant)
		}
		total += w.Weight
	}
	if math.Abs(total-1) > 1e-9 {
		return fmt.Errorf("variant weights sum to %v, want 1", total)
	}

	if r.ArmorHits <= 0 {
		r.ArmorHits = 3
	}
	if r.Duration < 0 {
		return fmt.Errorf("negative duration %v", r.Duration)
	}
	if r.MessageFade < 0 {
		return fmt.Errorf("negative messageFade %v", r.MessageFade)
	}
	if r.MessageFade == 0 {
		r.MessageFade = DefaultMessageFade
	}
	r.Hotkey = strings.ToUpper(r.Hotkey)
	return nil
}

// DefaultMessageFade applies when a preset leaves messageFade unset.
const DefaultMessageFade = 0.25

// ForLevel returns the preset bound to a menu difficulty.
func (p *Presets) ForLevel(level int) (*Preset, bool) {
	for i := range p.Rounds {
		if p.Rounds[i].Level == level && level != 0 {
			return &p.Rounds[i], true
		}
	}
	return nil, false
}

// ForHotkey returns the preset started by a menu key, e.g. "P".
func (p *Presets) ForHotkey(key string) (*Preset, bool) {
	if key == "" {
		return nil, false
	}
	key = strings.ToUpper(key)
	for i := range p.Rounds {
		if p.Rounds[i].Hotkey == key {
			return &p.Rounds[i], true
		}
	}
	return nil, false
}

// TargetShape converts the shape config. The preset must be validated.
func (r *Preset) TargetShape() target.Shape {
	if r.Shape.Kind == "circle" {
		return target.Circle(r.Shape.Radius)
	}
	return target.Box(r.Shape.Width, r.Shape.Height)
}

func (r *Preset) TargetPositions() []target.Vec {
	out := make([]target.Vec, len(r.Positions))
	for i, p := range r.Positions {
		out[i] = target.Vec{X: p.X, Y: p.Y}
	}
	return out
}

// TargetParams builds the timing and variant table for the preset's targets.
func (r *Preset) TargetParams() target.Params {
	p := target.Params{ArmorHits: r.ArmorHits, AutoHide: r.AutoHide}
	for name, rng := range r.Intervals {
		if v, ok := target.ParseVariant(name); ok {
			p.Intervals[v] = target.Range{Min: rng.Min, Max: rng.Max}
		}
	}
	for _, w := range r.Weights {
		v, _ := target.ParseVariant(w.Variant)
		p.Weights = append(p.Weights, target.Weight{Variant: v, Weight: w.Weight})
	}
	return p
}

func (r *Preset) TargetScoring() target.Scoring {
	return target.Scoring{
		Normal:     r.Scoring.Normal,
		ArmorBreak: r.Scoring.ArmorBreak,
		Decoy:      r.Scoring.Decoy,
	}
}
