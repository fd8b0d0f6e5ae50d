package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"whacamole/internal/target"
)

func TestDefaultPresets(t *testing.T) {
	p, err := DefaultPresets()
	if err != nil {
		t.Fatalf("DefaultPresets: %v", err)
	}

	easy, ok := p.ForLevel(1)
	if !ok || easy.Name != "easy" {
		t.Fatalf("level 1 preset = %v, %v", easy, ok)
	}
	if easy.Duration != 0 {
		t.Errorf("easy round should be untimed, got %v", easy.Duration)
	}
	if got := easy.TargetShape(); got != target.Box(100, 100) {
		t.Errorf("easy shape = %+v", got)
	}

	medium, ok := p.ForLevel(2)
	if !ok || medium.Name != "medium" {
		t.Fatalf("level 2 preset = %v, %v", medium, ok)
	}
	if medium.Duration != 60 || medium.MessageFade != 0.25 || medium.ArmorHits != 3 {
		t.Errorf("medium preset = %+v", medium)
	}
	params := medium.TargetParams()
	if params.Intervals[target.Armored] != (target.Range{Min: 0.5, Max: 3.0}) {
		t.Errorf("armored interval = %+v", params.Intervals[target.Armored])
	}
	wantWeights := []target.Weight{
		{Variant: target.Normal, Weight: 0.70},
		{Variant: target.Armored, Weight: 0.15},
		{Variant: target.Decoy, Weight: 0.15},
	}
	if len(params.Weights) != len(wantWeights) {
		t.Fatalf("weights = %+v", params.Weights)
	}
	for i := range wantWeights {
		if params.Weights[i] != wantWeights[i] {
			t.Errorf("weight %d = %+v, want %+v", i, params.Weights[i], wantWeights[i])
		}
	}
	if got := medium.TargetScoring(); got != (target.Scoring{Normal: 1, ArmorBreak: 2, Decoy: -5}) {
		t.Errorf("scoring = %+v", got)
	}

	if _, ok := p.ForLevel(3); ok {
		t.Error("level 3 unexpectedly has a preset")
	}

	practice, ok := p.ForHotkey("p")
	if !ok || !practice.TargetShape().IsCircle() || !practice.AutoHide {
		t.Errorf("practice preset = %+v, %v", practice, ok)
	}
	if practice.MessageFade != 1.0 {
		t.Errorf("practice fade = %v", practice.MessageFade)
	}
	if len(practice.TargetPositions()) != 1 {
		t.Errorf("practice positions = %v", practice.TargetPositions())
	}
}

func TestParsePresetsValidation(t *testing.T) {
	base := `
rounds:
  - name: r
    level: 1
    shape: {kind: box, width: 10, height: 10}
    positions: [{x: 1, y: 2}]
    intervals: {normal: {min: 1, max: 2}}
    weights: [{variant: normal, weight: 1}]
`
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"empty", "rounds: []", "no round presets"},
		{"no positions", strings.Replace(base, "positions: [{x: 1, y: 2}]", "positions: []", 1), "no target positions"},
		{"unknown shape", strings.Replace(base, "kind: box", "kind: hex", 1), "unknown shape"},
		{"inverted interval", strings.Replace(base, "{min: 1, max: 2}", "{min: 3, max: 2}", 1), "bad normal interval"},
		{"missing normal interval", strings.Replace(base, "normal: {min", "armored: {min", 1), "must define"},
		{"weights off", strings.Replace(base, "weight: 1}", "weight: 0.5}", 1), "sum to"},
		{"unknown variant", strings.Replace(base, "variant: normal", "variant: kobe", 1), "unknown variant"},
		{"duplicate level", base + `  - name: s
    level: 1
    shape: {kind: circle, radius: 5}
    positions: [{x: 1, y: 2}]
    intervals: {normal: {min: 1, max: 2}}
    weights: [{variant: normal, weight: 1}]
`, "share level"},
		{"bad yaml", "rounds: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresets([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}

	p, err := ParsePresets([]byte(base))
	if err != nil {
		t.Fatalf("base preset rejected: %v", err)
	}
	r := p.Rounds[0]
	if r.ArmorHits != 3 || r.MessageFade != DefaultMessageFade {
		t.Errorf("defaults not applied: %+v", r)
	}
}

func TestLoadPresetsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.yaml")
	if err := os.WriteFile(path, defaultRounds, 0o644); err != nil {
		t.Fatal(err)
	}
	c := Default()
	c.PresetsFile = path
	p, err := c.Presets()
	if err != nil {
		t.Fatalf("Presets: %v", err)
	}
	if len(p.Rounds) != 3 {
		t.Errorf("loaded %d presets, want 3", len(p.Rounds))
	}

	c.PresetsFile = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := c.Presets(); err == nil {
		t.Error("expected an error for a missing presets file")
	}
}
