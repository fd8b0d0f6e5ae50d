package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"whacamole/internal/clock"
	"whacamole/internal/config"
	"whacamole/internal/input"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestApp(t *testing.T, poller input.Poller, clk clock.Clock, logs *bytes.Buffer) *App {
	t.Helper()
	presets, err := config.DefaultPresets()
	if err != nil {
		t.Fatalf("DefaultPresets: %v", err)
	}
	logger := zerolog.Nop()
	if logs != nil {
		logger = zerolog.New(logs)
	}
	return NewApp(Options{
		Presets: presets,
		Clock:   clk,
		Input:   poller,
		Rand:    fixedRand(0.5),
		Log:     logger,
	})
}

// button centres on a 1280-wide screen
var (
	easyButton   = input.Click(640, 280)
	mediumButton = input.Click(640, 360)
	hardButton   = input.Click(640, 440)
)

func TestMenuStartsRoundForLevel(t *testing.T) {
	tests := []struct {
		name   string
		click  input.Frame
		preset string
	}{
		{"easy", easyButton, "easy"},
		{"medium", mediumButton, "medium"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
			if err := a.Step(tt.click, 1); err != nil {
				t.Fatalf("Step: %v", err)
			}
			if a.state != statePlaying || a.round == nil {
				t.Fatalf("state = %v, want playing", a.state)
			}
			if got := a.round.Preset().Name; got != tt.preset {
				t.Errorf("preset = %q, want %q", got, tt.preset)
			}
		})
	}
}

func TestHardStaysOnMenu(t *testing.T) {
	var logs bytes.Buffer
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, &logs)

	if err := a.Step(hardButton, 1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if a.state != stateMenu || a.round != nil {
		t.Fatalf("state = %v, want menu", a.state)
	}
	if a.notice != "Hard mode is not available yet" {
		t.Errorf("notice = %q", a.notice)
	}
	if !strings.Contains(logs.String(), "no round preset") {
		t.Errorf("missing warning in %q", logs.String())
	}
}

func TestHotkeyStartsPractice(t *testing.T) {
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
	if len(a.hints) != 1 || a.hints[0] != "Press P for practice" {
		t.Errorf("hints = %v", a.hints)
	}

	a.Step(input.Frame{Hotkey: "X"}, 0)
	if a.state != stateMenu {
		t.Fatal("unbound hotkey left the menu")
	}
	a.Step(input.Frame{Hotkey: "P"}, 0)
	if a.state != statePlaying || a.round.Preset().Name != "practice" {
		t.Fatalf("state = %v", a.state)
	}
}

func TestQuitToMenuDiscardsRound(t *testing.T) {
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
	a.Step(mediumButton, 0)
	first := a.round

	a.Step(input.Frame{}, 1)
	if a.state != statePlaying {
		t.Fatal("round ended without Q")
	}
	a.Step(input.Frame{QuitToMenu: true}, 2)
	if a.state != stateMenu || a.round != nil {
		t.Fatalf("state = %v after Q", a.state)
	}

	a.Step(mediumButton, 3)
	if a.round == first {
		t.Error("returning to play reused the old round")
	}
	if a.round.Score() != 0 || a.round.Over() {
		t.Error("new round did not start fresh")
	}
}

func TestQuitToMenuAfterGameOver(t *testing.T) {
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
	a.Step(mediumButton, 0)
	a.Step(input.Frame{}, 61)
	if !a.round.Over() {
		t.Fatal("medium round not over after 61s")
	}
	// game over alone does not leave the round
	a.Step(input.Frame{}, 62)
	if a.state != statePlaying {
		t.Fatal("game over returned to the menu by itself")
	}
	a.Step(input.Frame{QuitToMenu: true}, 63)
	if a.state != stateMenu {
		t.Fatal("Q after game over did not return to the menu")
	}
}

func TestEscapeTerminatesFromAnyState(t *testing.T) {
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
	if err := a.Step(input.Frame{QuitApp: true}, 0); !errors.Is(err, ebiten.Termination) {
		t.Errorf("menu: err = %v, want Termination", err)
	}

	a.Step(easyButton, 0)
	if err := a.Step(input.Frame{QuitApp: true}, 1); !errors.Is(err, ebiten.Termination) {
		t.Errorf("playing: err = %v, want Termination", err)
	}
}

func TestUpdatePollsInputAndClock(t *testing.T) {
	clk := &clock.Manual{T: 5}
	script := &input.Script{Frames: []input.Frame{easyButton, {}, {QuitToMenu: true}}}
	a := newTestApp(t, script, clk, nil)

	if err := a.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if a.state != statePlaying {
		t.Fatal("scripted click did not start a round")
	}
	clk.Advance(1)
	a.Update()
	clk.Advance(1)
	a.Update()
	if a.state != stateMenu {
		t.Errorf("state = %v after scripted Q", a.state)
	}
}

func TestLayout(t *testing.T) {
	a := newTestApp(t, &input.Script{}, &clock.Manual{}, nil)
	if w, h := a.Layout(800, 600); w != ScreenW || h != ScreenH {
		t.Errorf("Layout = %d x %d", w, h)
	}
}
