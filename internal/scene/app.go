// Package scene owns the top-level loop: it switches between the difficulty
// menu and a running round and draws whichever is active.
package scene

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"whacamole/internal/assets"
	"whacamole/internal/clock"
	"whacamole/internal/config"
	"whacamole/internal/input"
	"whacamole/internal/logging"
	"whacamole/internal/menu"
	"whacamole/internal/round"
	"whacamole/internal/target"
)

// Logical screen size; the window scales to fit.
const (
	ScreenW = 1280
	ScreenH = 720
)

// noticeDuration is how long a menu notice stays up, in seconds.
const noticeDuration = 2.0

type state int

const (
	stateMenu state = iota
	statePlaying
)

func (s state) String() string {
	if s == statePlaying {
		return "playing"
	}
	return "menu"
}

// Options wires an App. Textures may be nil when the App is never drawn.
type Options struct {
	Presets  *config.Presets
	Textures *assets.Textures
	Clock    clock.Clock
	Input    input.Poller
	Rand     target.Rand
	Log      zerolog.Logger
}

// App implements ebiten.Game.
type App struct {
	presets  *config.Presets
	textures *assets.Textures
	clock    clock.Clock
	input    input.Poller
	rng      target.Rand
	log      zerolog.Logger
	roundLog zerolog.Logger

	state    state
	menu     *menu.Screen
	hints    []string
	round    *round.Round
	notice   string
	noticeAt float64
}

func NewApp(o Options) *App {
	a := &App{
		presets:  o.Presets,
		textures: o.Textures,
		clock:    o.Clock,
		input:    o.Input,
		rng:      o.Rand,
		log:      logging.Component(o.Log, "app"),
		roundLog: logging.Component(o.Log, "round"),
		menu:     menu.NewScreen(ScreenW),
	}
	for _, p := range o.Presets.Rounds {
		if p.Hotkey != "" {
			a.hints = append(a.hints, fmt.Sprintf("Press %s for %s", p.Hotkey, p.Name))
		}
	}
	sort.Strings(a.hints)
	return a
}

func (a *App) Update() error {
	return a.Step(a.input.Poll(), a.clock.Now())
}

// Step runs one iteration of the loop with explicit input and time.
func (a *App) Step(f input.Frame, now float64) error {
	if f.QuitApp {
		a.log.Info().Stringer("state", a.state).Msg("quit requested")
		return ebiten.Termination
	}

	switch a.state {
	case stateMenu:
		a.updateMenu(f, now)
	case statePlaying:
		if a.round.Tick(now, f) {
			a.round = nil
			a.state = stateMenu
		}
	}
	return nil
}

func (a *App) updateMenu(f input.Frame, now float64) {
	if d, ok := a.menu.Present(f); ok {
		p, ok := a.presets.ForLevel(int(d))
		if !ok {
			// the menu offers more levels than there are rounds
			a.log.Warn().Stringer("difficulty", d).Msg("no round preset for difficulty")
			a.notice = fmt.Sprintf("%s mode is not available yet", d)
			a.noticeAt = now
			return
		}
		a.start(p, now)
		return
	}
	if p, ok := a.presets.ForHotkey(f.Hotkey); ok {
		a.start(p, now)
	}
}

func (a *App) start(p *config.Preset, now float64) {
	a.round = round.New(p, now, a.rng, a.roundLog)
	a.state = statePlaying
	a.notice = ""
}

func (a *App) Draw(screen *ebiten.Image) {
	now := a.clock.Now()
	switch a.state {
	case stateMenu:
		notice := ""
		if a.notice != "" && now-a.noticeAt < noticeDuration {
			notice = a.notice
		}
		drawMenu(screen, a.menu, a.hints, notice)
	case statePlaying:
		drawRound(screen, a.round, a.textures, now)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) { return ScreenW, ScreenH }
