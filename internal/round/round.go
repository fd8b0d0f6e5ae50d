// Package round runs one play session: it pops targets up, resolves clicks
// into score changes and ends the round once its time runs out.
package round

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"whacamole/internal/config"
	"whacamole/internal/input"
	"whacamole/internal/target"
)

// Messages shown without a score attached.
const (
	MsgMissed    = "Missed!"
	MsgProtected = "Helmet Protected!"
)

// Round is a single session. Once Over it never becomes active again; start
// a new Round instead.
type Round struct {
	id     uuid.UUID
	preset *config.Preset
	log    zerolog.Logger
	rng    target.Rand

	params  target.Params
	scoring target.Scoring
	targets []*target.Target

	score     int
	message   string
	messageAt float64

	start    float64
	duration float64
	over     bool
}

// New starts a round at time now. rng is shared with the caller.
func New(p *config.Preset, now float64, rng target.Rand, logger zerolog.Logger) *Round {
	r := &Round{
		id:       uuid.New(),
		preset:   p,
		rng:      rng,
		params:   p.TargetParams(),
		scoring:  p.TargetScoring(),
		start:    now,
		duration: p.Duration,
	}
	r.log = logger.With().
		Str("round_id", r.id.String()).
		Str("preset", p.Name).
		Int("difficulty", p.Level).
		Logger()

	shape := p.TargetShape()
	for _, pos := range p.TargetPositions() {
		r.targets = append(r.targets, target.New(pos, shape, now))
	}

	if p.Level > 0 {
		r.setMessage(fmt.Sprintf("Difficulty: %d - Click the moles!", p.Level), now)
	} else {
		r.setMessage("Click the mole when it appears!", now)
	}
	r.log.Info().Int("targets", len(r.targets)).Float64("duration", r.duration).Msg("round started")
	return r
}

// Tick advances the round by one frame and reports whether the player asked
// to go back to the menu.
func (r *Round) Tick(now float64, f input.Frame) bool {
	for _, t := range r.targets {
		if r.over {
			t.Hide(now)
		} else {
			t.Update(now, r.rng, &r.params)
		}
	}

	if f.Clicked {
		r.click(now, f.X, f.Y)
	}

	if !r.over && r.duration > 0 && now-r.start >= r.duration {
		r.over = true
		for _, t := range r.targets {
			t.Hide(now)
		}
		r.log.Info().Int("score", r.score).Msg("round over")
	}

	if f.QuitToMenu {
		r.log.Info().Int("score", r.score).Bool("over", r.over).Msg("returning to menu")
	}
	return f.QuitToMenu
}

// click scores the first visible target under the cursor, in array order.
func (r *Round) click(now, x, y float64) {
	for i, t := range r.targets {
		if !t.IsHit(x, y) {
			continue
		}
		variant := t.Variant
		out := t.OnHit(now, r.scoring)
		r.score += out.Delta
		r.setMessage(r.hitMessage(out), now)
		r.log.Debug().
			Int("target", i).
			Stringer("variant", variant).
			Stringer("outcome", out.Kind).
			Int("score", r.score).
			Msg("hit")
		return
	}
	r.setMessage(MsgMissed, now)
	r.log.Debug().Float64("x", x).Float64("y", y).Msg("miss")
}

func (r *Round) hitMessage(out target.HitOutcome) string {
	switch out.Kind {
	case target.Blocked:
		return MsgProtected
	case target.Broken:
		return fmt.Sprintf("Helmet Broken! %+d Score: %d", out.Delta, r.score)
	case target.Penalized:
		return fmt.Sprintf("Don't hit cats! %+d Score: %d", out.Delta, r.score)
	}
	return fmt.Sprintf("Hit! Score: %d", r.score)
}

func (r *Round) setMessage(msg string, now float64) {
	r.message = msg
	r.messageAt = now
}

func (r *Round) ID() uuid.UUID { return r.id }
func (r *Round) Preset() *config.Preset { return r.preset }
func (r *Round) Score() int { return r.score }
func (r *Round) Over() bool { return r.over }
func (r *Round) Message() string { return r.message }
func (r *Round) Timed() bool { return r.duration > 0 }
func (r *Round) Targets() []*target.Target { return r.targets }

// MessageVisible reports whether the status message is still inside its
// fade window.
func (r *Round) MessageVisible(now float64) bool {
	return now-r.messageAt < r.preset.MessageFade
}

// Remaining is the time left on a timed round, 0 once it is over.
func (r *Round) Remaining(now float64) float64 {
	if r.over || r.duration <= 0 {
		return 0
	}
	left := r.duration - (now - r.start)
	if left < 0 {
		return 0
	}
	return left
}
