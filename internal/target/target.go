// Package target implements the clickable spots of a round: where they sit,
// when they pop up, what they turn into and how they react to being hit.
package target

import "math"

// Vec is a point in screen space.
type Vec struct{ X, Y float64 }

// Variant is the behavioural subtype of a visible target.
type Variant int

const (
	Normal Variant = iota
	Armored
	Decoy

	variantCount
)

func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Armored:
		return "armored"
	case Decoy:
		return "decoy"
	}
	return "unknown"
}

// ParseVariant maps the names used in preset files to a Variant.
func ParseVariant(s string) (Variant, bool) {
	for v := Normal; v < variantCount; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return Normal, false
}

// Shape is the hit area around a target's centre. A positive Radius makes it
// a circle, otherwise it is an axis-aligned box with half-extents HalfW/HalfH.
type Shape struct {
	HalfW, HalfH float64
	Radius       float64
}

func Box(w, h float64) Shape { return Shape{HalfW: w / 2, HalfH: h / 2} }
func Circle(r float64) Shape { return Shape{Radius: r} }
func (s Shape) IsCircle() bool { return s.Radius > 0 }

// Contains reports whether (x, y) lies inside the shape centred on c.
// Box edges are inclusive, the circle rim is not.
func (s Shape) Contains(c Vec, x, y float64) bool {
	if s.IsCircle() {
		return math.Hypot(x-c.X, y-c.Y) < s.Radius
	}
	return x >= c.X-s.HalfW && x <= c.X+s.HalfW &&
		y >= c.Y-s.HalfH && y <= c.Y+s.HalfH
}

// Rand is the slice of *rand.Rand a target needs.
type Rand interface {
	Float64() float64
}

// Range is a closed-open interval of seconds.
type Range struct{ Min, Max float64 }

func (r Range) Sample(rng Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Weight is one entry of the cumulative variant table.
type Weight struct {
	Variant Variant
	Weight  float64
}

// Params tunes appearance timing and variant selection for every target of
// a round.
type Params struct {
	// Intervals is indexed by the variant the target last showed as.
	// A zero range falls back to the Normal entry.
	Intervals [variantCount]Range
	Weights   []Weight
	ArmorHits int
	// AutoHide lets a visible target drop back into its hole after a
	// fresh interval instead of waiting to be hit.
	AutoHide bool
}

func (p *Params) interval(v Variant) Range {
	if r := p.Intervals[v]; r != (Range{}) {
		return r
	}
	return p.Intervals[Normal]
}

// pick walks the cumulative weight table with u in [0,1). The last entry
// absorbs any rounding slack.
func (p *Params) pick(u float64) Variant {
	if len(p.Weights) == 0 {
		return Normal
	}
	cum := 0.0
	for _, w := range p.Weights {
		cum += w.Weight
		if u < cum {
			return w.Variant
		}
	}
	return p.Weights[len(p.Weights)-1].Variant
}

type Target struct {
	Pos        Vec
	Shape      Shape
	Visible    bool
	LastToggle float64
	Variant    Variant
	// Health counts the hits an Armored target can still absorb.
	Health int
}

// New returns a hidden Normal target whose timer starts at now.
func New(pos Vec, shape Shape, now float64) *Target {
	return &Target{Pos: pos, Shape: shape, LastToggle: now}
}

// Update advances the pop-up timer. A fresh interval is drawn on every call,
// so the chance of appearing grows the longer the target stays down.
func (t *Target) Update(now float64, rng Rand, p *Params) {
	if t.Visible && !p.AutoHide {
		return
	}
	interval := p.interval(t.Variant).Sample(rng)
	if now-t.LastToggle <= interval {
		return
	}
	if t.Visible {
		t.Hide(now)
		return
	}
	t.appear(now, rng, p)
}

func (t *Target) appear(now float64, rng Rand, p *Params) {
	t.Visible = true
	t.LastToggle = now
	t.Variant = p.pick(rng.Float64())
	if t.Variant == Armored {
		t.Health = p.ArmorHits
	}
}

// IsHit reports whether a click at (x, y) lands on the target. Hidden
// targets are never hit.
func (t *Target) IsHit(x, y float64) bool {
	return t.Visible && t.Shape.Contains(t.Pos, x, y)
}

// Hide puts the target back in its hole and re-arms the pop-up timer.
func (t *Target) Hide(now float64) {
	t.Visible = false
	t.LastToggle = now
}
