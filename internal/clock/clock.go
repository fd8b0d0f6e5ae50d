// Package clock provides the "seconds since start" time base every
// component compares timestamps against.
package clock

import "time"

type Clock interface {
	Now() float64
}

// Wall measures real elapsed time from its creation.
type Wall struct{ start time.Time }

func NewWall() *Wall { return &Wall{start: time.Now()} }

func (w *Wall) Now() float64 { return time.Since(w.start).Seconds() }

// Manual only moves when told to.
type Manual struct{ T float64 }

func (m *Manual) Now() float64 { return m.T }

func (m *Manual) Advance(d float64) { m.T += d }
