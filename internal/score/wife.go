package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/etude/internal/game"
)

// Tolerance window of the wife curve in milliseconds at sensitivity 1.
const avedeviation = 95.0

// Wife maps one judged note to points. ts scales the tolerance window;
// the +2 peak at zero error and the symmetry in the error sign hold for
// any ts > 0, and the curve falls toward -8 as the error grows.
func Wife(o Offset, ts float64) float64 {
	switch o.Type {
	case game.NoteTap, game.NoteHold, game.NoteRoll, game.NoteLift:
		if !o.Hit {
			return -8.0
		}
		ms := float64(o.Error) / float64(time.Millisecond)
		dev := avedeviation * ts
		y := 1.0 - math.Pow(2.0, -ms*ms/(dev*dev))
		y *= y
		return 10.0*(1.0-y) - 8.0
	case game.NoteMine:
		if o.Hit {
			return -8.0
		}
		return 0.0
	}
	// Fake notes and hold tails never score
	return 0.0
}

// MaxPoints is the best possible contribution of a note type.
func MaxPoints(t game.NoteType) float64 {
	if t.Scoreable() {
		return 2.0
	}
	return 0.0
}

// Tally accumulates wife points. Feeding notes one at a time as they
// resolve or all at once at session end yields the same ratio.
type Tally struct {
	Points float64
	Max    float64
}

func (t *Tally) Add(o Offset, ts float64) {
	t.Points += Wife(o, ts)
	t.Max += MaxPoints(o.Type)
}

// Score is the normalized accuracy. Undefined when no scoreable note
// has been added; callers check that before asking.
func (t *Tally) Score() float64 {
	return t.Points / t.Max
}

// Calculate scores a complete record set in one pass.
func Calculate(offsets []Offset, ts float64) float64 {
	var tally Tally
	for _, o := range offsets {
		tally.Add(o, ts)
	}
	return tally.Score()
}
