package timing

import (
	"math"
	"math/big"

	"git.lost.host/meutraa/etude/internal/game"
)

// Milliseconds one 4/4 measure lasts at 1 BPM. Charts with other time
// signatures are not modelled.
const msPerMeasure = 240000.0

// Denominator bound when a BPMS float position is turned back into a
// rational. 768 covers every denominator a 192nd note chart can produce,
// with headroom. Positions between those grid points round to the
// nearest one; this is the precision boundary of the float tag format.
const maxSubdivision = 768

// Segment is one region of constant tempo with its precomputed start
// time in milliseconds.
type Segment struct {
	Measure  int
	Position *big.Rat // fractional position within the measure, in [0,1)
	BPM      float64
	StartMs  float64
}

// splitPosition decomposes a BPMS measure position into an integer
// measure index and a fractional remainder.
func splitPosition(p float64) (int, *big.Rat) {
	measure := math.Floor(p)
	n := int64(math.Round((p - measure) * maxSubdivision))
	if n >= maxSubdivision {
		return int(measure) + 1, big.NewRat(0, 1)
	}
	return int(measure), big.NewRat(n, maxSubdivision)
}

// Resolve integrates the raw tempo list into segments with absolute
// start times. offsetMs places the first change; each later segment
// starts after the positional delta elapsed at the previous tempo.
// An empty list resolves to no segments, which means no timed notes.
func Resolve(bpms []game.BPM, offsetMs float64) []Segment {
	segments := make([]Segment, 0, len(bpms))
	for _, b := range bpms {
		measure, position := splitPosition(b.Position)
		segments = append(segments, Segment{
			Measure:  measure,
			Position: position,
			BPM:      b.Value,
			StartMs:  offsetMs,
		})
	}
	for i := 1; i < len(segments); i++ {
		prev := segments[i-1]
		dp, _ := new(big.Rat).Sub(segments[i].Position, prev.Position).Float64()
		dm := float64(segments[i].Measure - prev.Measure)
		segments[i].StartMs = prev.StartMs + (dm+dp)*msPerMeasure/prev.BPM
	}
	return segments
}

// segmentCursor walks the resolved segments alongside the row stream.
// Rows and segments are both sorted, so each row needs at most one
// comparison against the single lookahead segment.
type segmentCursor struct {
	segments []Segment
	index    int
}

func newSegmentCursor(segments []Segment) segmentCursor {
	return segmentCursor{segments: segments}
}

func (c *segmentCursor) current() *Segment {
	return &c.segments[c.index]
}

// advance promotes the lookahead segment once the row at (measure,
// position) has reached or passed its change point.
func (c *segmentCursor) advance(measure int, position *big.Rat) {
	if c.index+1 >= len(c.segments) {
		return
	}
	next := &c.segments[c.index+1]
	if measure > next.Measure ||
		(measure == next.Measure && next.Position.Cmp(position) <= 0) {
		c.index++
	}
}
