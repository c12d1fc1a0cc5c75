package timing

import (
	"math/big"
	"time"

	"git.lost.host/meutraa/etude/internal/game"
)

// SpriteFinder supplies the rendering payload attached to each timed
// note. The payload is opaque here; the second parameter is reserved
// and always passed as 0.
type SpriteFinder func(measure int, beat float64, position *big.Rat, t game.NoteType, column int) string

// TimedNote is one chart note pinned to absolute time.
type TimedNote struct {
	Time   time.Duration
	Type   game.NoteType
	Column int
	Sprite string

	// Play session state, untouched by the converter
	Row     int           // console row the note was last drawn on
	HitTime time.Duration // when the note was hit
	Miss    bool          // scrolled past the bottom without a hit
}

// TimingData is the timed note stream partitioned by column. Within a
// column notes ascend in time, since chart order does.
type TimingData struct {
	Columns [game.NumColumns][]*TimedNote
}

// FromChart converts a parsed chart into absolute note times at the
// given playback rate. The conversion has no hidden state; calling it
// again with the same inputs yields an identical stream.
func FromChart(chart *game.Chart, finder SpriteFinder, rate float64) *TimingData {
	data := &TimingData{}
	segments := Resolve(chart.Data.BPMs, chart.Data.OffsetSec*1000.0)
	if len(segments) == 0 {
		return data
	}

	cursor := newSegmentCursor(segments)
	for measure, placements := range chart.Measures {
		for _, placement := range placements {
			cursor.advance(measure, placement.Position)
			seg := cursor.current()

			dp, _ := new(big.Rat).Sub(placement.Position, seg.Position).Float64()
			ms := (seg.StartMs + msPerMeasure*(float64(measure-seg.Measure)+dp)/seg.BPM) / rate
			t := time.Duration(int64(ms)) * time.Millisecond

			for _, note := range placement.Row.Notes {
				if note.Column < 0 || note.Column >= game.NumColumns {
					// A malformed chart can place notes past the
					// playfield; drop them rather than fail
					continue
				}
				sprite := finder(measure, 0.0, placement.Position, note.Type, note.Column)
				data.Columns[note.Column] = append(data.Columns[note.Column], &TimedNote{
					Time:   t,
					Type:   note.Type,
					Column: note.Column,
					Sprite: sprite,
				})
			}
		}
	}
	return data
}

// LastTime returns the time of the latest note in any column.
func (d *TimingData) LastTime() time.Duration {
	last := time.Duration(0)
	for _, column := range d.Columns {
		if len(column) == 0 {
			continue
		}
		if t := column[len(column)-1].Time; t > last {
			last = t
		}
	}
	return last
}

// Counts returns the number of scoreable notes and mines.
func (d *TimingData) Counts() (notes int64, mines int64) {
	for _, column := range d.Columns {
		for _, note := range column {
			if note.Type.Scoreable() {
				notes++
			} else if note.Type == game.NoteMine {
				mines++
			}
		}
	}
	return notes, mines
}
