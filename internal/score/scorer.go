package score

import (
	"time"

	"git.lost.host/meutraa/etude/internal/game"
	"git.lost.host/meutraa/etude/internal/timing"
)

type Scorer interface {
	Init() error
	Deinit()

	// Save the judged offsets of this performance
	Save(chart *game.Chart, offsets []Offset, rate, sensitivity float64)

	// Load up previous performances of the chart
	Load(chart *game.Chart) []Replay

	Apply(data *timing.TimingData, input *game.Input, miss time.Duration) (*timing.TimedNote, time.Duration)
}

// Offset is the judged outcome of one note. Hit distinguishes a perfect
// zero error from a note that was never hit.
type Offset struct {
	Hit   bool
	Error time.Duration
	Type  game.NoteType
}

// Replay is one stored performance, raw offsets only. Scores are always
// recomputed from these, never persisted.
type Replay struct {
	Sum         string
	Rate        float64
	Sensitivity float64
	Offsets     []Offset
}
