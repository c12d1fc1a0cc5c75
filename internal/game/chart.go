package game

import "time"

// BPM is a raw tempo change as written in the BPMS tag. Position is a
// measure position, Value is beats per minute.
type BPM struct {
	Position float64
	Value    float64
}

// Metadata holds the recognised tag values of a simfile. A tag that fails
// to parse leaves its field at the zero value.
type Metadata struct {
	Title string

	// Seconds to shift the first tempo change, sign-flipped from the
	// OFFSET tag so that positive means earlier.
	OffsetSec float64

	BPMs []BPM

	// Tempo of the last BPMS tuple, only ever read for display.
	DisplayBPM float64
}

// Chart is the parsed note grid with its metadata. The measure index is
// the slice index; empty measures stay in place so indices line up.
type Chart struct {
	Measures []Measure
	Data     Metadata

	// Raw NOTES body, identifies the chart in the replay store.
	Body string
}

// Input is one key press during a play session.
type Input struct {
	Index   int
	HitTime time.Duration
}
