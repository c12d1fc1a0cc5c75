package game

// NoteType is the closed set of note kinds a chart can place.
type NoteType uint8

const (
	NoteNone NoteType = iota
	NoteTap
	NoteHold
	NoteHoldEnd
	NoteRoll
	NoteMine
	NoteLift
	NoteFake
)

// Scoreable reports whether a note counts toward the maximum score.
func (t NoteType) Scoreable() bool {
	switch t {
	case NoteTap, NoteHold, NoteRoll, NoteLift:
		return true
	}
	return false
}

// RowNote places one note in a column of its row.
type RowNote struct {
	Type   NoteType
	Column int
}

// Row is the set of notes sharing one position within a measure.
type Row struct {
	Notes []RowNote
}
