package score

import (
	"testing"
	"time"

	"git.lost.host/meutraa/etude/internal/game"
	"git.lost.host/meutraa/etude/internal/timing"
)

func column(times ...time.Duration) []*timing.TimedNote {
	notes := make([]*timing.TimedNote, 0, len(times))
	for _, t := range times {
		notes = append(notes, &timing.TimedNote{Time: t, Type: game.NoteTap})
	}
	return notes
}

func TestApplyClosestNote(t *testing.T) {
	scorer := DefaultScorer{}
	miss := 180 * time.Millisecond

	data := &timing.TimingData{}
	data.Columns[0] = column(1000*time.Millisecond, 1500*time.Millisecond, 2000*time.Millisecond)
	data.Columns[2] = column(1000 * time.Millisecond)

	note, distance := scorer.Apply(data, &game.Input{Index: 0, HitTime: 1450 * time.Millisecond}, miss)
	if nil == note || note.Time != 1500*time.Millisecond || distance != -50*time.Millisecond {
		t.Log("note    ", note, distance)
		t.Log("expected", 1500*time.Millisecond, -50*time.Millisecond)
		t.Fail()
	}

	// The 1500ms note is taken, so a second press falls to the 2000ms one
	note, _ = scorer.Apply(data, &game.Input{Index: 0, HitTime: 1900 * time.Millisecond}, miss)
	if nil == note || note.Time != 2000*time.Millisecond {
		t.Log("rehit matched", note)
		t.Fail()
	}

	// Nothing within the miss window
	note, _ = scorer.Apply(data, &game.Input{Index: 2, HitTime: 5 * time.Second}, miss)
	if nil != note {
		t.Log("matched a note outside the window", note)
		t.Fail()
	}

	// Out of range columns never match
	note, _ = scorer.Apply(data, &game.Input{Index: 7, HitTime: 1000 * time.Millisecond}, miss)
	if nil != note {
		t.Log("matched a note in an invalid column", note)
		t.Fail()
	}
}

func TestApplySkipsUnscoreable(t *testing.T) {
	scorer := DefaultScorer{}
	data := &timing.TimingData{}
	data.Columns[1] = []*timing.TimedNote{
		{Time: 1000 * time.Millisecond, Type: game.NoteMine},
		{Time: 1010 * time.Millisecond, Type: game.NoteFake},
		{Time: 1020 * time.Millisecond, Type: game.NoteHoldEnd},
		{Time: 1100 * time.Millisecond, Type: game.NoteHold},
	}

	note, _ := scorer.Apply(data, &game.Input{Index: 1, HitTime: 1000 * time.Millisecond}, 180*time.Millisecond)
	if nil == note || note.Type != game.NoteHold {
		t.Log("note    ", note)
		t.Log("expected the hold at 1100ms")
		t.Fail()
	}
}
