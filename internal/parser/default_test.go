package parser

import (
	"math/big"
	"testing"

	"git.lost.host/meutraa/etude/internal/game"
)

const simfile = "#TITLE:Test Song;\n" +
	"#SUBTITLE:ignored;\n" +
	"#OFFSET:1.200;\n" +
	"#BPMS:0.000=120.000,\n2.500=180.000;\n" +
	"#NOTES:\n" +
	"     dance-single:\n" +
	"     :\n" +
	"     Hard:\n" +
	"     9:\n" +
	"     0.1,0.2,0.3,0.4,0.5:\n" +
	"1000\n" +
	"00M0\n" +
	"0200\n" +
	"000L\n" +
	",\n" +
	"1001\n" +
	",\n" +
	";\n"

func TestParseMetadata(t *testing.T) {
	p := DefaultParser{}
	chart := p.ParseData(simfile)

	if chart.Data.Title != "Test Song" {
		t.Log("title", chart.Data.Title)
		t.Fail()
	}
	if chart.Data.OffsetSec != -1.2 {
		t.Log("offset", chart.Data.OffsetSec)
		t.Fail()
	}
	if len(chart.Data.BPMs) != 2 ||
		chart.Data.BPMs[0] != (game.BPM{Position: 0, Value: 120}) ||
		chart.Data.BPMs[1] != (game.BPM{Position: 2.5, Value: 180}) {
		t.Log("bpms", chart.Data.BPMs)
		t.Fail()
	}
	if chart.Data.DisplayBPM != 180 {
		t.Log("display bpm", chart.Data.DisplayBPM)
		t.Fail()
	}
}

func TestParsePositions(t *testing.T) {
	p := DefaultParser{}
	chart := p.ParseData(simfile)

	// Three measures: four rows, one row, and the empty trailing one
	if len(chart.Measures) != 3 {
		t.Log("measures", len(chart.Measures))
		t.Fail()
	}

	expected := []*big.Rat{
		big.NewRat(0, 1),
		big.NewRat(1, 4),
		big.NewRat(1, 2),
		big.NewRat(3, 4),
	}
	for i, placement := range chart.Measures[0] {
		if placement.Position.Cmp(expected[i]) != 0 {
			t.Log("row", i)
			t.Log("position", placement.Position)
			t.Log("expected", expected[i])
			t.Fail()
		}
	}

	if len(chart.Measures[1]) != 1 || chart.Measures[1][0].Position.Cmp(big.NewRat(0, 1)) != 0 {
		t.Log("single row measure", chart.Measures[1])
		t.Fail()
	}
	if len(chart.Measures[2]) != 0 {
		t.Log("trailing measure", chart.Measures[2])
		t.Fail()
	}
}

func TestParseRows(t *testing.T) {
	p := DefaultParser{}
	chart := p.ParseData(simfile)

	rows := [][]game.RowNote{
		{{Type: game.NoteTap, Column: 0}},
		{{Type: game.NoteMine, Column: 2}},
		{{Type: game.NoteHold, Column: 1}},
		{{Type: game.NoteLift, Column: 3}},
	}
	for i, expected := range rows {
		notes := chart.Measures[0][i].Row.Notes
		if len(notes) != len(expected) {
			t.Log("row", i, notes)
			t.Fail()
			continue
		}
		for j := range expected {
			if notes[j] != expected[j] {
				t.Log("row", i, "note", j)
				t.Log("note    ", notes[j])
				t.Log("expected", expected[j])
				t.Fail()
			}
		}
	}

	if len(chart.Measures[1][0].Row.Notes) != 2 {
		t.Log("outer columns row", chart.Measures[1][0].Row.Notes)
		t.Fail()
	}
}

var charTests = map[byte]game.NoteType{
	'0': game.NoteNone,
	'1': game.NoteTap,
	'2': game.NoteHold,
	'3': game.NoteHoldEnd,
	'4': game.NoteRoll,
	'M': game.NoteMine,
	'L': game.NoteLift,
	'F': game.NoteFake,
	'K': game.NoteNone, // keysounds are not modelled
	'x': game.NoteNone,
}

func TestNoteType(t *testing.T) {
	for in, expected := range charTests {
		if out := noteType(in); out != expected {
			t.Log("char    ", string(in))
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestParseMalformedTags(t *testing.T) {
	p := DefaultParser{}
	chart := p.ParseData("#OFFSET:abc;\n#BPMS:0.000=oops;\n#WHATEVER:1;\n")

	if chart.Data.OffsetSec != 0 {
		t.Log("offset", chart.Data.OffsetSec)
		t.Fail()
	}
	if len(chart.Data.BPMs) != 0 {
		t.Log("bpms", chart.Data.BPMs)
		t.Fail()
	}
	if len(chart.Measures) != 0 {
		t.Log("measures", chart.Measures)
		t.Fail()
	}
}
