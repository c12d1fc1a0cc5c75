package parser

import (
	"io/ioutil"
	"math/big"
	"strconv"
	"strings"

	"git.lost.host/meutraa/etude/internal/game"
)

type DefaultParser struct{}

// Player metadata lines at the top of a NOTES body: chart type, author,
// difficulty, meter, radar values. Not modelled, always skipped.
const noteHeaderLines = 5

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// L – Lift note
// F – Fake note

func noteType(c byte) game.NoteType {
	switch c {
	case '1':
		return game.NoteTap
	case '2':
		return game.NoteHold
	case '3':
		return game.NoteHoldEnd
	case '4':
		return game.NoteRoll
	case 'M':
		return game.NoteMine
	case 'L':
		return game.NoteLift
	case 'F':
		return game.NoteFake
	}
	// '0' and anything unrecognised places no note
	return game.NoteNone
}

func parseRow(line string) game.Row {
	row := game.Row{}
	for i := 0; i < len(line); i++ {
		if t := noteType(line[i]); t != game.NoteNone {
			row.Notes = append(row.Notes, game.RowNote{Type: t, Column: i})
		}
	}
	return row
}

func parseMeasure(lines []string) game.Measure {
	measure := make(game.Measure, 0, len(lines))
	division := int64(len(lines))
	for i, line := range lines {
		measure = append(measure, game.Placement{
			Position: big.NewRat(int64(i), division),
			Row:      parseRow(line),
		})
	}
	return measure
}

func parseNotes(body string) []game.Measure {
	lines := strings.Split(body, "\n")
	if len(lines) <= noteHeaderLines {
		return nil
	}
	lines = lines[noteHeaderLines:]

	measures := []game.Measure{}
	block := []string{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "," {
			measures = append(measures, parseMeasure(block))
			block = nil
			continue
		}
		// Stray header remnants and comments are not rows
		if line == "" || line == ";" || strings.HasPrefix(line, "//") ||
			strings.ContainsRune(line, ':') {
			continue
		}
		block = append(block, line)
	}
	return append(measures, parseMeasure(block))
}

func parseBPMs(value string) []game.BPM {
	value = strings.ReplaceAll(value, "\n", "")
	value = strings.TrimSuffix(strings.TrimSpace(value), ";")
	bpms := []game.BPM{}
	for _, pair := range strings.Split(value, ",") {
		as := strings.SplitN(pair, "=", 2)
		if len(as) != 2 {
			return nil
		}
		position, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
		if nil != err {
			return nil
		}
		tempo, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
		if nil != err {
			return nil
		}
		bpms = append(bpms, game.BPM{Position: position, Value: tempo})
	}
	return bpms
}

func parseTag(tag, value string, chart *game.Chart) {
	switch tag {
	case "TITLE":
		chart.Data.Title = strings.TrimSuffix(strings.TrimSpace(value), ";")
	case "OFFSET":
		offs, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), ";"), 64)
		if nil != err {
			// Unparseable offset is not fatal, the field stays zero
			return
		}
		chart.Data.OffsetSec = -offs
	case "BPMS":
		bpms := parseBPMs(value)
		chart.Data.BPMs = bpms
		if len(bpms) > 0 {
			chart.Data.DisplayBPM = bpms[len(bpms)-1].Value
		}
	case "NOTES":
		chart.Body = value
		chart.Measures = parseNotes(value)
	}
	// Every other tag is ignored for forward compatibility
}

// ParseData parses simfile text into a chart. Malformed tag values
// degrade to absent fields rather than errors, so this cannot fail.
func (p *DefaultParser) ParseData(data string) *game.Chart {
	chart := &game.Chart{}
	str := strings.ReplaceAll(data, "\r", "")
	for _, section := range strings.Split(str, "#") {
		split := strings.SplitN(section, ":", 2)
		if len(split) != 2 {
			continue
		}
		parseTag(split[0], split[1], chart)
	}
	return chart
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseData(string(data)), nil
}
