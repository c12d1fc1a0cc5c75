package main

import (
	"fmt"
	"math"
	"time"

	"git.lost.host/meutraa/etude/internal/config"
	"git.lost.host/meutraa/etude/internal/game"
	"git.lost.host/meutraa/etude/internal/render"
	"git.lost.host/meutraa/etude/internal/score"
	"git.lost.host/meutraa/etude/internal/theme"
	"git.lost.host/meutraa/etude/internal/timing"
	"github.com/eiannone/keyboard"
)

type Program struct {
	Renderer render.Renderer
	Theme    theme.Theme
	Scorer   score.Scorer

	chart *game.Chart
	data  *timing.TimingData
	keys  <-chan keyboard.KeyEvent

	rows, cols int
	cis        [game.NumColumns]int
	sideCol    int
	center     int

	noteCount, mineCount int64
	offsets              []score.Offset
	tally                score.Tally
	counts               []int
	sumOfDistance        time.Duration
	totalHits            float64
	mean, stdev          float64
}

func (p *Program) Layout(rows, cols int) {
	p.rows, p.cols = rows, cols
	mc := cols >> 1
	p.center = rows >> 1
	spacing := int(*config.ColumnSpacing)
	p.cis = [game.NumColumns]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	p.sideCol = p.cis[0] - 36
	if p.sideCol < 2 {
		p.sideCol = 2
	}
	p.counts = make([]int, len(config.Judgements))
	p.noteCount, p.mineCount = p.data.Counts()
}

func judge(d time.Duration) (int, *game.Judgement) {
	for i := 0; i < len(config.Judgements)-1; i++ {
		judgement := config.Judgements[i]
		if d < judgement.Time {
			return i, &judgement
		}
	}
	// This should never happen, since a check for d < MissDistance is made
	return -1, nil
}

func (p *Program) isRowInField(row int) bool {
	return row < p.rows && row > 0
}

func (p *Program) record(o score.Offset) {
	p.tally.Add(o, *config.Sensitivity)
	p.offsets = append(p.offsets, o)
}

// updateSpread recomputes mean and standard deviation of the signed hit
// errors recorded so far.
func (p *Program) updateSpread() {
	if p.totalHits < 2 {
		return
	}
	p.mean = float64(p.sumOfDistance) / p.totalHits
	p.stdev = 0.0
	for _, o := range p.offsets {
		if !o.Hit || !o.Type.Scoreable() {
			continue
		}
		xi := float64(o.Error) - p.mean
		p.stdev += xi * xi
	}
	p.stdev /= p.totalHits - 1
	p.stdev = math.Sqrt(p.stdev)
}

func (p *Program) handleKey(key keyboard.KeyEvent, duration time.Duration) {
	index := config.KeyColumn(key.Rune)
	if index < 0 {
		return
	}
	input := game.Input{Index: index, HitTime: duration + *config.Offset}

	note, distance := p.Scorer.Apply(p.data, &input, config.MissDistance)
	if nil == note {
		p.detonate(&input)
		return
	}

	p.record(score.Offset{Hit: true, Error: distance, Type: note.Type})
	p.totalHits += 1
	p.sumOfDistance += distance
	p.updateSpread()

	d := distance
	if d < 0 {
		d = -d
	}
	// because d is < MissDistance, this should never be nil
	idx, _ := judge(d)
	p.counts[idx]++
}

// detonate checks whether a press that matched no note sets off a mine.
func (p *Program) detonate(input *game.Input) {
	window := config.Judgements[4].Time
	for _, note := range p.data.Columns[input.Index] {
		if note.Type != game.NoteMine || note.HitTime != 0 {
			continue
		}
		d := input.HitTime - note.Time
		if d < 0 {
			d = -d
		}
		if d >= window {
			continue
		}
		note.HitTime = input.HitTime
		p.record(score.Offset{Hit: true, Error: input.HitTime - note.Time, Type: note.Type})
		col := p.cis[note.Column]
		p.Renderer.AddDecoration(col-1, p.center-1, "\033[1;31m╳", 120)
		return
	}
}

// Frame advances one render tick. Returns false when the session is over.
func (p *Program) Frame(duration time.Duration) bool {
	if duration-5*time.Second > p.data.LastTime() {
		return false
	}

	// get the key inputs that occured so far
	for i := 0; i < len(p.keys); i++ {
		key := <-p.keys
		if key.Key == keyboard.KeyEsc {
			return false
		}
		p.handleKey(key, duration)
	}

	// Render the hit bar
	barRow := p.rows - int(*config.BarRow)
	for i := 0; i < game.NumColumns; i++ {
		p.Renderer.Fill(barRow, p.cis[i], p.Theme.RenderHitField(i))
	}

	// Render notes
	for _, column := range p.data.Columns {
		for _, note := range column {
			col := p.cis[note.Column]
			if p.isRowInField(note.Row) {
				p.Renderer.Fill(note.Row, col, " ")
			}

			d := note.Time - (duration + *config.Offset)
			distance := int(math.Round(float64(d.Milliseconds()) / config.ScrollSpeed))
			note.Row = barRow - distance

			if !note.Miss && note.Row > p.rows && note.HitTime == 0 && note.Type.Scoreable() {
				p.counts[len(p.counts)-1]++
				note.Miss = true
				p.record(score.Offset{Hit: false, Type: note.Type})
				p.Renderer.AddDecoration(col-1, p.center-1, "\033[1;31m╭", 240)
				p.Renderer.AddDecoration(col+1, p.center-1, "\033[1;31m╮", 240)
				p.Renderer.AddDecoration(col-1, p.center, "\033[1;31m╰", 240)
				p.Renderer.AddDecoration(col+1, p.center, "\033[1;31m╯", 240)
			} else if note.HitTime == 0 && p.isRowInField(note.Row) {
				p.Renderer.Fill(note.Row, col, note.Sprite)
			}
		}
	}

	p.renderStats()
	return true
}

func (p *Program) renderStats() {
	if p.tally.Max > 0 {
		p.Renderer.Fill(9, p.sideCol, fmt.Sprintf("       Wife:  %6.2f%%", 100*p.tally.Score()))
	}
	p.Renderer.Fill(11, p.sideCol, fmt.Sprintf("      Stdev:  %6.2f ms", p.stdev/float64(time.Millisecond)))
	p.Renderer.Fill(12, p.sideCol, fmt.Sprintf("       Mean:  %6.2f ms", p.mean/float64(time.Millisecond)))
	p.Renderer.Fill(13, p.sideCol, fmt.Sprintf("      Total:  %6v", p.noteCount))
	p.Renderer.Fill(14, p.sideCol, fmt.Sprintf("      Mines:  %6v", p.mineCount))
	p.Renderer.Fill(15, p.sideCol, fmt.Sprintf("        BPM:  %6.0f", p.chart.Data.DisplayBPM))
	for i, judgement := range config.Judgements {
		p.Renderer.Fill(18+i, p.sideCol, fmt.Sprintf("%v:  %6v", judgement.Name, p.counts[i]))
	}
}

// Finish records every note the session never resolved, so that the
// final tally covers one record per note.
func (p *Program) Finish() {
	for _, column := range p.data.Columns {
		for _, note := range column {
			if note.HitTime == 0 && !note.Miss {
				p.record(score.Offset{Hit: false, Type: note.Type})
			}
		}
	}
}
