package theme

import (
	"fmt"
	"image/color"
	"math/big"

	"git.lost.host/meutraa/etude/internal/game"
)

type DefaultTheme struct{}

const (
	mineSym = "⨯"
	liftSym = "△"
	fakeSym = "◌"
	tailSym = "▘"
)

var (
	syms       = [...]string{"⬤", "⬤", "⬤", "⬤"}
	barSyms    = [...]string{"-", "-", "-", "-"}
	noteColors = map[int64]color.RGBA{
		1:  {R: 236, G: 30, B: 0},    // 1/4 red
		2:  {R: 0, G: 118, B: 236},   // 1/8 blue
		3:  {R: 106, G: 0, B: 236},   // 1/12 purple
		4:  {R: 236, G: 195, B: 0},   // 1/16 yellow
		5:  {R: 106, G: 106, B: 106}, // 1/20 grey???
		6:  {R: 236, G: 0, B: 106},   // 1/24 pink
		8:  {R: 236, G: 128, B: 0},   // 1/32 orange
		12: {R: 173, G: 236, B: 236}, // 1/48 light blue
		16: {R: 0, G: 236, B: 128},   // 1/64 green
		24: {R: 106, G: 106, B: 106}, // 1/96 grey
		32: {R: 106, G: 106, B: 106}, // 1/128 grey
		48: {R: 110, G: 147, B: 89},  // 1/192 olive
		64: {R: 106, G: 106, B: 106}, // 1/256 grey
		-1: {R: 255, G: 255, B: 255}, // other white
	}

	four = big.NewRat(4, 1)
)

// getNoteColor colors by beat subdivision. The position is a fraction
// of a measure, and a measure holds four beats.
func getNoteColor(position *big.Rat) color.RGBA {
	denom := new(big.Rat).Mul(position, four).Denom().Int64()
	col, ok := noteColors[denom]
	if !ok {
		return noteColors[-1]
	}
	return col
}

func paint(c color.RGBA, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) Sprite(measure int, beat float64, position *big.Rat, nt game.NoteType, column int) string {
	switch nt {
	case game.NoteMine:
		return paint(noteColors[1], mineSym)
	case game.NoteLift:
		return paint(getNoteColor(position), liftSym)
	case game.NoteFake:
		return paint(noteColors[5], fakeSym)
	case game.NoteHoldEnd:
		return paint(getNoteColor(position), tailSym)
	}
	return paint(getNoteColor(position), syms[column])
}

func (t *DefaultTheme) RenderHitField(column int) string {
	return barSyms[column]
}
