package theme

import (
	"math/big"

	"git.lost.host/meutraa/etude/internal/game"
)

type Theme interface {
	// Sprite is handed to the timing converter; its return value rides
	// along on each timed note as the rendering payload.
	Sprite(measure int, beat float64, position *big.Rat, t game.NoteType, column int) string

	RenderHitField(column int) string
}
