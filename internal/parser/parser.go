package parser

import "git.lost.host/meutraa/etude/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
