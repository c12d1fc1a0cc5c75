package config

import (
	"time"

	"git.lost.host/meutraa/etude/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory           = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate                = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset              = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay               = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	Sensitivity         = kingpin.Flag("sensitivity", "Timing window multiplier").Default("1.0").Short('t').Float64()
	ColumnSpacing       = kingpin.Flag("spacing", "Columns between keys").Default("6").Short('S').Uint()
	RefreshRate         = kingpin.Flag("refresh-rate", "Monitor refresh rate").Default("240.0").Short('R').Float()
	FramePeriod         = kingpin.Flag("frame-period", "Render frame period").Default("1ms").Short('p').Duration()
	scrollSpeedModifier = kingpin.Flag("scroll-speed", "Scroll speed, lower is faster").Default("3").Short('s').Uint()
	keys                = kingpin.Flag("keys", "Keys for the 4 columns").Default("_-mp").Short('k').String()
	BarRow              = kingpin.Flag("bar-row", "Console row to render hit bar").Default("8").Uint()
	ScrollSpeed         float64
	MissDistance        time.Duration // I count off the screen as missed
	Judgements          []game.Judgement
)

func Keys() []rune {
	return []rune(*keys)
}

func KeyColumn(r rune) int {
	for i, c := range Keys() {
		if r == c {
			return i
		}
	}
	return -1
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	ScrollSpeed = float64(*scrollSpeedModifier) * 1000 / *RefreshRate
	MissDistance = time.Duration(float64(*BarRow)*ScrollSpeed) * time.Millisecond
	Judgements = []game.Judgement{
		{Time: 5 * time.Millisecond, Name: "      \033[1;31mE\033[38;5;208mx\033[1;33ma\033[1;32mc\033[38;5;153mt\033[0m"},
		{Time: 10 * time.Millisecond, Name: " \033[1;35mRidiculous\033[0m"},
		{Time: 20 * time.Millisecond, Name: "  \033[38;5;153mMarvelous\033[0m"},
		{Time: 40 * time.Millisecond, Name: "      \033[1;36mGreat\033[0m"},
		{Time: 60 * time.Millisecond, Name: "       \033[1;32mGood\033[0m"},
		{Time: MissDistance, Name: "       \033[1;31mOkay\033[0m"},
		{Time: -1, Name: "       \033[1;31mMiss\033[0m"},
	}
}
