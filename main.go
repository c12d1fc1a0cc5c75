package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/etude/internal/config"
	"git.lost.host/meutraa/etude/internal/parser"
	"git.lost.host/meutraa/etude/internal/render"
	"git.lost.host/meutraa/etude/internal/score"
	"git.lost.host/meutraa/etude/internal/theme"
	"git.lost.host/meutraa/etude/internal/timing"
	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}
	var scr score.Scorer = &score.DefaultScorer{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	var mp3File, ogg, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		switch path.Ext(info.Name()) {
		case ".mp3":
			mp3File = p
		case ".ogg":
			ogg = p
		case ".sm":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	if (mp3File == "" && ogg == "") || chartFile == "" {
		return errors.New("unable to find .sm and .mp3/.ogg file in given directory")
	}

	chart, err := psr.Parse(chartFile)
	if nil != err {
		return err
	}

	data := timing.FromChart(chart, th.Sprite, *config.Rate)
	noteCount, mineCount := data.Counts()
	if noteCount == 0 {
		return errors.New("chart has no scoreable notes")
	}

	if err := scr.Init(); nil != err {
		return fmt.Errorf("unable to open replay store: %w", err)
	}
	defer scr.Deinit()

	fmt.Printf("%v  (%v notes, %v mines)\n", chart.Data.Title, noteCount, mineCount)
	for _, replay := range scr.Load(chart) {
		fmt.Printf("  wife %6.2f%%  at rate %.2f\n",
			100*score.Calculate(replay.Offsets, replay.Sensitivity), replay.Rate)
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	audioFile := mp3File
	if ogg != "" {
		audioFile = ogg
	}
	log.Printf("Opening %v (%v)\n", audioFile, chartFile)
	f, err := os.Open(audioFile)
	if err != nil {
		return err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if ogg != "" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		return err
	}
	defer streamer.Close()

	speaker.Init(beep.SampleRate(math.Round(float64(format.SampleRate)*(*config.Rate))), format.SampleRate.N(time.Second/60))

	program := &Program{
		Renderer: r,
		Theme:    th,
		Scorer:   scr,
		chart:    chart,
		data:     data,
		keys:     keyChannel,
	}
	program.Layout(rows, columns)

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return err
	}

	go func() {
		time.Sleep(*config.Delay)
		speaker.Play(streamer)
	}()

	r.RenderLoop(*config.Delay, func(startTime time.Time, duration time.Duration) bool {
		return program.Frame(duration)
	})

	// Restore the terminal state before printing the summary
	if err := r.Deinit(); nil != err {
		log.Println("unable to restore terminal", err)
	}

	program.Finish()
	scr.Save(chart, program.offsets, *config.Rate, *config.Sensitivity)

	fmt.Printf("wife %6.2f%%  (%v judged)\n", 100*program.tally.Score(), len(program.offsets))
	return nil
}
