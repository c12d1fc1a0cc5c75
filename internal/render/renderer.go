package render

import (
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(col, row int, content string, frames int)
	RenderLoop(delay time.Duration, render func(startTime time.Time, duration time.Duration) bool)
	Fill(row, column int, message string)
}
