package game

import (
	"time"
)

type Judgement struct {
	Time time.Duration
	Name string
}
