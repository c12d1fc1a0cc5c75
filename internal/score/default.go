package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	"git.lost.host/meutraa/etude/internal/game"
	"git.lost.host/meutraa/etude/internal/timing"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", "./replays.db")
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  sensitivity real,
		  offsets bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		return nil
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(c.Body))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(c *game.Chart, offsets []Offset, rate, sensitivity float64) {
	data, err := json.Marshal(offsets)
	if nil != err {
		log.Println("unable to marshal offsets", err)
		return
	}
	_, err = s.db.Exec("insert into replays(sum, rate, sensitivity, offsets) values(?, ?, ?, ?)",
		s.hashChart(c), rate, sensitivity, data)
	if nil != err {
		log.Println("unable to save replay")
		return
	}
}

func (s *DefaultScorer) Load(c *game.Chart) []Replay {
	replays := []Replay{}
	rows, err := s.db.Query("select sum, rate, sensitivity, offsets from replays where sum = ?", s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load replays", err)
		return replays
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var data []byte
		var rate, sensitivity float64
		rows.Scan(&sum, &rate, &sensitivity, &data)
		var offsets []Offset
		if err := json.Unmarshal(data, &offsets); nil != err {
			log.Println("unable to unmarshal replay offsets")
			continue
		}
		replays = append(replays, Replay{
			Sum:         sum,
			Rate:        rate,
			Sensitivity: sensitivity,
			Offsets:     offsets,
		})
	}
	return replays
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Apply matches a key press to the closest unhit, scoreable note in its
// column. The note stream is time ordered, so the scan stops as soon as
// the distance grows again. Returns nil when nothing is inside the miss
// window.
func (s *DefaultScorer) Apply(data *timing.TimingData, input *game.Input, miss time.Duration) (*timing.TimedNote, time.Duration) {
	if input.Index < 0 || input.Index >= game.NumColumns {
		return nil, 0
	}

	var closestNote *timing.TimedNote
	absDistance := time.Hour * 24
	distance := time.Hour * 24

	for _, note := range data.Columns[input.Index] {
		if note.HitTime != 0 || !note.Type.Scoreable() {
			continue
		}
		dd := input.HitTime - note.Time
		d := abs(dd)
		if d < absDistance {
			distance = dd
			absDistance = d
			closestNote = note
		} else if nil != closestNote {
			// already found the closest, and this d is > md
			break
		}
	}

	if nil == closestNote || absDistance >= miss {
		return nil, 0
	}
	closestNote.HitTime = input.HitTime
	return closestNote, distance
}
