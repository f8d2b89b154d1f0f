package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Score symbols: guess counts "1".."6", or "X" when the player failed to solve.
const (
	ScoreFailed = "X"
	ScoreOther  = "other" // aggregation bucket for unrecognized symbols
)

var ScoreSymbols = []string{"1", "2", "3", "4", "5", "6", ScoreFailed}

func ValidScore(s string) bool {
	switch s {
	case "1", "2", "3", "4", "5", "6", ScoreFailed:
		return true
	}
	return false
}

type PlayerScore struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score string `json:"score"`
}

// PlayerScoreList is stored as a single JSON column; the whole list is always
// written back at once (last write wins across concurrent submitters).
type PlayerScoreList []PlayerScore

func (l PlayerScoreList) Value() (driver.Value, error) {
	if l == nil {
		l = PlayerScoreList{}
	}
	return json.Marshal(l)
}

func (l *PlayerScoreList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = PlayerScoreList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported player_scores column type %T", src)
	}
}

// Upsert replaces the entry with the same id in place (position preserved),
// or appends a new entry when the id is unseen.
func (l PlayerScoreList) Upsert(id, name, score string) PlayerScoreList {
	for i := range l {
		if l[i].ID == id {
			l[i].Name = name
			l[i].Score = score
			return l
		}
	}
	return append(l, PlayerScore{ID: id, Name: name, Score: score})
}

// ThreadGame is one thread's game for one calendar date.
type ThreadGame struct {
	ID           int             `gorm:"primaryKey" json:"-"`
	ThreadKey    string          `gorm:"size:64;uniqueIndex:uk_thread_date" json:"thread_key"`
	GameDate     string          `gorm:"type:date;uniqueIndex:uk_thread_date" json:"date"`
	StartingWord string          `gorm:"size:16" json:"starting_word"`
	PlayerScores PlayerScoreList `gorm:"type:json" json:"player_scores"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ValidateShape rejects rows whose stored document is missing required fields.
// The column is schemaless JSON from the app's point of view; this is the one
// place read-side shape drift gets caught.
func (g *ThreadGame) ValidateShape() error {
	if g.StartingWord == "" {
		return fmt.Errorf("%w: missing starting word", ErrMalformedRecord)
	}
	for i, ps := range g.PlayerScores {
		if ps.ID == "" || ps.Score == "" {
			return fmt.Errorf("%w: score entry %d missing id or score", ErrMalformedRecord, i)
		}
	}
	return nil
}

// Profile persists a player's chosen display name.
type Profile struct {
	PlayerID  string    `gorm:"primaryKey;size:64" json:"player_id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ThreadGame) TableName() string { return "thread_games" }
func (Profile) TableName() string    { return "profiles" }
