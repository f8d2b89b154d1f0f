package store

import (
	"context"

	"wordboard/internal/model"
)

// GameStore is the persistence contract for per-day game records. Fetch
// returns model.ErrNotFound when no game was started for the date; shape
// validation of what comes back is the service layer's job.
type GameStore interface {
	Fetch(ctx context.Context, threadKey, date string) (*model.ThreadGame, error)
	Upsert(ctx context.Context, game *model.ThreadGame) error
	ReplaceScores(ctx context.Context, threadKey, date string, scores model.PlayerScoreList) error
	History(ctx context.Context, threadKey string) ([]model.ThreadGame, error)
}
