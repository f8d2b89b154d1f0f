package service

import (
	"context"
	"fmt"

	"wordboard/internal/logger"
	"wordboard/internal/model"
	"wordboard/internal/store"
)

// GameService owns the per-day game record operations. Validation of caller
// input (word length, score symbols, date format) happens at the HTTP layer;
// this layer validates what comes back from the store.
type GameService struct {
	store     store.GameStore
	hub       *WatchHub
	messenger *Messenger
}

func NewGameService(st store.GameStore, hub *WatchHub, messenger *Messenger) *GameService {
	return &GameService{store: st, hub: hub, messenger: messenger}
}

// Fetch returns the day record, model.ErrNotFound when no game was started,
// or model.ErrMalformedRecord when the stored row is missing required fields.
// Callers render the malformed case exactly like absence; the distinction
// only survives in logs and errors.Is checks.
func (s *GameService) Fetch(ctx context.Context, threadKey, date string) (*model.ThreadGame, error) {
	g, err := s.store.Fetch(ctx, threadKey, date)
	if err != nil {
		return nil, err
	}
	if err := g.ValidateShape(); err != nil {
		logger.Warn("game.malformed", "thread", threadKey, "date", date, "err", err)
		return nil, err
	}
	return g, nil
}

// Start creates the day record with an empty score list, overwriting any
// existing record for the date. The starting word arrives already upper-cased
// and length-checked.
func (s *GameService) Start(ctx context.Context, threadKey, date, startingWord string) (*model.ThreadGame, error) {
	g := &model.ThreadGame{
		ThreadKey:    threadKey,
		GameDate:     date,
		StartingWord: startingWord,
		PlayerScores: model.PlayerScoreList{},
	}
	if err := s.store.Upsert(ctx, g); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	logger.Info("game.start", "thread", threadKey, "date", date, "word", startingWord)
	s.hub.Publish(threadKey, date, g)
	s.messenger.AnnounceGameStart(date, startingWord)
	return g, nil
}

// SubmitScore read-modify-writes the score list: an existing entry for the
// player is replaced in place, otherwise one is appended. The whole list is
// written back in a single call, so concurrent submitters race last-write-wins.
func (s *GameService) SubmitScore(ctx context.Context, threadKey, date, playerID, name, score string) (*model.ThreadGame, error) {
	g, err := s.Fetch(ctx, threadKey, date)
	if err != nil {
		return nil, err
	}
	g.PlayerScores = g.PlayerScores.Upsert(playerID, name, score)
	if err := s.store.ReplaceScores(ctx, threadKey, date, g.PlayerScores); err != nil {
		return nil, fmt.Errorf("submit score: %w", err)
	}
	logger.Info("score.submit", "thread", threadKey, "date", date, "player", playerID, "score", score)
	s.hub.Publish(threadKey, date, g)
	return g, nil
}

// History returns every day record for the thread, oldest first.
func (s *GameService) History(ctx context.Context, threadKey string) ([]model.ThreadGame, error) {
	return s.store.History(ctx, threadKey)
}
