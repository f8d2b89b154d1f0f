package store

import (
	"context"
	"sort"
	"sync"

	"wordboard/internal/model"
)

// MemoryStore is a GameStore kept entirely in process memory, for tests and
// local development without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]*model.ThreadGame
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*model.ThreadGame)}
}

func gameKey(threadKey, date string) string { return threadKey + "|" + date }

func copyGame(g *model.ThreadGame) *model.ThreadGame {
	cp := *g
	cp.PlayerScores = append(model.PlayerScoreList{}, g.PlayerScores...)
	return &cp
}

func (s *MemoryStore) Fetch(ctx context.Context, threadKey, date string) (*model.ThreadGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[gameKey(threadKey, date)]
	if !ok {
		return nil, model.ErrNotFound
	}
	return copyGame(g), nil
}

func (s *MemoryStore) Upsert(ctx context.Context, game *model.ThreadGame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[gameKey(game.ThreadKey, game.GameDate)] = copyGame(game)
	return nil
}

func (s *MemoryStore) ReplaceScores(ctx context.Context, threadKey, date string, scores model.PlayerScoreList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[gameKey(threadKey, date)]
	if !ok {
		return model.ErrNotFound
	}
	g.PlayerScores = append(model.PlayerScoreList{}, scores...)
	return nil
}

func (s *MemoryStore) History(ctx context.Context, threadKey string) ([]model.ThreadGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var games []model.ThreadGame
	for _, g := range s.games {
		if g.ThreadKey == threadKey {
			games = append(games, *copyGame(g))
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].GameDate < games[j].GameDate })
	return games, nil
}
