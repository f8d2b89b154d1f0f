package store

import (
	"context"
	"fmt"

	"wordboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) GameStore {
	return &gormStore{db: db}
}

func (s *gormStore) Fetch(ctx context.Context, threadKey, date string) (*model.ThreadGame, error) {
	var g model.ThreadGame
	err := s.db.WithContext(ctx).
		Where("thread_key = ? AND game_date = ?", threadKey, date).
		First(&g).Error
	if err == gorm.ErrRecordNotFound {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query game: %w", err)
	}
	return &g, nil
}

// Upsert creates the day record, or overwrites starting word and scores when
// one already exists for the (thread_key, game_date) pair.
func (s *gormStore) Upsert(ctx context.Context, game *model.ThreadGame) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "thread_key"}, {Name: "game_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"starting_word", "player_scores", "updated_at"}),
	}).Create(game).Error
	if err != nil {
		return fmt.Errorf("upsert game: %w", err)
	}
	return nil
}

func (s *gormStore) ReplaceScores(ctx context.Context, threadKey, date string, scores model.PlayerScoreList) error {
	err := s.db.WithContext(ctx).Model(&model.ThreadGame{}).
		Where("thread_key = ? AND game_date = ?", threadKey, date).
		Update("player_scores", scores).Error
	if err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}

func (s *gormStore) History(ctx context.Context, threadKey string) ([]model.ThreadGame, error) {
	var games []model.ThreadGame
	err := s.db.WithContext(ctx).
		Where("thread_key = ?", threadKey).
		Order("game_date ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return games, nil
}
