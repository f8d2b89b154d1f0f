package service

import (
	"context"
	"fmt"

	"wordboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileService persists each player's display name so a device can restore
// it on startup. The name is still passed explicitly on every score submit;
// this is a convenience, not ambient state.
type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

func (s *ProfileService) Get(ctx context.Context, playerID string) (*model.Profile, error) {
	var p model.Profile
	err := s.db.WithContext(ctx).Where("player_id = ?", playerID).First(&p).Error
	if err == gorm.ErrRecordNotFound {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileService) Set(ctx context.Context, playerID, name string) (*model.Profile, error) {
	p := &model.Profile{PlayerID: playerID, Name: name}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return p, nil
}
