package service

import (
	"context"
	"fmt"
	"sort"

	"wordboard/internal/model"
	"wordboard/internal/store"
)

type StatsService struct {
	store store.GameStore
}

func NewStatsService(st store.GameStore) *StatsService {
	return &StatsService{store: st}
}

// Aggregate folds a set of day records into per-player historical stats:
// last-seen display name (latest occurrence wins), games played, and a
// frequency distribution over the score symbols. Entries missing id or score
// are skipped rather than aborting the whole computation; a symbol outside
// the known set lands in the "other" bucket.
func Aggregate(games []model.ThreadGame) map[string]*model.PlayerStats {
	stats := make(map[string]*model.PlayerStats)
	for _, g := range games {
		for _, ps := range g.PlayerScores {
			if ps.ID == "" || ps.Score == "" {
				continue
			}
			st, ok := stats[ps.ID]
			if !ok {
				st = model.NewPlayerStats(ps.ID)
				stats[ps.ID] = st
			}
			st.Name = ps.Name
			st.TotalGames++
			if model.ValidScore(ps.Score) {
				st.Distribution[ps.Score]++
			} else {
				st.Distribution[model.ScoreOther]++
			}
		}
	}
	return stats
}

// ThreadStats aggregates the thread's whole history, sorted by name then id
// for stable display.
func (s *StatsService) ThreadStats(ctx context.Context, threadKey string) ([]*model.PlayerStats, error) {
	games, err := s.store.History(ctx, threadKey)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	stats := Aggregate(games)
	out := make([]*model.PlayerStats, 0, len(stats))
	for _, st := range stats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
