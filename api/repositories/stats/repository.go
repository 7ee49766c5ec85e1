package repositories

import (
	"context"

	"valfantasy/pkg/database/models"
	"valfantasy/pkg/fantasy"

	"gorm.io/gorm"
)

// StatsRepository is the public interface for reading match stat records.
type StatsRepository interface {
	GetLinesForPlayers(ctx context.Context, playerIDs []uint) ([]fantasy.StatLine, error)
	GetAllLines(ctx context.Context) ([]fantasy.StatLine, error)
}

// statsRepository repository structure.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetLinesForPlayers returns the stored per-record point values for the
// given players. Aggregation happens in the core, not in SQL, so the
// formula stays in a single place.
func (sr *statsRepository) GetLinesForPlayers(ctx context.Context, playerIDs []uint) ([]fantasy.StatLine, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	var lines []fantasy.StatLine
	err := sr.db.WithContext(ctx).
		Model(&models.PlayerMatchStat{}).
		Select("player_id, fantasy_points").
		Where("player_id IN (?)", playerIDs).
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// GetAllLines returns every stored stat line, used by the leaderboard
// which touches every roster anyway.
func (sr *statsRepository) GetAllLines(ctx context.Context) ([]fantasy.StatLine, error) {
	var lines []fantasy.StatLine
	err := sr.db.WithContext(ctx).
		Model(&models.PlayerMatchStat{}).
		Select("player_id, fantasy_points").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}

	return lines, nil
}
