package repositories

import (
	"context"

	"valfantasy/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatRepository defines the write side interface for match stat records.
type StatRepository interface {
	AppendStatsBatch(ctx context.Context, stats []*models.PlayerMatchStat) error
}

// statRepository is the repository instance.
type statRepository struct {
	db *gorm.DB
}

// NewStatRepository creates and return the stat repository.
func NewStatRepository(db *gorm.DB) StatRepository {
	return &statRepository{db: db}
}

// AppendStatsBatch appends the observation rows for a window.
// Rows are immutable once written: a re-run against the same window
// hits the (player_id, match_id) unique index and is dropped.
func (sr *statRepository) AppendStatsBatch(ctx context.Context, stats []*models.PlayerMatchStat) error {
	if len(stats) == 0 {
		return nil
	}

	return sr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "player_id"}, {Name: "match_id"}},
		DoNothing: true,
	}).CreateInBatches(&stats, 100).Error
}
