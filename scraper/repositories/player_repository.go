package repositories

import (
	"context"

	"valfantasy/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository defines the write side interface for player data.
type PlayerRepository interface {
	UpsertPlayersBatch(ctx context.Context, players []*models.Player) error
	GetPlayersByNames(ctx context.Context, names []string) (map[string]*models.Player, error)
	DeactivateStale(ctx context.Context, olderThanDays int) (int64, error)
}

// playerRepository is the repository instance.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates and return the player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// UpsertPlayersBatch inserts or refreshes players keyed by name.
// The scrape always carries the full season totals, so last write wins.
// The mmr column is left alone, it is maintained by the league admins.
func (pr *playerRepository) UpsertPlayersBatch(ctx context.Context, players []*models.Player) error {
	if len(players) == 0 {
		return nil
	}

	return pr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kills",
			"deaths",
			"assists",
			"acs",
			"is_active",
			"updated_at",
		}),
	}).CreateInBatches(&players, 100).Error
}

// GetPlayersByNames returns the players for a list of names, mapped by name.
func (pr *playerRepository) GetPlayersByNames(ctx context.Context, names []string) (map[string]*models.Player, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var players []models.Player
	result := pr.db.WithContext(ctx).Where("name IN (?)", names).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	playersMap := make(map[string]*models.Player, len(players))
	for i := range players {
		playersMap[players[i].Name] = &players[i]
	}

	return playersMap, nil
}

// DeactivateStale flags players that stopped appearing on the stats
// page. Players are never deleted, rosters may still reference them.
func (pr *playerRepository) DeactivateStale(ctx context.Context, olderThanDays int) (int64, error) {
	result := pr.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("is_active = ?", true).
		Where("updated_at < NOW() - make_interval(days => ?)", olderThanDays).
		Update("is_active", false)

	return result.RowsAffected, result.Error
}
