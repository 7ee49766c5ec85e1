package repositories

import (
	"context"
	"fmt"
	"strings"

	"valfantasy/api/filters"
	"valfantasy/pkg/database/models"
	"valfantasy/pkg/messages"

	"gorm.io/gorm"
)

// PlayerRepository is the public interface for accessing the player data.
type PlayerRepository interface {
	ListActive(ctx context.Context, filters *filters.PlayerListFilter) ([]*models.Player, error)
	GetByIDs(ctx context.Context, playerIDs []uint) (map[uint]*models.Player, error)
}

// playerRepository repository structure.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// ListActive returns the active players matching the filters,
// ordered by descending MMR the way the draft page lists them.
func (pr *playerRepository) ListActive(ctx context.Context, filters *filters.PlayerListFilter) ([]*models.Player, error) {
	if filters == nil {
		return nil, fmt.Errorf(messages.FiltersNotNil)
	}

	var players []*models.Player
	query := pr.db.WithContext(ctx).Where("is_active = ?", true)

	// Add the search parameters only if the respective value was passed.
	if name := strings.TrimSpace(filters.Name); name != "" {
		query = query.Where("name ILIKE ?", name+"%")
	}

	if filters.MaxMMR != 0 {
		query = query.Where("mmr <= ?", filters.MaxMMR)
	}

	query = query.Order("mmr desc")

	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}

	return players, nil
}

// GetByIDs returns the players for a list of ids, mapped by id.
// Missing ids are simply absent from the map.
func (pr *playerRepository) GetByIDs(ctx context.Context, playerIDs []uint) (map[uint]*models.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	var players []models.Player
	result := pr.db.WithContext(ctx).Where("id IN (?)", playerIDs).Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}

	playersMap := make(map[uint]*models.Player, len(players))
	for i := range players {
		playersMap[players[i].ID] = &players[i]
	}

	return playersMap, nil
}
