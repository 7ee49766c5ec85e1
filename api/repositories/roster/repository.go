package repositories

import (
	"context"
	"errors"
	"fmt"

	"valfantasy/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RosterRepository is the public interface for accessing fantasy teams.
type RosterRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.FantasyTeam, error)
	Upsert(ctx context.Context, team *models.FantasyTeam) error
	ListAll(ctx context.Context) ([]models.FantasyTeam, error)
}

// rosterRepository repository structure.
type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository creates a roster repository.
func NewRosterRepository(db *gorm.DB) RosterRepository {
	return &rosterRepository{db: db}
}

// GetByUserID returns the roster of a user, or nil when none was submitted yet.
func (rr *rosterRepository) GetByUserID(ctx context.Context, userID string) (*models.FantasyTeam, error) {
	var team models.FantasyTeam
	if err := rr.db.WithContext(ctx).Where("user_id = ?", userID).First(&team).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't fetch the roster: %v", err)
	}

	return &team, nil
}

// Upsert overwrites the user roster wholesale.
// Each user owns exactly one row, so last write wins is safe here.
func (rr *rosterRepository) Upsert(ctx context.Context, team *models.FantasyTeam) error {
	return rr.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"player_ids",
			"mmr_total",
			"updated_at",
		}),
	}).Create(team).Error
}

// ListAll returns every submitted roster for the leaderboard.
func (rr *rosterRepository) ListAll(ctx context.Context) ([]models.FantasyTeam, error) {
	var teams []models.FantasyTeam
	if err := rr.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
