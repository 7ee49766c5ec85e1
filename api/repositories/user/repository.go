package repositories

import (
	"context"

	"valfantasy/pkg/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository is the public interface for accessing identity records.
type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error)
}

// userRepository repository structure.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts or refreshes the identity record keyed by provider id.
// Safe to run on every login, the conflict target is the primary key.
func (ur *userRepository) Upsert(ctx context.Context, user *models.User) error {
	return ur.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"username",
			"avatar_url",
			"updated_at",
		}),
	}).Create(user).Error
}

// GetByIDs returns the users for a list of ids, mapped by id.
func (ur *userRepository) GetByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var users []models.User
	if err := ur.db.WithContext(ctx).Where("id IN (?)", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}

	usersMap := make(map[string]*models.User, len(users))
	for i := range users {
		usersMap[users[i].ID] = &users[i]
	}

	return usersMap, nil
}
