package testutil

import (
	"context"

	"valfantasy/pkg/database/models"

	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository mocks the write side player repository.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) UpsertPlayersBatch(ctx context.Context, players []*models.Player) error {
	args := m.Called(ctx, players)
	return args.Error(0)
}

func (m *MockPlayerRepository) GetPlayersByNames(ctx context.Context, names []string) (map[string]*models.Player, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(map[string]*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) DeactivateStale(ctx context.Context, olderThanDays int) (int64, error) {
	args := m.Called(ctx, olderThanDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockStatRepository mocks the stat record repository.
type MockStatRepository struct {
	mock.Mock
}

func (m *MockStatRepository) AppendStatsBatch(ctx context.Context, stats []*models.PlayerMatchStat) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}
