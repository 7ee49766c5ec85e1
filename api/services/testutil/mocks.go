package testutil

import (
	"context"
	"testing"
	"time"

	"valfantasy/api/filters"
	"valfantasy/pkg/database/models"
	"valfantasy/pkg/fantasy"

	"github.com/stretchr/testify/mock"
)

// DefaultTimerCtx is the context type the cached services pass to redis.
const DefaultTimerCtx = "*context.timerCtx"

// VerifyAllMocks asserts the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Repository mocks.
// ============================================================================

// MockPlayerRepository mocks the read side player repository.
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) ListActive(ctx context.Context, filters *filters.PlayerListFilter) ([]*models.Player, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetByIDs(ctx context.Context, playerIDs []uint) (map[uint]*models.Player, error) {
	args := m.Called(ctx, playerIDs)
	return args.Get(0).(map[uint]*models.Player), args.Error(1)
}

// MockRosterRepository mocks the fantasy team repository.
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) GetByUserID(ctx context.Context, userID string) (*models.FantasyTeam, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*models.FantasyTeam), args.Error(1)
}

func (m *MockRosterRepository) Upsert(ctx context.Context, team *models.FantasyTeam) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockRosterRepository) ListAll(ctx context.Context) ([]models.FantasyTeam, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FantasyTeam), args.Error(1)
}

// MockStatsRepository mocks the stat record repository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetLinesForPlayers(ctx context.Context, playerIDs []uint) ([]fantasy.StatLine, error) {
	args := m.Called(ctx, playerIDs)
	return args.Get(0).([]fantasy.StatLine), args.Error(1)
}

func (m *MockStatsRepository) GetAllLines(ctx context.Context) ([]fantasy.StatLine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]fantasy.StatLine), args.Error(1)
}

// MockUserRepository mocks the identity record repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[string]*models.User), args.Error(1)
}

// ============================================================================
// Cache mocks.
// ============================================================================

// MockMemCache mocks the in-memory TTL cache.
type MockMemCache struct {
	mock.Mock
}

func (m *MockMemCache) Get(key string) any {
	args := m.Called(key)
	return args.Get(0)
}

func (m *MockMemCache) Set(key string, value any, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache) Close() {
	m.Called()
}

// MockRedisClient mocks the redis wrapper surface the services use.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
