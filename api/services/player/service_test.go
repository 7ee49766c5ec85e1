package playerservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"valfantasy/api/dto"
	"valfantasy/api/filters"
	"valfantasy/api/services/testutil"
	internaltests "valfantasy/internal/testutil"
	"valfantasy/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupTestService() (*PlayerService, *testutil.MockMemCache, *testutil.MockRedisClient, *testutil.MockPlayerRepository) {
	mockMemCache := new(testutil.MockMemCache)
	mockRedis := new(testutil.MockRedisClient)

	service := NewPlayerService(&PlayerServiceDeps{
		DB:       new(gorm.DB),
		MemCache: mockMemCache,
		Redis:    mockRedis,
	})

	mockPlayerRepository := new(testutil.MockPlayerRepository)
	service.PlayerRepository = mockPlayerRepository

	return service, mockMemCache, mockRedis, mockPlayerRepository
}

func samplePlayers() []*models.Player {
	return []*models.Player{
		{ID: 1, Name: "aspas", MMR: 480, Kills: 120, Deaths: 70, Assists: 30, ACS: 265.4, IsActive: true},
		{ID: 2, Name: "less", MMR: 410, Kills: 90, Deaths: 65, Assists: 55, ACS: 221.0, IsActive: true},
	}
}

// Run the tests on the different cache strategies.
func TestListPlayers(t *testing.T) {
	t.Run("memoryCacheHit", func(t *testing.T) {
		service, mockMemCache, _, _ := setupTestService()

		var dtoHelper dto.PlayerResult
		expected := dtoHelper.FromModelSlice(samplePlayers())
		mockMemCache.On("Get", "players").Return(expected)

		result, err := service.ListPlayers(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)

		testutil.VerifyAllMocks(t, mockMemCache)
	})

	t.Run("redisCacheHit", func(t *testing.T) {
		service, mockMemCache, mockRedis, _ := setupTestService()

		var dtoHelper dto.PlayerResult
		expected := dtoHelper.FromModelSlice(samplePlayers())
		cached, err := json.Marshal(expected)
		assert.NoError(t, err)

		mockMemCache.On("Get", "players").Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(testutil.DefaultTimerCtx), "players").
			Return(string(cached), nil)
		mockMemCache.On("Set", "players", expected, PlayersMemoryCacheDuration).Return()

		result, err := service.ListPlayers(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)

		testutil.VerifyAllMocks(t, mockMemCache, mockRedis)
	})

	t.Run("storeFallback", func(t *testing.T) {
		service, mockMemCache, mockRedis, mockPlayerRepository := setupTestService()

		mockMemCache.On("Get", "players").Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(testutil.DefaultTimerCtx), "players").
			Return("", errors.New("redis unavailable"))

		mockPlayerRepository.On("ListActive", mock.Anything, (*filters.PlayerListFilter)(nil)).
			Return(samplePlayers(), nil)

		mockMemCache.On("Set", "players", mock.Anything, PlayersMemoryCacheDuration).Return()
		mockRedis.On("Set", mock.Anything, "players", mock.Anything, PlayersRedisCacheDuration).
			Return(nil)

		result, err := service.ListPlayers(context.Background(), nil)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "aspas", result[0].Name)

		testutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository)
	})

	t.Run("emptyResultSkipsCaches", func(t *testing.T) {
		service, mockMemCache, mockRedis, mockPlayerRepository := setupTestService()

		mockMemCache.On("Get", "players").Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(testutil.DefaultTimerCtx), "players").
			Return("", nil)
		mockPlayerRepository.On("ListActive", mock.Anything, (*filters.PlayerListFilter)(nil)).
			Return([]*models.Player{}, nil)

		result, err := service.ListPlayers(context.Background(), nil)

		assert.NoError(t, err)
		assert.Empty(t, result)

		mockMemCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
		testutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository)
	})

	t.Run("repositoryError", func(t *testing.T) {
		service, mockMemCache, mockRedis, mockPlayerRepository := setupTestService()

		mockMemCache.On("Get", "players").Return(nil)
		mockRedis.On("Get", mock.AnythingOfType(testutil.DefaultTimerCtx), "players").
			Return("", nil)
		dbFailure := internaltests.GetMockRepoError[[]*models.Player]()
		mockPlayerRepository.On("ListActive", mock.Anything, (*filters.PlayerListFilter)(nil)).
			Return(dbFailure.Data, dbFailure.Err)

		result, err := service.ListPlayers(context.Background(), nil)

		assert.Nil(t, result)
		assert.Error(t, err)

		testutil.VerifyAllMocks(t, mockMemCache, mockRedis, mockPlayerRepository)
	})
}

// The cache key must encode every filter so different filters never
// share an entry.
func TestGetPlayersKey(t *testing.T) {
	service, _, _, _ := setupTestService()

	tests := []struct {
		name     string
		filter   *filters.PlayerListFilter
		expected string
	}{
		{
			name:     "noFilter",
			filter:   nil,
			expected: "players",
		},
		{
			name:     "nameOnly",
			filter:   &filters.PlayerListFilter{Name: "Aspas"},
			expected: "players:name_aspas",
		},
		{
			name:     "mmrOnly",
			filter:   &filters.PlayerListFilter{MaxMMR: 400},
			expected: "players:mmr_400",
		},
		{
			name:     "both",
			filter:   &filters.PlayerListFilter{Name: "less", MaxMMR: 450},
			expected: "players:name_less:mmr_450",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.getPlayersKey(tt.filter))
		})
	}
}
