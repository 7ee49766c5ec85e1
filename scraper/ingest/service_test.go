package ingest

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	internaltests "valfantasy/internal/testutil"
	"valfantasy/pkg/config"
	"valfantasy/pkg/database/models"
	"valfantasy/pkg/logger"
	"valfantasy/pkg/messages"
	"valfantasy/scraper/stats"
	"valfantasy/scraper/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

const testWindowID = "window-2025-05-01"

func setupTestService(t *testing.T) (*Service, *testutil.MockPlayerRepository, *testutil.MockStatRepository) {
	t.Helper()

	log, err := logger.CreateLogger(config.BucketConfig{})
	assert.NoError(t, err)

	service := NewService(&ServiceDeps{
		DB:     new(gorm.DB),
		Logger: log,
	})

	mockPlayerRepository := new(testutil.MockPlayerRepository)
	mockStatRepository := new(testutil.MockStatRepository)

	service.Players = mockPlayerRepository
	service.Stats = mockStatRepository

	return service, mockPlayerRepository, mockStatRepository
}

func sampleRows() []stats.RawPlayerStat {
	return []stats.RawPlayerStat{
		{Name: "aspas", Kills: 10, Deaths: 5, Assists: 8, ACS: 220},
		{Name: "less", Kills: 7, Deaths: 9, Assists: 12, ACS: 180.5},
	}
}

func TestIngestMatchBatch(t *testing.T) {
	t.Run("computesPointsAndAppends", func(t *testing.T) {
		service, mockPlayerRepository, mockStatRepository := setupTestService(t)

		mockPlayerRepository.On("UpsertPlayersBatch", mock.Anything, mock.MatchedBy(func(players []*models.Player) bool {
			return len(players) == 2 && players[0].Name == "aspas" && players[0].IsActive
		})).Return(nil)

		mockPlayerRepository.On("GetPlayersByNames", mock.Anything, []string{"aspas", "less"}).
			Return(map[string]*models.Player{
				"aspas": {ID: 1, Name: "aspas"},
				"less":  {ID: 2, Name: "less"},
			}, nil)

		mockStatRepository.On("AppendStatsBatch", mock.Anything, mock.MatchedBy(func(records []*models.PlayerMatchStat) bool {
			if len(records) != 2 {
				return false
			}
			first := records[0]
			// 2*10 - 5 + 1.5*8 + 0.05*220 = 38.
			return first.PlayerID == 1 &&
				first.MatchID == testWindowID &&
				first.FantasyPoints == 38
		})).Return(nil)

		err := service.IngestMatchBatch(context.Background(), testWindowID, sampleRows())

		assert.NoError(t, err)
		mockPlayerRepository.AssertExpectations(t)
		mockStatRepository.AssertExpectations(t)
	})

	t.Run("emptyBatchIsNoop", func(t *testing.T) {
		service, mockPlayerRepository, mockStatRepository := setupTestService(t)

		err := service.IngestMatchBatch(context.Background(), testWindowID, nil)

		assert.NoError(t, err)
		mockPlayerRepository.AssertNotCalled(t, "UpsertPlayersBatch", mock.Anything, mock.Anything)
		mockStatRepository.AssertNotCalled(t, "AppendStatsBatch", mock.Anything, mock.Anything)
	})

	t.Run("skipsUnresolvedPlayer", func(t *testing.T) {
		service, mockPlayerRepository, mockStatRepository := setupTestService(t)

		mockPlayerRepository.On("UpsertPlayersBatch", mock.Anything, mock.Anything).Return(nil)
		mockPlayerRepository.On("GetPlayersByNames", mock.Anything, []string{"aspas", "less"}).
			Return(map[string]*models.Player{
				"aspas": {ID: 1, Name: "aspas"},
			}, nil)

		mockStatRepository.On("AppendStatsBatch", mock.Anything, mock.MatchedBy(func(records []*models.PlayerMatchStat) bool {
			return len(records) == 1 && records[0].PlayerID == 1
		})).Return(nil)

		err := service.IngestMatchBatch(context.Background(), testWindowID, sampleRows())

		assert.NoError(t, err)
		mockStatRepository.AssertExpectations(t)
	})

	t.Run("upsertError", func(t *testing.T) {
		service, mockPlayerRepository, mockStatRepository := setupTestService(t)

		mockPlayerRepository.On("UpsertPlayersBatch", mock.Anything, mock.Anything).
			Return(errors.New(internaltests.DatabaseError))

		err := service.IngestMatchBatch(context.Background(), testWindowID, sampleRows())

		assert.Error(t, err)
		mockStatRepository.AssertNotCalled(t, "AppendStatsBatch", mock.Anything, mock.Anything)
	})

	t.Run("rejectsOverlappingRuns", func(t *testing.T) {
		service, mockPlayerRepository, mockStatRepository := setupTestService(t)

		release := make(chan struct{})

		mockPlayerRepository.On("UpsertPlayersBatch", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { <-release }).
			Return(nil)
		mockPlayerRepository.On("GetPlayersByNames", mock.Anything, mock.Anything).
			Return(map[string]*models.Player{
				"aspas": {ID: 1, Name: "aspas"},
				"less":  {ID: 2, Name: "less"},
			}, nil)
		mockStatRepository.On("AppendStatsBatch", mock.Anything, mock.Anything).Return(nil)

		var wg sync.WaitGroup
		wg.Add(1)

		firstErr := make(chan error, 1)
		go func() {
			defer wg.Done()
			firstErr <- service.IngestMatchBatch(context.Background(), testWindowID, sampleRows())
		}()

		// Wait until the first run holds the guard, then race a second one.
		for !service.running.Load() {
			runtime.Gosched()
		}

		err := service.IngestMatchBatch(context.Background(), "window-other", sampleRows())
		assert.EqualError(t, err, messages.IngestInProgress)

		close(release)
		wg.Wait()
		assert.NoError(t, <-firstErr)
	})
}
