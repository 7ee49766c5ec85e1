package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"valfantasy/api/cache"
	leaderboardservice "valfantasy/api/services/leaderboard"
	"valfantasy/pkg/config"
	"valfantasy/pkg/database"
	"valfantasy/pkg/redis"
)

// RevalidateLeaderboard recomputes the leaderboard from the store and
// refreshes the redis cache, so the first reader after an ingestion
// window doesn't pay for the full aggregation.
func RevalidateLeaderboard(cfg *config.Config) error {
	log.Println("Starting leaderboard revalidation")

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		return fmt.Errorf("couldn't get redis connection: %w", err)
	}

	memCache := cache.NewMemCache()

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		redisClient.Close()
		memCache.Close()
	}()

	service := leaderboardservice.NewLeaderboardService(&leaderboardservice.LeaderboardServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redisClient,
	})

	standings, err := service.ComputeLeaderboard(context.Background())
	if err != nil {
		return fmt.Errorf("couldn't compute the leaderboard: %w", err)
	}

	payload, err := json.Marshal(standings)
	if err != nil {
		return fmt.Errorf("couldn't marshal the leaderboard: %w", err)
	}

	err = redisClient.Set(
		context.Background(),
		leaderboardservice.LeaderboardCacheKey,
		string(payload),
		leaderboardservice.LeaderboardRedisCacheDuration,
	)
	if err != nil {
		return fmt.Errorf("couldn't refresh the leaderboard cache: %w", err)
	}

	log.Printf("Leaderboard revalidation completed with %d standings", len(standings))
	return nil
}
