package leaderboardservice

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"valfantasy/api/cache"
	rosterrepo "valfantasy/api/repositories/roster"
	statsrepo "valfantasy/api/repositories/stats"
	userrepo "valfantasy/api/repositories/user"
	"valfantasy/pkg/fantasy"
	"valfantasy/pkg/messages"

	"gorm.io/gorm"
)

const (
	LeaderboardMemoryCacheDuration = 5 * time.Minute
	LeaderboardRedisCacheDuration  = time.Hour

	// LeaderboardCacheKey is shared with the scheduler revalidation job.
	LeaderboardCacheKey = "leaderboard"
)

// LeaderboardRedisClient is the redis surface the leaderboard service needs.
type LeaderboardRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// LeaderboardService ranks every submitted roster by its aggregate total.
type LeaderboardService struct {
	db               *gorm.DB
	memCache         cache.MemCache
	redis            LeaderboardRedisClient
	RosterRepository rosterrepo.RosterRepository
	StatsRepository  statsrepo.StatsRepository
	UserRepository   userrepo.UserRepository
}

// LeaderboardServiceDeps is the dependency list for the leaderboard service.
type LeaderboardServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
	Redis    LeaderboardRedisClient
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(deps *LeaderboardServiceDeps) *LeaderboardService {
	return &LeaderboardService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		RosterRepository: rosterrepo.NewRosterRepository(deps.DB),
		StatsRepository:  statsrepo.NewStatsRepository(deps.DB),
		UserRepository:   userrepo.NewUserRepository(deps.DB),
	}
}

// GetLeaderboard returns every user ranked by their roster total.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context) ([]fantasy.Standing, error) {
	if mem := ls.getFromMemCache(LeaderboardCacheKey); mem != nil {
		return mem, nil
	}

	if redisData := ls.getFromRedis(LeaderboardCacheKey); redisData != nil {
		ls.memCache.Set(LeaderboardCacheKey, redisData, LeaderboardMemoryCacheDuration)
		return redisData, nil
	}

	standings, err := ls.ComputeLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	ls.populateCaches(LeaderboardCacheKey, standings)

	return standings, nil
}

// ComputeLeaderboard builds the ranking from the store, bypassing the
// caches. The scheduler revalidation job calls it directly.
func (ls *LeaderboardService) ComputeLeaderboard(ctx context.Context) ([]fantasy.Standing, error) {
	teams, err := ls.RosterRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return []fantasy.Standing{}, nil
	}

	lines, err := ls.StatsRepository.GetAllLines(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(teams))
	for _, team := range teams {
		userIDs = append(userIDs, team.UserID)
	}

	users, err := ls.UserRepository.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	standings := make([]fantasy.Standing, 0, len(teams))
	for _, team := range teams {
		points := fantasy.AggregateRosterPoints([]uint(team.PlayerIDs), lines)

		standing := fantasy.Standing{
			UserID: team.UserID,
			Total:  points.Total,
		}

		// A roster whose players have no stat records still ranks,
		// those players simply contribute zero.
		if user, ok := users[team.UserID]; ok {
			standing.Username = user.Username
			standing.AvatarURL = user.AvatarURL
		} else {
			log.Printf(messages.MissingUserRecord, team.UserID)
		}

		standings = append(standings, standing)
	}

	return fantasy.RankStandings(standings), nil
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ls *LeaderboardService) getFromMemCache(key string) []fantasy.Standing {
	if memCachedData := ls.memCache.Get(key); memCachedData != nil {
		return memCachedData.([]fantasy.Standing)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ls *LeaderboardService) getFromRedis(key string) []fantasy.Standing {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ls.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var standings []fantasy.Standing
	if err := json.Unmarshal([]byte(redisCached), &standings); err != nil {
		return nil
	}

	return standings
}

// populateCaches will set the mem cache and redis cache.
func (ls *LeaderboardService) populateCaches(key string, data []fantasy.Standing) {
	ls.memCache.Set(key, data, LeaderboardMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ls.redis.Set(context.Background(), key, string(j), LeaderboardRedisCacheDuration)
	}
}
