package playerservice

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"valfantasy/api/cache"
	"valfantasy/api/dto"
	"valfantasy/api/filters"
	repositories "valfantasy/api/repositories/player"

	"gorm.io/gorm"
)

const (
	PlayersMemoryCacheDuration = 5 * time.Minute
	PlayersRedisCacheDuration  = 15 * time.Minute
)

// PlayerRedisClient is the redis surface the player service needs.
type PlayerRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// PlayerService serves the draft page player listing.
type PlayerService struct {
	db               *gorm.DB
	memCache         cache.MemCache
	redis            PlayerRedisClient
	PlayerRepository repositories.PlayerRepository
}

// PlayerServiceDeps is the dependency list for the player service.
type PlayerServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache
	Redis    PlayerRedisClient
}

// NewPlayerService creates a player service.
func NewPlayerService(deps *PlayerServiceDeps) *PlayerService {
	return &PlayerService{
		db:               deps.DB,
		memCache:         deps.MemCache,
		redis:            deps.Redis,
		PlayerRepository: repositories.NewPlayerRepository(deps.DB),
	}
}

// ListPlayers returns the active players matching the filters.
func (ps *PlayerService) ListPlayers(ctx context.Context, filters *filters.PlayerListFilter) ([]*dto.PlayerResult, error) {
	key := ps.getPlayersKey(filters)

	if mem := ps.getFromMemCache(key); mem != nil {
		return mem, nil
	}

	if redisData := ps.getFromRedis(key); redisData != nil {
		ps.memCache.Set(key, redisData, PlayersMemoryCacheDuration)
		return redisData, nil
	}

	// Get the data from the repository.
	players, err := ps.PlayerRepository.ListActive(ctx, filters)
	if err != nil {
		return nil, err
	}

	if len(players) == 0 {
		return []*dto.PlayerResult{}, nil
	}

	var dtoHelper dto.PlayerResult
	results := dtoHelper.FromModelSlice(players)

	ps.populateCaches(key, results)

	return results, nil
}

// getFromMemCache retrieves the data from the memory and returns it.
func (ps *PlayerService) getFromMemCache(key string) []*dto.PlayerResult {
	if memCachedData := ps.memCache.Get(key); memCachedData != nil {
		return memCachedData.([]*dto.PlayerResult)
	}
	return nil
}

// getFromRedis retrieves the data from the redis.
func (ps *PlayerService) getFromRedis(key string) []*dto.PlayerResult {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*200)
	defer cancel()

	redisCached, err := ps.redis.Get(ctx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var players []*dto.PlayerResult
	if err := json.Unmarshal([]byte(redisCached), &players); err != nil {
		return nil
	}

	return players
}

// getPlayersKey generates the cache key.
func (ps *PlayerService) getPlayersKey(filters *filters.PlayerListFilter) string {
	var builder strings.Builder
	builder.WriteString("players")

	if filters != nil && filters.Name != "" {
		builder.WriteString(":name_" + strings.ToLower(filters.Name))
	}

	if filters != nil && filters.MaxMMR != 0 {
		builder.WriteString(":mmr_" + strconv.Itoa(filters.MaxMMR))
	}

	return builder.String()
}

// populateCaches will set the mem cache and redis cache.
func (ps *PlayerService) populateCaches(key string, data []*dto.PlayerResult) {
	ps.memCache.Set(key, data, PlayersMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ps.redis.Set(context.Background(), key, string(j), PlayersRedisCacheDuration)
	}
}
