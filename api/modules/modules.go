package modules

import (
	"valfantasy/api/cache"
	"valfantasy/api/handlers"
	identityservice "valfantasy/api/services/identity"
	leaderboardservice "valfantasy/api/services/leaderboard"
	playerservice "valfantasy/api/services/player"
	rosterservice "valfantasy/api/services/roster"
	"valfantasy/pkg/config"
	"valfantasy/pkg/fantasy"
	"valfantasy/pkg/redis"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router             *gin.Engine
	MemCache           cache.MemCache
	PlayerHandler      *handlers.PlayerHandler
	RosterHandler      *handlers.RosterHandler
	LeaderboardHandler *handlers.LeaderboardHandler
	AuthHandler        *handlers.AuthHandler
}

// NewModule creates a module with all the necessary handlers initialized.
func NewModule(cfg *config.Config, db *gorm.DB, redisClient *redis.RedisClient) *Module {
	router := gin.Default()

	memCache := cache.NewMemCache()

	rules := fantasy.Rules{
		TeamSize:     cfg.League.TeamSize,
		MMRCap:       cfg.League.MMRCap,
		LockDeadline: cfg.League.LockDeadline,
	}

	// Initialize the services.
	playerService := playerservice.NewPlayerService(&playerservice.PlayerServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redisClient,
	})

	rosterService := rosterservice.NewRosterService(&rosterservice.RosterServiceDeps{
		DB:    db,
		Rules: rules,
	})

	leaderboardService := leaderboardservice.NewLeaderboardService(&leaderboardservice.LeaderboardServiceDeps{
		DB:       db,
		MemCache: memCache,
		Redis:    redisClient,
	})

	identityService := identityservice.NewIdentityService(&identityservice.IdentityServiceDeps{
		DB:      db,
		Discord: cfg.Discord,
		Auth:    cfg.Auth,
	})

	// Initialize the handlers.
	return &Module{
		Router:             router,
		MemCache:           memCache,
		PlayerHandler:      handlers.NewPlayerHandler(playerService),
		RosterHandler:      handlers.NewRosterHandler(rosterService),
		LeaderboardHandler: handlers.NewLeaderboardHandler(leaderboardService),
		AuthHandler:        handlers.NewAuthHandler(identityService),
	}
}
