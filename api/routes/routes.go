package routes

import (
	"valfantasy/api/handlers"
	"valfantasy/api/middleware"

	"github.com/gin-gonic/gin"
)

// Router groups the API routes under /api/v1.
type Router struct {
	Engine    *gin.Engine
	api       *gin.RouterGroup
	jwtSecret string
}

// NewRouter creates the router with its base group.
func NewRouter(engine *gin.Engine, jwtSecret string) *Router {
	return &Router{
		api:       engine.Group("/api/v1"),
		Engine:    engine,
		jwtSecret: jwtSecret,
	}
}

// SetupRoutes registers every passed handler on its routes.
func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.PlayerHandler:
			r.registerPlayerHandler(handler)
		case *handlers.RosterHandler:
			r.registerRosterHandler(handler)
		case *handlers.LeaderboardHandler:
			r.registerLeaderboardHandler(handler)
		case *handlers.AuthHandler:
			r.registerAuthHandler(handler)
		}
	}
}

// Register the player handler.
func (r *Router) registerPlayerHandler(handler *handlers.PlayerHandler) {
	players := r.api.Group("/players")
	{
		players.GET("", handler.GetPlayers)
	}
}

// Register the roster handler. Mutations and the dashboard require a session.
func (r *Router) registerRosterHandler(handler *handlers.RosterHandler) {
	roster := r.api.Group("/roster")
	roster.Use(middleware.RequireAuth(r.jwtSecret))
	{
		roster.GET("", handler.GetRoster)
		roster.POST("", handler.SubmitRoster)
		roster.POST("/selection", handler.ValidateSelection)
	}

	dashboard := r.api.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(r.jwtSecret))
	{
		dashboard.GET("", handler.GetDashboard)
	}
}

// Register the leaderboard handler.
func (r *Router) registerLeaderboardHandler(handler *handlers.LeaderboardHandler) {
	leaderboard := r.api.Group("/leaderboard")
	{
		leaderboard.GET("", handler.GetLeaderboard)
	}
}

// Register the auth handler.
func (r *Router) registerAuthHandler(handler *handlers.AuthHandler) {
	auth := r.api.Group("/auth")
	{
		auth.POST("/discord", handler.ExchangeDiscordCode)
	}
}

// Run starts the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
