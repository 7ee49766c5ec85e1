package main

import (
	"log"

	"valfantasy/api/modules"
	"valfantasy/api/routes"
	"valfantasy/pkg/config"
	"valfantasy/pkg/database"
	"valfantasy/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	// Runs the migrations.
	rawDb, err := db.DB()
	if err != nil {
		log.Fatalf("Couldn't get raw db connection: %v", err)
	}

	if err := database.RunMigrations(cfg, rawDb); err != nil {
		log.Fatal(err)
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Couldn't connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(cfg, db, redisClient)
	defer module.MemCache.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router, cfg.Auth.JWTSecret)
	router.SetupRoutes(
		module.PlayerHandler,
		module.RosterHandler,
		module.LeaderboardHandler,
		module.AuthHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
