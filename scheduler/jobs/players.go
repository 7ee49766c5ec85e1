package jobs

import (
	"context"
	"fmt"
	"log"

	"valfantasy/pkg/config"
	"valfantasy/pkg/database"
	"valfantasy/scraper/repositories"
)

// Players missing from the scrape for this many days get deactivated.
const staleAfterDays = 14

// DeactivateStalePlayers flags players that stopped appearing on the
// stats page so they leave the draft pool. Rows are never deleted,
// existing rosters keep their references.
func DeactivateStalePlayers(cfg *config.Config) error {
	log.Println("Starting stale player deactivation")

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}

	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	playerRepository := repositories.NewPlayerRepository(db)

	deactivated, err := playerRepository.DeactivateStale(context.Background(), staleAfterDays)
	if err != nil {
		return fmt.Errorf("couldn't deactivate stale players: %w", err)
	}

	log.Printf("Stale player deactivation completed, %d players deactivated", deactivated)
	return nil
}
