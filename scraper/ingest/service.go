package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"valfantasy/pkg/database/models"
	"valfantasy/pkg/fantasy"
	"valfantasy/pkg/logger"
	"valfantasy/pkg/messages"
	"valfantasy/scraper/repositories"
	"valfantasy/scraper/stats"

	"gorm.io/gorm"
)

// Service persists a scraped stat batch: players are upserted by name,
// fantasy points are computed once here, and one immutable stat row is
// appended per player for the observation window.
type Service struct {
	Players repositories.PlayerRepository
	Stats   repositories.StatRepository
	log     *logger.Logger
	running atomic.Bool
}

// ServiceDeps is the dependency list for the ingest service.
type ServiceDeps struct {
	DB     *gorm.DB
	Logger *logger.Logger
}

// NewService creates a ingest service.
func NewService(deps *ServiceDeps) *Service {
	return &Service{
		Players: repositories.NewPlayerRepository(deps.DB),
		Stats:   repositories.NewStatRepository(deps.DB),
		log:     deps.Logger,
	}
}

// IngestMatchBatch runs one ingestion pass for an observation window.
// Runs must not overlap: a second call while one is in flight is
// rejected instead of queued.
func (s *Service) IngestMatchBatch(ctx context.Context, windowID string, rows []stats.RawPlayerStat) error {
	if !s.running.CompareAndSwap(false, true) {
		return errors.New(messages.IngestInProgress)
	}
	defer s.running.Store(false)

	if len(rows) == 0 {
		s.log.Infof("Window %s: nothing to ingest", windowID)
		return nil
	}

	players := make([]*models.Player, 0, len(rows))
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		players = append(players, &models.Player{
			Name:     row.Name,
			Kills:    row.Kills,
			Deaths:   row.Deaths,
			Assists:  row.Assists,
			ACS:      row.ACS,
			IsActive: true,
		})
		names = append(names, row.Name)
	}

	if err := s.Players.UpsertPlayersBatch(ctx, players); err != nil {
		return fmt.Errorf("couldn't upsert the scraped players: %w", err)
	}

	byName, err := s.Players.GetPlayersByNames(ctx, names)
	if err != nil {
		return fmt.Errorf("couldn't resolve the player ids: %w", err)
	}

	records := make([]*models.PlayerMatchStat, 0, len(rows))
	for _, row := range rows {
		player, ok := byName[row.Name]
		if !ok {
			s.log.Errorf("Player id not found for %s, skipping the stat row", row.Name)
			continue
		}

		points := fantasy.ComputePoints(row.Kills, row.Deaths, row.Assists, row.ACS)
		records = append(records, &models.PlayerMatchStat{
			PlayerID:      player.ID,
			MatchID:       windowID,
			Kills:         row.Kills,
			Deaths:        row.Deaths,
			Assists:       row.Assists,
			ACS:           row.ACS,
			FantasyPoints: points,
		})

		s.log.Infof("Logged match stats for %s: %.2f pts", row.Name, points)
	}

	if err := s.Stats.AppendStatsBatch(ctx, records); err != nil {
		return fmt.Errorf("couldn't append the stat records: %w", err)
	}

	s.log.Infof("Window %s: ingested %d stat rows for %d players", windowID, len(records), len(players))
	return nil
}
