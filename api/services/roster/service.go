package rosterservice

import (
	"context"
	"fmt"
	"log"
	"time"

	"valfantasy/api/dto"
	playerrepo "valfantasy/api/repositories/player"
	rosterrepo "valfantasy/api/repositories/roster"
	statsrepo "valfantasy/api/repositories/stats"
	"valfantasy/pkg/apperrors"
	"valfantasy/pkg/database/models"
	"valfantasy/pkg/fantasy"
	"valfantasy/pkg/messages"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RosterService owns every roster mutation and the per-user dashboard.
// It is the single authoritative validation path: both the interactive
// selection flow and the final submission go through the same rules.
type RosterService struct {
	db               *gorm.DB
	rules            fantasy.Rules
	RosterRepository rosterrepo.RosterRepository
	PlayerRepository playerrepo.PlayerRepository
	StatsRepository  statsrepo.StatsRepository
}

// RosterServiceDeps is the dependency list for the roster service.
type RosterServiceDeps struct {
	DB    *gorm.DB
	Rules fantasy.Rules
}

// NewRosterService creates a roster service.
func NewRosterService(deps *RosterServiceDeps) *RosterService {
	return &RosterService{
		db:               deps.DB,
		rules:            deps.Rules,
		RosterRepository: rosterrepo.NewRosterRepository(deps.DB),
		PlayerRepository: playerrepo.NewPlayerRepository(deps.DB),
		StatsRepository:  statsrepo.NewStatsRepository(deps.DB),
	}
}

// GetRoster returns the submitted roster of a user.
func (rs *RosterService) GetRoster(ctx context.Context, userID string) (*dto.RosterResult, error) {
	team, err := rs.RosterRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if team == nil {
		return nil, fmt.Errorf("roster of user %s: %w", userID, apperrors.ErrNotFound)
	}

	var dtoHelper dto.RosterResult
	return dtoHelper.FromModel(team), nil
}

// ValidateSelection checks a single selection toggle for the
// interactive draft flow. The current selection comes from the client,
// but the MMR values do not: they are re-read from the store.
func (rs *RosterService) ValidateSelection(ctx context.Context, currentIDs []uint, candidateID uint) (fantasy.Verdict, error) {
	ids := append(dedupe(currentIDs), candidateID)
	players, err := rs.PlayerRepository.GetByIDs(ctx, ids)
	if err != nil {
		return "", err
	}

	candidate, ok := players[candidateID]
	if !ok || !candidate.IsActive {
		return "", fmt.Errorf("player %d: %w", candidateID, apperrors.ErrNotFound)
	}

	current, err := picksFromIDs(dedupe(currentIDs), players)
	if err != nil {
		return "", err
	}

	return rs.rules.ValidateSelection(current, fantasy.Pick{PlayerID: candidate.ID, MMR: candidate.MMR}, time.Now().UTC()), nil
}

// SubmitRoster validates and stores a final roster, overwriting any
// previous submission wholesale. The MMR total is recomputed from the
// stored players, a client computed sum is never trusted.
func (rs *RosterService) SubmitRoster(ctx context.Context, userID string, playerIDs []uint) (*dto.RosterResult, error) {
	ids := dedupe(playerIDs)

	players, err := rs.PlayerRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	picks, err := picksFromIDs(ids, players)
	if err != nil {
		return nil, err
	}

	if verdict := rs.rules.ValidateSubmission(picks, time.Now().UTC()); verdict != fantasy.Accept {
		return nil, apperrors.NewValidation(verdict)
	}

	mmrTotal := 0
	for _, pick := range picks {
		mmrTotal += pick.MMR
	}

	team := &models.FantasyTeam{
		UserID:    userID,
		PlayerIDs: datatypes.NewJSONSlice(ids),
		MMRTotal:  mmrTotal,
	}

	if err := rs.RosterRepository.Upsert(ctx, team); err != nil {
		return nil, err
	}

	return rs.GetRoster(ctx, userID)
}

// GetDashboard returns the user roster together with the aggregated
// fantasy points of its players.
func (rs *RosterService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResult, error) {
	roster, err := rs.GetRoster(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := rs.StatsRepository.GetLinesForPlayers(ctx, roster.PlayerIDs)
	if err != nil {
		return nil, err
	}

	points := fantasy.AggregateRosterPoints(roster.PlayerIDs, lines)

	return &dto.DashboardResult{
		Roster:          roster,
		PerPlayerPoints: points.PerPlayer,
		Total:           points.Total,
	}, nil
}

// picksFromIDs resolves ids against the fetched players.
// A missing or inactive player fails the whole operation, rosters can
// only reference currently draftable players.
func picksFromIDs(ids []uint, players map[uint]*models.Player) ([]fantasy.Pick, error) {
	picks := make([]fantasy.Pick, 0, len(ids))
	for _, id := range ids {
		player, ok := players[id]
		if !ok {
			return nil, fmt.Errorf("player %d: %w", id, apperrors.ErrNotFound)
		}
		if !player.IsActive {
			log.Printf(messages.RosterPlayerInactive, player.Name)
			return nil, fmt.Errorf("player %d: %w", id, apperrors.ErrNotFound)
		}
		picks = append(picks, fantasy.Pick{PlayerID: player.ID, MMR: player.MMR})
	}
	return picks, nil
}

// dedupe keeps the first occurrence of each id, preserving order.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
