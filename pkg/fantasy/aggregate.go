package fantasy

import (
	"sort"
)

// StatLine is a stored per-record fantasy point value for a player.
type StatLine struct {
	PlayerID      uint
	FantasyPoints float64
}

// RosterPoints is the aggregation result for a single roster.
type RosterPoints struct {
	PerPlayer map[uint]float64
	Total     float64
}

// Standing is one leaderboard row.
type Standing struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url"`
	Total     float64 `json:"total"`
}

// AggregateRosterPoints groups the stat lines by player and sums the
// stored point values for the players on the roster. The sum is
// commutative, so the result is identical regardless of the order the
// lines arrive in. Players without any record contribute zero, they
// are never an error.
func AggregateRosterPoints(playerIDs []uint, lines []StatLine) RosterPoints {
	result := RosterPoints{
		PerPlayer: make(map[uint]float64, len(playerIDs)),
	}

	for _, id := range playerIDs {
		result.PerPlayer[id] = 0
	}

	for _, line := range lines {
		if _, onRoster := result.PerPlayer[line.PlayerID]; !onRoster {
			continue
		}
		result.PerPlayer[line.PlayerID] += line.FantasyPoints
	}

	for _, points := range result.PerPlayer {
		result.Total += points
	}

	return result
}

// RankStandings sorts the standings by descending total.
// Ties break by ascending user id so the ordering is deterministic
// regardless of the input order.
func RankStandings(standings []Standing) []Standing {
	ranked := make([]Standing, len(standings))
	copy(ranked, standings)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	return ranked
}
