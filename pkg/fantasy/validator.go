package fantasy

import (
	"time"
)

// Verdict is the outcome of a roster selection or submission check.
type Verdict string

const (
	Accept               Verdict = "accept"
	RejectFull           Verdict = "roster_full"
	RejectOverCap        Verdict = "over_mmr_cap"
	RejectLocked         Verdict = "locked"
	RejectIncompleteSize Verdict = "incomplete_roster"
)

// Pick is the minimal player view the validator needs.
type Pick struct {
	PlayerID uint
	MMR      int
}

// Rules are the roster constraints for a season, built from
// configuration so both sides of the lock boundary are testable.
type Rules struct {
	TeamSize     int
	MMRCap       int
	LockDeadline time.Time
}

// Locked reports whether the lock window has passed at the given time.
func (r Rules) Locked(now time.Time) bool {
	return now.After(r.LockDeadline)
}

// ValidateSelection checks a single selection toggle against the
// current roster. Checks run in a fixed order: lock first, then
// removal (always allowed pre-lock), then size, then the MMR cap.
func (r Rules) ValidateSelection(current []Pick, candidate Pick, now time.Time) Verdict {
	if r.Locked(now) {
		return RejectLocked
	}

	// Toggling an already selected player off never needs cap or size checks.
	for _, pick := range current {
		if pick.PlayerID == candidate.PlayerID {
			return Accept
		}
	}

	if len(current) >= r.TeamSize {
		return RejectFull
	}

	if mmrSum(current)+candidate.MMR > r.MMRCap {
		return RejectOverCap
	}

	return Accept
}

// ValidateSubmission checks a final roster. Intermediate selections of
// size 0-4 are fine while editing, but a submission requires exactly
// TeamSize members, an unpassed lock window and an MMR total under the
// cap. The cap is re-checked here so a client computed sum can never
// sneak an illegal roster past the selection flow.
func (r Rules) ValidateSubmission(picks []Pick, now time.Time) Verdict {
	if r.Locked(now) {
		return RejectLocked
	}

	if len(picks) != r.TeamSize {
		return RejectIncompleteSize
	}

	if mmrSum(picks) > r.MMRCap {
		return RejectOverCap
	}

	return Accept
}

func mmrSum(picks []Pick) int {
	total := 0
	for _, pick := range picks {
		total += pick.MMR
	}
	return total
}
