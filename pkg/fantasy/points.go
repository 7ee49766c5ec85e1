package fantasy

// Per-stat weights of the fantasy point formula.
const (
	killWeight   = 2.0
	deathWeight  = 1.0
	assistWeight = 1.5
	acsWeight    = 0.05
)

// ComputePoints maps a raw stat line to its fantasy point value.
// It is the single place the formula lives: ingestion calls it when a
// stat row is written, and every read path sums the stored values.
// Negative results are legal, a death heavy low impact performance
// scores below zero.
func ComputePoints(kills, deaths, assists int, acs float64) float64 {
	return float64(kills)*killWeight +
		float64(assists)*assistWeight -
		float64(deaths)*deathWeight +
		acs*acsWeight
}
