package model

import "time"

// RiskLevel buckets a numeric risk score into a display category.
type RiskLevel string

// Risk level categories, ordered from least to most severe.
const (
	LevelSafe      RiskLevel = "safe"
	LevelWatchlist RiskLevel = "watchlist"
	LevelAtRisk    RiskLevel = "at-risk"
)

// RiskFlag records one triggered rule's contribution to a student's score.
// Flags are produced fresh per evaluation and never mutated.
type RiskFlag struct {
	Rule        string `json:"rule"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

// StudentRiskProfile extends a merged profile with its scoring outcome.
// Flags keep rule-evaluation order, not point order.
type StudentRiskProfile struct {
	StudentProfile

	RiskScore int        `json:"risk_score"`
	RiskLevel RiskLevel  `json:"risk_level"`
	Flags     []RiskFlag `json:"flags"`
}

// Distribution counts profiles per risk level.
type Distribution struct {
	Safe      int `json:"safe"`
	Watchlist int `json:"watchlist"`
	AtRisk    int `json:"at_risk"`
}

// Total returns the number of profiles the distribution was built from.
func (d Distribution) Total() int {
	return d.Safe + d.Watchlist + d.AtRisk
}

// Run is one complete analysis pass over a roster. Runs are ephemeral:
// every analysis rebuilds all profiles from scratch, and runs are held
// in memory only for the display endpoints.
type Run struct {
	ID           string               `json:"run_id"`
	CreatedAt    time.Time            `json:"created_at"`
	Profiles     []StudentRiskProfile `json:"profiles"` // sorted by risk score desc
	Distribution Distribution         `json:"distribution"`
}
