package scoring

import (
	"fmt"

	"github.com/okian/beacon/internal/domain/model"
)

// Rule thresholds and point weights. The four weights sum to exactly 100.
const (
	lowAttendanceThreshold = 75.0
	lowAveragePct          = 40.0
	attemptsThreshold      = 2

	lowAttendancePoints    = 30
	lowAveragePoints       = 30
	decliningTrendPoints   = 20
	multipleAttemptsPoints = 20
)

// Rule is one auditable scoring rule: a predicate, a fixed point weight,
// and a human-readable explanation template.
type Rule struct {
	Name      string
	Points    int
	Triggered func(p model.StudentProfile) bool
	Describe  func(p model.StudentProfile) string
}

// DefaultRules returns the fixed dropout-risk rule set in evaluation
// order. The order is part of the contract: flags on a scored profile
// follow it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "Low Attendance",
			Points: lowAttendancePoints,
			Triggered: func(p model.StudentProfile) bool {
				return p.Attendance < lowAttendanceThreshold
			},
			Describe: func(p model.StudentProfile) string {
				return fmt.Sprintf("Attendance is %.1f%% (below 75%% threshold)", p.Attendance)
			},
		},
		{
			Name:   "Low Test Average",
			Points: lowAveragePoints,
			Triggered: func(p model.StudentProfile) bool {
				return p.AverageScore < lowAveragePct
			},
			Describe: func(p model.StudentProfile) string {
				return fmt.Sprintf("Average score is %.1f%% (below 40%% threshold)", p.AverageScore)
			},
		},
		{
			Name:   "Declining Trend",
			Points: decliningTrendPoints,
			// Strict on both comparisons: plateaus never trigger.
			// Defaulted zero scores from partial assessment data still
			// count toward the trend.
			Triggered: func(p model.StudentProfile) bool {
				return p.TestScores[0] > p.TestScores[1] && p.TestScores[1] > p.TestScores[2]
			},
			Describe: func(p model.StudentProfile) string {
				return fmt.Sprintf("Test scores declining: %g → %g → %g",
					p.TestScores[0], p.TestScores[1], p.TestScores[2])
			},
		},
		{
			Name:   "Multiple Attempts",
			Points: multipleAttemptsPoints,
			Triggered: func(p model.StudentProfile) bool {
				return p.AttemptsUsed >= attemptsThreshold
			},
			Describe: func(p model.StudentProfile) string {
				return fmt.Sprintf("Used %d attempts (threshold: 2)", p.AttemptsUsed)
			},
		},
	}
}
