// Package testroster generates synthetic rosters and exercises a running
// beacon instance end to end.
package testroster

import "time"

// Config holds configuration for the roster test.
type Config struct {
	BaseURL  string        // Base URL of the service
	Students int           // Number of students to generate
	TopN     int           // Number of ranked entries to fetch back
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Enable verbose logging
}

// Stats holds test statistics.
type Stats struct {
	StudentsGenerated int
	ProfilesReturned  int
	Distribution      Distribution
	StartTime         time.Time
	Duration          time.Duration
}

// Wire shapes mirrored from the API. Kept local so the tool exercises the
// service strictly over HTTP.
type attendanceRecord struct {
	StudentID  string  `json:"student_id"`
	Attendance float64 `json:"attendance"`
}

type assessmentRecord struct {
	StudentID string     `json:"student_id"`
	Scores    [3]float64 `json:"scores"`
}

type attemptsRecord struct {
	StudentID    string `json:"student_id"`
	AttemptsUsed int    `json:"attempts_used"`
}

type analyzeRequest struct {
	Attendance []attendanceRecord `json:"attendance"`
	Assessment []assessmentRecord `json:"assessment"`
	Attempts   []attemptsRecord   `json:"attempts"`
}

// Distribution mirrors the API distribution shape.
type Distribution struct {
	Safe      int `json:"safe"`
	Watchlist int `json:"watchlist"`
	AtRisk    int `json:"at_risk"`
}

type riskFlag struct {
	Rule        string `json:"rule"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

type riskProfile struct {
	StudentID    string     `json:"student_id"`
	Attendance   float64    `json:"attendance"`
	TestScores   [3]float64 `json:"test_scores"`
	AverageScore float64    `json:"average_score"`
	AttemptsUsed int        `json:"attempts_used"`
	RiskScore    int        `json:"risk_score"`
	RiskLevel    string     `json:"risk_level"`
	Flags        []riskFlag `json:"flags"`
}

type runResponse struct {
	RunID        string        `json:"run_id"`
	Students     int           `json:"students"`
	Distribution Distribution  `json:"distribution"`
	Profiles     []riskProfile `json:"profiles"`
}
