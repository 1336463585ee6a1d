// Package analysis composes the merge and scoring stages into the full
// dropout-risk pipeline.
package analysis

import (
	"sort"

	"github.com/okian/beacon/internal/domain/merge"
	"github.com/okian/beacon/internal/domain/model"
	"github.com/okian/beacon/internal/domain/scoring"
)

// AnalyzeAll merges the three sources, scores every merged profile, and
// returns the result sorted by risk score descending. The sort is stable,
// so ties keep the merger's StudentID-ascending order and the output is
// deterministic for identical inputs.
func AnalyzeAll(attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) []model.StudentRiskProfile {
	return AnalyzeAllWith(scoring.NewRuleScorer(), attendance, assessment, attempts)
}

// AnalyzeAllWith runs the pipeline with a caller-supplied scorer.
func AnalyzeAllWith(scorer scoring.Scorer, attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) []model.StudentRiskProfile {
	profiles := merge.Merge(attendance, assessment, attempts)

	scored := make([]model.StudentRiskProfile, len(profiles))
	for i, p := range profiles {
		scored[i] = scorer.Evaluate(p)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RiskScore > scored[j].RiskScore
	})
	return scored
}

// DistributionOf partitions scored profiles by risk level. The three
// counts always sum to len(profiles).
func DistributionOf(profiles []model.StudentRiskProfile) model.Distribution {
	var d model.Distribution
	for _, p := range profiles {
		switch p.RiskLevel {
		case model.LevelSafe:
			d.Safe++
		case model.LevelWatchlist:
			d.Watchlist++
		case model.LevelAtRisk:
			d.AtRisk++
		}
	}
	return d
}
