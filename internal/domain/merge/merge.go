// Package merge joins the three independently sourced record sets into
// unified per-student profiles.
package merge

import (
	"sort"

	"github.com/okian/beacon/internal/domain/model"
)

// testScoreCount is the fixed number of scores per assessment record.
const testScoreCount = 3

// Merge joins attendance, assessment and attempts records on StudentID and
// returns one profile per student seen in ANY source, sorted ascending by
// StudentID. A student missing from a source gets that source's zero
// defaults, so partial data shows up as its own risk signal downstream.
//
// Duplicate IDs within a single source are not validated: the later record
// silently overwrites the earlier one.
func Merge(attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) []model.StudentProfile {
	attByID := make(map[string]model.AttendanceRecord, len(attendance))
	for _, rec := range attendance {
		attByID[rec.StudentID] = rec
	}
	assessByID := make(map[string]model.AssessmentRecord, len(assessment))
	for _, rec := range assessment {
		assessByID[rec.StudentID] = rec
	}
	attemptsByID := make(map[string]model.AttemptsRecord, len(attempts))
	for _, rec := range attempts {
		attemptsByID[rec.StudentID] = rec
	}

	ids := unionKeys(attByID, assessByID, attemptsByID)

	profiles := make([]model.StudentProfile, 0, len(ids))
	for _, id := range ids {
		p := model.StudentProfile{StudentID: id}
		if rec, ok := attByID[id]; ok {
			p.Attendance = rec.Attendance
		}
		if rec, ok := assessByID[id]; ok {
			p.TestScores = rec.Scores
		}
		if rec, ok := attemptsByID[id]; ok {
			p.AttemptsUsed = rec.AttemptsUsed
		}
		p.AverageScore = averageOf(p.TestScores)
		profiles = append(profiles, p)
	}

	return profiles
}

// unionKeys returns the deduplicated IDs across all three source maps,
// sorted ascending. The sort is a postcondition of Merge, not an artifact
// of map iteration.
func unionKeys(att map[string]model.AttendanceRecord, assess map[string]model.AssessmentRecord, attempts map[string]model.AttemptsRecord) []string {
	seen := make(map[string]struct{}, len(att)+len(assess)+len(attempts))
	for id := range att {
		seen[id] = struct{}{}
	}
	for id := range assess {
		seen[id] = struct{}{}
	}
	for id := range attempts {
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// averageOf computes the arithmetic mean of the three test scores.
// The divisor is a constant, so this is always defined.
func averageOf(scores [3]float64) float64 {
	return (scores[0] + scores[1] + scores[2]) / testScoreCount
}
