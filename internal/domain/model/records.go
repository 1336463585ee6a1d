// Package model contains domain models passed between layers.
package model

// AttendanceRecord is one row from the attendance source.
type AttendanceRecord struct {
	StudentID  string  `json:"student_id"`
	Attendance float64 `json:"attendance"` // percentage in [0,100], not guaranteed
}

// AssessmentRecord is one row from the assessment source.
// Scores keeps the three test scores in source order.
type AssessmentRecord struct {
	StudentID string     `json:"student_id"`
	Scores    [3]float64 `json:"scores"`
}

// AttemptsRecord is one row from the exam-attempts source.
type AttemptsRecord struct {
	StudentID    string `json:"student_id"`
	AttemptsUsed int    `json:"attempts_used"`
}

// StudentProfile is one student's merged view across the three sources.
// A student absent from a source gets that source's zero defaults, so a
// partially known student still surfaces as a (high-risk) profile.
type StudentProfile struct {
	StudentID    string     `json:"student_id"`
	Attendance   float64    `json:"attendance"`
	TestScores   [3]float64 `json:"test_scores"`
	AverageScore float64    `json:"average_score"`
	AttemptsUsed int        `json:"attempts_used"`
}
