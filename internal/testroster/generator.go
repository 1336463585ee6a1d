package testroster

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// randomFloatDivisor scales crypto/rand integers into [0,1).
const randomFloatDivisor = 1000000

// Cohort archetypes. Each shapes one student's three source records so a
// generated roster exercises every scoring rule plus partial-data cases.
const (
	caseStrong = iota
	caseLowAttendance
	caseLowScores
	caseDeclining
	caseRepeater
	caseNoAssessment
	caseNoAttendance
	caseCompound
	cohortCount
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateRoster builds the three source arrays for n synthetic students.
// A student may be absent from a source to exercise the union-of-keys
// merge with defaults.
func generateRoster(n int) analyzeRequest {
	var req analyzeRequest
	for i := 0; i < n; i++ {
		id := uuid.New().String()
		switch i % cohortCount {
		case caseStrong:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 85 + getRandomFloat()*15})
			req.Assessment = append(req.Assessment, assessmentRecord{id, ascendingScores(60, 30)})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 0})
		case caseLowAttendance:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 30 + getRandomFloat()*40})
			req.Assessment = append(req.Assessment, assessmentRecord{id, ascendingScores(50, 40)})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 1})
		case caseLowScores:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 80 + getRandomFloat()*20})
			req.Assessment = append(req.Assessment, assessmentRecord{id, ascendingScores(5, 25)})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 0})
		case caseDeclining:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 80 + getRandomFloat()*20})
			req.Assessment = append(req.Assessment, assessmentRecord{id, decliningScores()})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 1})
		case caseRepeater:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 80 + getRandomFloat()*20})
			req.Assessment = append(req.Assessment, assessmentRecord{id, ascendingScores(55, 30)})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 2 + int(getRandomFloat()*3)})
		case caseNoAssessment:
			req.Attendance = append(req.Attendance, attendanceRecord{id, 75 + getRandomFloat()*25})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 1})
		case caseNoAttendance:
			req.Assessment = append(req.Assessment, assessmentRecord{id, ascendingScores(45, 40)})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 0})
		case caseCompound:
			req.Attendance = append(req.Attendance, attendanceRecord{id, getRandomFloat() * 50})
			req.Assessment = append(req.Assessment, assessmentRecord{id, decliningScores()})
			req.Attempts = append(req.Attempts, attemptsRecord{id, 2})
		}
	}
	return req
}

// ascendingScores returns three non-declining scores starting near base.
func ascendingScores(base, spread float64) [3]float64 {
	s1 := base + getRandomFloat()*spread
	return [3]float64{s1, s1 + getRandomFloat()*10, s1 + 10 + getRandomFloat()*10}
}

// decliningScores returns three strictly declining scores.
func decliningScores() [3]float64 {
	s1 := 60 + getRandomFloat()*40
	s2 := s1 - 5 - getRandomFloat()*10
	s3 := s2 - 5 - getRandomFloat()*10
	return [3]float64{s1, s2, s3}
}
