// Package ingest decodes the three CSV source files into well-typed
// records for the analysis pipeline. The pipeline itself never sees text:
// all numeric conversion and per-field defaulting happens here.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/beacon/internal/domain/model"
)

// Expected column counts per source file, including the student id.
const (
	attendanceColumns = 2
	assessmentColumns = 4
	attemptsColumns   = 2
)

// ReadAttendance decodes rows shaped "student_id,attendance_pct".
// A header row is detected and skipped when its numeric fields don't parse.
func ReadAttendance(r io.Reader) ([]model.AttendanceRecord, error) {
	rows, err := readRows(r, attendanceColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	records := make([]model.AttendanceRecord, 0, len(rows))
	for i, row := range rows {
		pct, err := parseFloatField(row[1])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%w: attendance row %d: %v", ErrBadField, i+1, err)
		}
		records = append(records, model.AttendanceRecord{
			StudentID:  strings.TrimSpace(row[0]),
			Attendance: pct,
		})
	}
	return records, nil
}

// ReadAssessment decodes rows shaped "student_id,score1,score2,score3".
func ReadAssessment(r io.Reader) ([]model.AssessmentRecord, error) {
	rows, err := readRows(r, assessmentColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	records := make([]model.AssessmentRecord, 0, len(rows))
	for i, row := range rows {
		var scores [3]float64
		var parseErr error
		for j := 0; j < 3; j++ {
			scores[j], parseErr = parseFloatField(row[j+1])
			if parseErr != nil {
				break
			}
		}
		if parseErr != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: assessment row %d: %v", ErrBadField, i+1, parseErr)
		}
		records = append(records, model.AssessmentRecord{
			StudentID: strings.TrimSpace(row[0]),
			Scores:    scores,
		})
	}
	return records, nil
}

// ReadAttempts decodes rows shaped "student_id,attempts_used".
func ReadAttempts(r io.Reader) ([]model.AttemptsRecord, error) {
	rows, err := readRows(r, attemptsColumns)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	records := make([]model.AttemptsRecord, 0, len(rows))
	for i, row := range rows {
		used, err := parseIntField(row[1])
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("%w: attempts row %d: %v", ErrBadField, i+1, err)
		}
		if used < 0 {
			return nil, fmt.Errorf("%w: attempts row %d: negative attempts", ErrBadField, i+1)
		}
		records = append(records, model.AttemptsRecord{
			StudentID:    strings.TrimSpace(row[0]),
			AttemptsUsed: used,
		})
	}
	return records, nil
}

// readRows reads all CSV rows and enforces the column shape.
func readRows(r io.Reader, columns int) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = columns
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// parseFloatField converts a numeric field, defaulting blank to 0 so the
// pipeline never sees a structurally absent value.
func parseFloatField(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseIntField converts an integer field, defaulting blank to 0.
func parseIntField(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
