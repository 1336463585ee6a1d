package testroster

import (
	"fmt"
	"sort"
)

// verify checks the service's invariants against the generated roster:
// union-of-keys cardinality, descending score order, distribution totals,
// and per-profile score bounds.
func verify(roster analyzeRequest, run runResponse, ranked []riskProfile, dist Distribution) error {
	union := make(map[string]struct{})
	for _, r := range roster.Attendance {
		union[r.StudentID] = struct{}{}
	}
	for _, r := range roster.Assessment {
		union[r.StudentID] = struct{}{}
	}
	for _, r := range roster.Attempts {
		union[r.StudentID] = struct{}{}
	}

	if run.Students != len(union) {
		return fmt.Errorf("expected %d merged students, got %d", len(union), run.Students)
	}
	if got := len(run.Profiles); got != len(union) {
		return fmt.Errorf("expected %d profiles, got %d", len(union), got)
	}

	seen := make(map[string]struct{}, len(run.Profiles))
	for _, p := range run.Profiles {
		if _, dup := seen[p.StudentID]; dup {
			return fmt.Errorf("duplicate student in output: %s", p.StudentID)
		}
		seen[p.StudentID] = struct{}{}
		if p.RiskScore < 0 || p.RiskScore > 100 {
			return fmt.Errorf("student %s: score %d outside [0,100]", p.StudentID, p.RiskScore)
		}
		sum := 0
		for _, f := range p.Flags {
			sum += f.Points
		}
		if sum != p.RiskScore {
			return fmt.Errorf("student %s: flag points sum %d != score %d", p.StudentID, sum, p.RiskScore)
		}
	}

	if !sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].RiskScore > ranked[j].RiskScore
	}) {
		return fmt.Errorf("results are not sorted by risk score descending")
	}

	if total := dist.Safe + dist.Watchlist + dist.AtRisk; total != run.Students {
		return fmt.Errorf("distribution total %d != students %d", total, run.Students)
	}
	return nil
}
