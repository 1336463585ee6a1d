// Package scoring computes transparent, rule-based dropout-risk scores
// from merged student profiles.
package scoring

import (
	"github.com/okian/beacon/internal/domain/model"
)

// Risk level thresholds and the score ceiling.
const (
	maxRiskScore       = 100
	safeThreshold      = 30 // score <= 30 -> safe
	watchlistThreshold = 60 // 30 < score <= 60 -> watchlist; above -> at-risk
)

// Option applies a configuration option to the RuleScorer.
type Option func(*RuleScorer)

// WithRules replaces the default rule set. Rules are evaluated in slice
// order and flag order follows evaluation order.
func WithRules(rules []Rule) Option {
	return func(s *RuleScorer) {
		if len(rules) > 0 {
			s.rules = rules
		}
	}
}

// Scorer turns a merged profile into a scored risk profile.
type Scorer interface {
	// Evaluate is pure and total: well-typed input cannot fail.
	Evaluate(p model.StudentProfile) model.StudentRiskProfile
}

// RuleScorer implements Scorer with a fixed ordered list of rules.
type RuleScorer struct {
	rules []Rule
}

// NewRuleScorer creates a scorer with the default dropout-risk rules.
func NewRuleScorer(opts ...Option) *RuleScorer {
	s := &RuleScorer{
		rules: DefaultRules(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate applies every rule in order. Each triggered rule appends one
// flag and adds its fixed points; rules never interact or short-circuit.
// The total is clamped to 100 even though the current weights cannot
// exceed it.
func (s *RuleScorer) Evaluate(p model.StudentProfile) model.StudentRiskProfile {
	score := 0
	var flags []model.RiskFlag
	for _, rule := range s.rules {
		if !rule.Triggered(p) {
			continue
		}
		score += rule.Points
		flags = append(flags, model.RiskFlag{
			Rule:        rule.Name,
			Points:      rule.Points,
			Description: rule.Describe(p),
		})
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}

	return model.StudentRiskProfile{
		StudentProfile: p,
		RiskScore:      score,
		RiskLevel:      LevelFor(score),
		Flags:          flags,
	}
}

// Rules returns the scorer's rule list in evaluation order.
func (s *RuleScorer) Rules() []Rule {
	return s.rules
}

// LevelFor buckets a risk score into a category. Boundary values close on
// the lower category: exactly 30 is safe, exactly 60 is watchlist.
func LevelFor(score int) model.RiskLevel {
	switch {
	case score <= safeThreshold:
		return model.LevelSafe
	case score <= watchlistThreshold:
		return model.LevelWatchlist
	default:
		return model.LevelAtRisk
	}
}
