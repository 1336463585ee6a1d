package scoring_test

import (
	"testing"

	"github.com/okian/beacon/internal/domain/model"
	"github.com/okian/beacon/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

// healthyProfile triggers no rules.
func healthyProfile() model.StudentProfile {
	return model.StudentProfile{
		StudentID:    "STU-OK",
		Attendance:   90,
		TestScores:   [3]float64{70, 75, 80},
		AverageScore: 75,
		AttemptsUsed: 1,
	}
}

func TestRuleScorer_Evaluate(t *testing.T) {
	scorer := scoring.NewRuleScorer()

	Convey("Given a profile triggering no rules", t, func() {
		p := healthyProfile()

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then the score is zero and the level is safe", func() {
				So(out.RiskScore, ShouldEqual, 0)
				So(out.RiskLevel, ShouldEqual, model.LevelSafe)
				So(out.Flags, ShouldBeEmpty)
			})
		})
	})

	Convey("Given attendance just below the threshold", t, func() {
		p := healthyProfile()
		p.Attendance = 74.9

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then only Low Attendance triggers for 30 points", func() {
				So(out.RiskScore, ShouldEqual, 30)
				So(out.Flags, ShouldHaveLength, 1)
				So(out.Flags[0].Rule, ShouldEqual, "Low Attendance")
				So(out.Flags[0].Points, ShouldEqual, 30)
				So(out.Flags[0].Description, ShouldEqual, "Attendance is 74.9% (below 75% threshold)")
			})
		})
	})

	Convey("Given attendance exactly at the threshold", t, func() {
		p := healthyProfile()
		p.Attendance = 75

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Low Attendance does not trigger", func() {
				So(out.RiskScore, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a low test average", t, func() {
		p := healthyProfile()
		p.TestScores = [3]float64{40, 35, 42}
		p.AverageScore = 39

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then only Low Test Average triggers", func() {
				So(out.RiskScore, ShouldEqual, 30)
				So(out.Flags[0].Rule, ShouldEqual, "Low Test Average")
				So(out.Flags[0].Description, ShouldEqual, "Average score is 39.0% (below 40% threshold)")
			})
		})
	})

	Convey("Given an average exactly at 40", t, func() {
		p := healthyProfile()
		p.TestScores = [3]float64{40, 40, 40}
		p.AverageScore = 40

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Low Test Average does not trigger", func() {
				So(out.RiskScore, ShouldEqual, 0)
			})
		})
	})

	Convey("Given strictly declining scores", t, func() {
		p := healthyProfile()
		p.TestScores = [3]float64{80, 70, 60}
		p.AverageScore = 70

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Declining Trend triggers for 20 points", func() {
				So(out.RiskScore, ShouldEqual, 20)
				So(out.Flags[0].Rule, ShouldEqual, "Declining Trend")
				So(out.Flags[0].Description, ShouldEqual, "Test scores declining: 80 → 70 → 60")
			})
		})
	})

	Convey("Given a plateau in the score sequence", t, func() {
		p := healthyProfile()
		p.TestScores = [3]float64{80, 80, 70}
		p.AverageScore = 76.666

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Declining Trend does not trigger", func() {
				So(out.RiskScore, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a non-monotonic score sequence", t, func() {
		p := healthyProfile()
		p.TestScores = [3]float64{60, 80, 50}
		p.AverageScore = 63.333

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Declining Trend does not trigger", func() {
				So(out.RiskScore, ShouldEqual, 0)
			})
		})
	})

	Convey("Given two exam attempts", t, func() {
		p := healthyProfile()
		p.AttemptsUsed = 2

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then Multiple Attempts triggers for 20 points", func() {
				So(out.RiskScore, ShouldEqual, 20)
				So(out.Flags[0].Rule, ShouldEqual, "Multiple Attempts")
				So(out.Flags[0].Description, ShouldEqual, "Used 2 attempts (threshold: 2)")
			})
		})
	})

	Convey("Given the worst-case profile from every rule", t, func() {
		p := model.StudentProfile{
			StudentID:    "STU1",
			Attendance:   60,
			TestScores:   [3]float64{30, 25, 20},
			AverageScore: 25,
			AttemptsUsed: 2,
		}

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then all four rules trigger and the score is exactly 100", func() {
				So(out.Flags, ShouldHaveLength, 4)
				So(out.RiskScore, ShouldEqual, 100)
				So(out.RiskLevel, ShouldEqual, model.LevelAtRisk)
			})

			Convey("And flags keep rule-evaluation order", func() {
				So(out.Flags[0].Rule, ShouldEqual, "Low Attendance")
				So(out.Flags[1].Rule, ShouldEqual, "Low Test Average")
				So(out.Flags[2].Rule, ShouldEqual, "Declining Trend")
				So(out.Flags[3].Rule, ShouldEqual, "Multiple Attempts")
			})
		})
	})

	Convey("Given a student known only to the attendance source", t, func() {
		// Zeroed assessment and attempts, as the merger defaults them.
		p := model.StudentProfile{
			StudentID:    "STU-PART",
			Attendance:   90,
			TestScores:   [3]float64{0, 0, 0},
			AverageScore: 0,
			AttemptsUsed: 0,
		}

		Convey("When evaluating", func() {
			out := scorer.Evaluate(p)

			Convey("Then only Low Test Average triggers and the score of 30 stays safe", func() {
				So(out.Flags, ShouldHaveLength, 1)
				So(out.Flags[0].Rule, ShouldEqual, "Low Test Average")
				So(out.RiskScore, ShouldEqual, 30)
				So(out.RiskLevel, ShouldEqual, model.LevelSafe)
			})
		})
	})

	Convey("Given a custom rule set exceeding 100 points", t, func() {
		heavy := scoring.Rule{
			Name:      "Always",
			Points:    70,
			Triggered: func(model.StudentProfile) bool { return true },
			Describe:  func(model.StudentProfile) string { return "always" },
		}
		scorer := scoring.NewRuleScorer(scoring.WithRules([]scoring.Rule{heavy, heavy}))

		Convey("When evaluating", func() {
			out := scorer.Evaluate(healthyProfile())

			Convey("Then the score clamps at 100", func() {
				So(out.RiskScore, ShouldEqual, 100)
				So(out.Flags, ShouldHaveLength, 2)
			})
		})
	})
}

func TestLevelFor(t *testing.T) {
	Convey("Given the fixed level thresholds", t, func() {
		Convey("Then boundaries close on the lower category", func() {
			So(scoring.LevelFor(0), ShouldEqual, model.LevelSafe)
			So(scoring.LevelFor(30), ShouldEqual, model.LevelSafe)
			So(scoring.LevelFor(31), ShouldEqual, model.LevelWatchlist)
			So(scoring.LevelFor(60), ShouldEqual, model.LevelWatchlist)
			So(scoring.LevelFor(61), ShouldEqual, model.LevelAtRisk)
			So(scoring.LevelFor(100), ShouldEqual, model.LevelAtRisk)
		})
	})
}

func TestDefaultRules(t *testing.T) {
	Convey("Given the default rule set", t, func() {
		rules := scoring.DefaultRules()

		Convey("Then there are four rules whose weights sum to 100", func() {
			So(rules, ShouldHaveLength, 4)
			total := 0
			for _, r := range rules {
				total += r.Points
			}
			So(total, ShouldEqual, 100)
		})
	})
}
