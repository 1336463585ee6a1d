package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/beacon/internal/adapters/http/api"
	"github.com/okian/beacon/internal/adapters/repository"
	"github.com/okian/beacon/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// mockService implements api.Dependencies over a canned run.
type mockService struct {
	run    model.Run
	hasRun bool
}

func (m *mockService) Analyze(_ context.Context, attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) (model.Run, error) {
	ids := map[string]struct{}{}
	for _, r := range attendance {
		ids[r.StudentID] = struct{}{}
	}
	for _, r := range assessment {
		ids[r.StudentID] = struct{}{}
	}
	for _, r := range attempts {
		ids[r.StudentID] = struct{}{}
	}
	run := model.Run{ID: "run-test", CreatedAt: time.Now().UTC()}
	for id := range ids {
		run.Profiles = append(run.Profiles, model.StudentRiskProfile{
			StudentProfile: model.StudentProfile{StudentID: id},
			RiskLevel:      model.LevelSafe,
		})
		run.Distribution.Safe++
	}
	m.run = run
	m.hasRun = true
	return run, nil
}

func (m *mockService) Results(_ context.Context, n int) ([]model.StudentRiskProfile, error) {
	if !m.hasRun {
		return nil, repository.ErrNoRuns
	}
	if n > len(m.run.Profiles) {
		n = len(m.run.Profiles)
	}
	return m.run.Profiles[:n], nil
}

func (m *mockService) Student(_ context.Context, studentID string) (model.StudentRiskProfile, error) {
	if !m.hasRun {
		return model.StudentRiskProfile{}, repository.ErrNoRuns
	}
	for _, p := range m.run.Profiles {
		if p.StudentID == studentID {
			return p, nil
		}
	}
	return model.StudentRiskProfile{}, repository.ErrStudentNotFound
}

func (m *mockService) Distribution(_ context.Context) (model.Distribution, error) {
	if !m.hasRun {
		return model.Distribution{}, repository.ErrNoRuns
	}
	return m.run.Distribution, nil
}

type mockStats struct{}

func (mockStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestServer(deps api.Dependencies) *httptest.Server {
	mux := http.NewServeMux()
	srv := api.NewServer(deps, mockStats{}, api.Options{MaxResultsLimit: 100})
	srv.Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestAnalyzeEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		svc := &mockService{}
		ts := newTestServer(svc)
		defer ts.Close()

		Convey("When posting a valid analyze request", func() {
			body := `{
				"attendance": [{"student_id":"STU1","attendance":60}],
				"assessment": [{"student_id":"STU1","scores":[30,25,20]}],
				"attempts":   [{"student_id":"STU2","attempts_used":2}]
			}`
			resp, err := http.Post(ts.URL+"/analyze", "application/json", strings.NewReader(body))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it returns the run summary", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var out map[string]any
				So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
				So(out["run_id"], ShouldEqual, "run-test")
				So(out["students"], ShouldEqual, 2)
			})
		})

		Convey("When posting malformed JSON", func() {
			resp, err := http.Post(ts.URL+"/analyze", "application/json", strings.NewReader("{nope"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it rejects with 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Get(ts.URL + "/analyze")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is not found", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestResultsEndpoint(t *testing.T) {
	Convey("Given a server with no completed run", t, func() {
		ts := newTestServer(&mockService{})
		defer ts.Close()

		Convey("When fetching results", func() {
			resp, err := http.Get(ts.URL + "/results?limit=5")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it reports no analysis yet", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})

	Convey("Given a server with a completed run", t, func() {
		svc := &mockService{}
		_, _ = svc.Analyze(context.Background(),
			[]model.AttendanceRecord{{StudentID: "STU1"}, {StudentID: "STU2"}}, nil, nil)
		ts := newTestServer(svc)
		defer ts.Close()

		Convey("When fetching results with a valid limit", func() {
			resp, err := http.Get(ts.URL + "/results?limit=1")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it returns at most limit profiles", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var out []model.StudentRiskProfile
				So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
				So(out, ShouldHaveLength, 1)
			})
		})

		Convey("When the limit is not a number", func() {
			resp, err := http.Get(ts.URL + "/results?limit=abc")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it rejects with 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the limit exceeds the cap", func() {
			resp, err := http.Get(ts.URL + "/results?limit=1000")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it rejects with 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestStudentEndpoint(t *testing.T) {
	Convey("Given a server with a completed run", t, func() {
		svc := &mockService{}
		_, _ = svc.Analyze(context.Background(),
			[]model.AttendanceRecord{{StudentID: "STU1"}}, nil, nil)
		ts := newTestServer(svc)
		defer ts.Close()

		Convey("When fetching a known student", func() {
			resp, err := http.Get(ts.URL + "/students/STU1")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it returns the profile", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var out model.StudentRiskProfile
				So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
				So(out.StudentID, ShouldEqual, "STU1")
			})
		})

		Convey("When fetching an unknown student", func() {
			resp, err := http.Get(ts.URL + "/students/NOPE")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is not found", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the path is empty", func() {
			resp, err := http.Get(ts.URL + "/students/")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it rejects with 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestDistributionEndpoint(t *testing.T) {
	Convey("Given a server with a completed run", t, func() {
		svc := &mockService{}
		_, _ = svc.Analyze(context.Background(),
			[]model.AttendanceRecord{{StudentID: "STU1"}, {StudentID: "STU2"}}, nil, nil)
		ts := newTestServer(svc)
		defer ts.Close()

		Convey("When fetching the distribution", func() {
			resp, err := http.Get(ts.URL + "/distribution")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then counts sum to the roster size", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var out model.Distribution
				So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
				So(out.Total(), ShouldEqual, 2)
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		ts := newTestServer(&mockService{})
		defer ts.Close()

		Convey("When fetching stats", func() {
			resp, err := http.Get(ts.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then a stats object comes back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var out map[string]any
				So(json.NewDecoder(resp.Body).Decode(&out), ShouldBeNil)
				So(out["started"], ShouldEqual, true)
			})
		})
	})
}
