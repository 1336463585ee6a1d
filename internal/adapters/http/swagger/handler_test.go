package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given the docs routes are registered", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)
		ts := httptest.NewServer(mux)
		defer ts.Close()

		Convey("When requesting the viewer page", func() {
			resp, err := http.Get(ts.URL + "/api-docs")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it serves HTML", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "text/html")
			})
		})

		Convey("When requesting the OpenAPI document", func() {
			resp, err := http.Get(ts.URL + "/openapi.yaml")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it serves the embedded document", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldStartWith, "application/yaml")
				So(strings.TrimSpace(string(OpenAPI)), ShouldStartWith, "openapi:")
			})
		})
	})

	Convey("Given a nil mux", t, func() {
		Convey("Then registration panics", func() {
			So(func() { Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
