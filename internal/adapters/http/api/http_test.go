package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/sherrin/internal/adapters/http/api"
	"github.com/okian/sherrin/internal/config"
)

func newTestServer() *httptest.Server {
	cfg := config.New()
	mux := http.NewServeMux()
	api.NewServer(cfg).Register(context.Background(), mux) //nolint:staticcheck // ctx unused by Register
	return httptest.NewServer(mux)
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given a running fixture service", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When hitting /healthz", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it reports ok", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var body map[string]string
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["status"], ShouldEqual, "ok")
			})
		})
	})
}

func TestDatasetEndpoints(t *testing.T) {
	Convey("Given a running fixture service", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting fixtures for an explicit range", func() {
			resp, err := http.Get(srv.URL + "/fixtures?start=1990&end=1991&seed=5")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it returns fixture records for both seasons", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("X-Request-Id"), ShouldNotBeBlank)

				var records []map[string]any
				So(json.NewDecoder(resp.Body).Decode(&records), ShouldBeNil)
				So(len(records), ShouldBeGreaterThan, 0)

				seasons := make(map[float64]bool)
				for _, rec := range records {
					seasons[rec["season"].(float64)] = true
				}
				So(len(seasons), ShouldEqual, 2)
				So(seasons[1990], ShouldBeTrue)
				So(seasons[1991], ShouldBeTrue)
			})
		})

		Convey("When requesting match results", func() {
			resp, err := http.Get(srv.URL + "/match-results?start=1990&end=1990&seed=5")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then margins are consistent with the points", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var records []map[string]any
				So(json.NewDecoder(resp.Body).Decode(&records), ShouldBeNil)
				So(len(records), ShouldBeGreaterThan, 0)
				for _, rec := range records {
					So(rec["margin"], ShouldEqual, rec["home_points"].(float64)-rec["away_points"].(float64))
				}
			})
		})

		Convey("When the same seed is requested twice", func() {
			fetch := func() []map[string]any {
				resp, err := http.Get(srv.URL + "/betting-odds?start=1990&end=1990&seed=9")
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var records []map[string]any
				So(json.NewDecoder(resp.Body).Decode(&records), ShouldBeNil)
				return records
			}

			Convey("Then the responses are identical", func() {
				So(fetch(), ShouldResemble, fetch())
			})
		})

		Convey("When only one of start and end is given", func() {
			resp, err := http.Get(srv.URL + "/fixtures?start=1990")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is a bad request", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the season range is invalid", func() {
			resp, err := http.Get(srv.URL + "/fixtures?start=1890&end=1895")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is rejected with a validation error", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

				var body map[string]string
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["code"], ShouldEqual, "invalid_seasons")
			})
		})

		Convey("When the requested span exceeds the cap", func() {
			resp, err := http.Get(srv.URL + "/players?start=1950&end=1990")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is rejected before any generation", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the seed is not an integer", func() {
			resp, err := http.Get(srv.URL + "/fixtures?start=1990&end=1990&seed=abc")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it is a bad request", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When using a non-GET method", func() {
			resp, err := http.Post(srv.URL+"/fixtures", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the route is not found", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
