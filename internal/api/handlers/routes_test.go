package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/adapters/cache"
	"route-optimizer-service/internal/adapters/geo"
	"route-optimizer-service/internal/api/dto"
	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/services"
)

func newTestHandler(t *testing.T) *RouteHandler {
	t.Helper()

	dist, err := geo.NewHaversineDistance(geo.DefaultEarthRadiusKm)
	if err != nil {
		t.Fatalf("build distance: %v", err)
	}
	speed, err := geo.NewConstantSpeedEstimator(geo.DefaultAverageSpeedKmph)
	if err != nil {
		t.Fatalf("build estimator: %v", err)
	}

	return &RouteHandler{
		Finder: services.NewRouteOptimizer(
			services.NewInterleavedPathGenerator(),
			services.NewTimeCostEvaluator(),
			dist,
			speed,
		),
		MaxOrders: 6,
		CacheTTL:  time.Minute,
		SpeedKmph: geo.DefaultAverageSpeedKmph,
		RadiusKm:  geo.DefaultEarthRadiusKm,
	}
}

const scenarioBody = `{
	"source": {"id": "src", "lat": 12.935192, "lon": 77.624481},
	"orders": [
		{
			"restaurant": {"id": "rest_a", "lat": 12.927923, "lon": 77.627106},
			"customer": {"id": "cust_a", "lat": 12.930060, "lon": 77.629738},
			"prep_time_mins": 15
		},
		{
			"restaurant": {"id": "rest_b", "lat": 12.932145, "lon": 77.620132},
			"customer": {"id": "cust_b", "lat": 12.938743, "lon": 77.618339},
			"prep_time_mins": 25
		}
	]
}`

func postFindRoute(t *testing.T, h *RouteHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/find-route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.FindRoute(rec, req)
	return rec
}

func TestFindRouteTwoOrders(t *testing.T) {
	h := newTestHandler(t)

	rec := postFindRoute(t, h, scenarioBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := []string{"src", "rest_a", "cust_a", "rest_b", "cust_b"}
	if len(res.BestPath) != len(want) {
		t.Fatalf("best_path = %v, want %v", res.BestPath, want)
	}
	for i := range want {
		if res.BestPath[i] != want[i] {
			t.Fatalf("best_path = %v, want %v", res.BestPath, want)
		}
	}
	if math.Abs(res.TotalTimeMins-27.276881) > 1e-4 {
		t.Fatalf("total_time_mins = %v, want ~27.276881", res.TotalTimeMins)
	}
}

func TestFindRouteZeroOrders(t *testing.T) {
	h := newTestHandler(t)

	rec := postFindRoute(t, h, `{"source": {"id": "src", "lat": 1, "lon": 2}, "orders": []}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.BestPath) != 1 || res.BestPath[0] != "src" || res.TotalTimeMins != 0 {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFindRouteRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"unknown field", `{"source": {"id": "s", "lat": 0, "lon": 0}, "orders": [], "extra": 1}`},
		{"two objects", `{"source": {"id": "s", "lat": 0, "lon": 0}, "orders": []}{}`},
		{"empty source id", `{"source": {"id": "", "lat": 0, "lon": 0}, "orders": []}`},
		{"lat out of range", `{"source": {"id": "s", "lat": 91, "lon": 0}, "orders": []}`},
		{"lon out of range", `{"source": {"id": "s", "lat": 0, "lon": -181}, "orders": []}`},
		{
			"negative prep time",
			`{"source": {"id": "s", "lat": 0, "lon": 0}, "orders": [
				{"restaurant": {"id": "r", "lat": 0, "lon": 1}, "customer": {"id": "c", "lat": 1, "lon": 0}, "prep_time_mins": -1}
			]}`,
		},
		{
			"duplicate id",
			`{"source": {"id": "s", "lat": 0, "lon": 0}, "orders": [
				{"restaurant": {"id": "r", "lat": 0, "lon": 1}, "customer": {"id": "r", "lat": 1, "lon": 0}, "prep_time_mins": 5}
			]}`,
		},
	}

	for _, tc := range cases {
		rec := postFindRoute(t, h, tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400 (body %s)", tc.name, rec.Code, rec.Body.String())
		}
	}
}

func TestFindRouteRejectsTooManyOrders(t *testing.T) {
	h := newTestHandler(t)
	h.MaxOrders = 1

	rec := postFindRoute(t, h, scenarioBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestFindRouteMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/find-route", nil)
	rec := httptest.NewRecorder()
	h.FindRoute(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("Allow = %q, want POST", allow)
	}
}

func TestFindRouteServesFromCache(t *testing.T) {
	h := newTestHandler(t)

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	resultCache, err := cache.NewRedisResultCache(client)
	if err != nil {
		t.Fatalf("build cache: %v", err)
	}
	h.Cache = resultCache

	first := postFindRoute(t, h, scenarioBody)
	if first.Code != http.StatusOK {
		t.Fatalf("first call status = %d", first.Code)
	}

	second := postFindRoute(t, h, scenarioBody)
	if second.Code != http.StatusOK {
		t.Fatalf("second call status = %d", second.Code)
	}

	// Deterministic engine + byte-level caching: responses are identical.
	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached response differs:\n%s\nvs\n%s", first.Body.String(), second.Body.String())
	}
}

type recordingRouteLog struct {
	saved []domain.RouteRecord
}

func (l *recordingRouteLog) SaveRoute(_ context.Context, rec domain.RouteRecord) error {
	l.saved = append(l.saved, rec)
	return nil
}

func (l *recordingRouteLog) RecentRoutes(_ context.Context, limit int) ([]domain.RouteRecord, error) {
	if limit > len(l.saved) {
		limit = len(l.saved)
	}
	out := make([]domain.RouteRecord, limit)
	copy(out, l.saved)
	return out, nil
}

func TestFindRouteWritesHistory(t *testing.T) {
	h := newTestHandler(t)
	history := &recordingRouteLog{}
	h.History = history

	rec := postFindRoute(t, h, scenarioBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	if len(history.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(history.saved))
	}
	saved := history.saved[0]
	if saved.SourceID != "src" || saved.OrderCount != 2 || saved.RequestHash == "" {
		t.Fatalf("unexpected record: %+v", saved)
	}
}

func TestRecentWithoutHistoryConfigured(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/routes/recent", nil)
	rec := httptest.NewRecorder()
	h.Recent(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestRecentReturnsSavedRoutes(t *testing.T) {
	h := newTestHandler(t)
	history := &recordingRouteLog{}
	h.History = history

	if rec := postFindRoute(t, h, scenarioBody); rec.Code != http.StatusOK {
		t.Fatalf("seed call status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/routes/recent?limit=5", nil)
	rec := httptest.NewRecorder()
	h.Recent(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ListRecentRoutesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Routes) != 1 || res.Routes[0].SourceID != "src" {
		t.Fatalf("unexpected routes: %+v", res.Routes)
	}
}

func TestRecentRejectsBadLimit(t *testing.T) {
	h := newTestHandler(t)
	h.History = &recordingRouteLog{}

	for _, limit := range []string{"0", "-3", "101", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/routes/recent?limit="+limit, nil)
		rec := httptest.NewRecorder()
		h.Recent(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit=%s: status = %d, want 400", limit, rec.Code)
		}
	}
}
