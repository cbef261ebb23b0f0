package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/server/handlers"
	"github.com/mamadbah2/cropstats/internal/server/router"
	"github.com/mamadbah2/cropstats/internal/service/dashboard"
	"github.com/mamadbah2/cropstats/internal/service/refresh"
)

const adminKey = "test-key"

type harness struct {
	reg     *registry.Registry
	refresh *refresh.Service
	server  http.Handler
}

func newHarness(t *testing.T, origins ...string) *harness {
	t.Helper()

	reg, err := registry.New(fixtures.Dataset(), "fixtures", nil)
	require.NoError(t, err)

	dash := dashboard.NewService(reg, nil)
	refreshSvc := refresh.NewService(reg, fixtures.Loader{}, adminKey, time.Minute, nil)

	engine := router.New(router.Handlers{
		API:    handlers.NewAPIHandler(dash, nil),
		Admin:  handlers.NewAdminHandler(refreshSvc, nil),
		Render: handlers.NewRenderHandler(dash, reg, nil),
	}, origins, nil)

	return &harness{reg: reg, refresh: refreshSvc, server: engine}
}

func (h *harness) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestIndexAndHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Brazil Agricultural Data API", body["name"])
	assert.Equal(t, "healthy", body["status"])

	rec = h.do(t, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBalanceSheetEndpoint(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/v1/balance-sheet/soybeans?years=3")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "MMT", body["unit"])
	assert.Len(t, body["data"], 3)

	rec = h.do(t, http.MethodGet, "/api/v1/balance-sheet/soybeans?unit=raw")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "mil t", decode(t, rec)["unit"])
}

func TestBadRequests(t *testing.T) {
	h := newHarness(t)

	cases := map[string]int{
		"/api/v1/balance-sheet/cotton":                         http.StatusBadRequest,
		"/api/v1/balance-sheet/corn?years=0":                   http.StatusBadRequest,
		"/api/v1/balance-sheet/corn?years=21":                  http.StatusBadRequest,
		"/api/v1/exports/by-destination/soybeans?top_n=x":      http.StatusBadRequest,
		"/api/v1/exports/monthly/soybeans?include_china=maybe": http.StatusBadRequest,
		"/api/v1/dashboard/view?tab=weather":                   http.StatusBadRequest,
		"/api/v1/prices/soybeans?year=1999":                    http.StatusNotFound,
		"/api/v1/exports/by-port/corn?year=1999":               http.StatusNotFound,
		"/api/v1/exports/monthly/wheat?year=2025":              http.StatusNotFound,
	}
	for target, status := range cases {
		t.Run(target, func(t *testing.T) {
			rec := h.do(t, http.MethodGet, target)
			assert.Equal(t, status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMonthlyExportsEndpoint(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/v1/exports/monthly/soybeans?year=2025")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "SECEX/MDIC ComexStat", body["source"])
	assert.Equal(t, 119.8, body["ytdTotal"])
	assert.Equal(t, 88.7, body["ytdToDestination"])
	assert.Len(t, body["data"], 11)

	rec = h.do(t, http.MethodGet, "/api/v1/exports/monthly/soybeans?year=2025&include_china=false")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, decode(t, rec), "ytdToDestination")
}

func TestDashboardEndpoints(t *testing.T) {
	h := newHarness(t)

	for _, target := range []string{
		"/api/v1/dashboard/summary",
		"/api/v1/dashboard/cards",
		"/api/v1/dashboard/view?tab=balance&commodity=corn&year=2023/24",
		"/api/v1/soy-complex/balance",
		"/api/v1/production/soybeans?years=5&state=mt",
		"/api/v1/prices/corn?location=PR",
		"/api/v1/exports/by-destination/corn?top_n=3",
		"/api/v1/exports/by-port/soybeans",
	} {
		rec := h.do(t, http.MethodGet, target)
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestRenderEndpoints(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodGet, "/api/v1/charts/production/yield.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = h.do(t, http.MethodGet, "/api/v1/charts/exports/corn.png?year=2024")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/charts/production/weight.png")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodGet, "/api/v1/export/dashboard.xlsx")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "cropstats-v1.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestAdminRefresh(t *testing.T) {
	h := newHarness(t)

	rec := h.do(t, http.MethodPost, "/api/v1/admin/refresh?api_key=wrong")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid API key", decode(t, rec)["error"])
	assert.Equal(t, uint64(1), h.reg.Current().Version)

	rec = h.do(t, http.MethodPost, "/api/v1/admin/refresh?api_key="+adminKey)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "refresh_started", decode(t, rec)["status"])

	h.refresh.Wait()
	assert.Equal(t, uint64(2), h.reg.Current().Version)

	rec = h.do(t, http.MethodGet, "/api/v1/admin/status")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(2), body["version"])
	assert.Equal(t, "fixtures", body["loader"])
	assert.NotContains(t, body, "lastError")
}

func TestCORS(t *testing.T) {
	h := newHarness(t, "https://dash.example.com")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard/summary", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
