package statistics_test

import (
	"encoding/json"
	"it-inventory/server"
	"it-inventory/statistics"
	"it-inventory/vocabulary"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatsAndChartsOverHttp(t *testing.T) {
	db := testDatabase(t)
	create(t, db,
		seed{name: "a", category: "Laptop", status: "Aktif", location: "Jakarta", price: "100"},
		seed{name: "b", category: "Server", status: "Rusak", location: "Bandung"},
	)
	v := vocabulary.Default()
	h := server.New(testLogger()).
		SetBasePath("/api").
		AddRouteInitializer(statistics.InitResource(db, v, statistics.DefaultAlertDays)).
		AddRootRouteInitializer(statistics.InitDashboard(db, v, statistics.DefaultAlertDays)).
		Router()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d.", w.Code)
	}
	var s statistics.StatsRestModel
	if err := json.Unmarshal(w.Body.Bytes(), &s); err != nil {
		t.Fatalf("Failed to decode stats: %v", err)
	}
	if s.Total != 2 || s.Active != 1 || s.Broken != 1 || s.Maintenance != 0 {
		t.Errorf("Unexpected stats: %+v", s)
	}
	if !strings.Contains(w.Body.String(), `"warrantyAlerts":0`) {
		t.Errorf("Expected warrantyAlerts key, got %s.", w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/charts", nil))
	var c statistics.ChartsRestModel
	if err := json.Unmarshal(w.Body.Bytes(), &c); err != nil {
		t.Fatalf("Failed to decode charts: %v", err)
	}
	if c.Category["Server"] != 1 || c.Value["Laptop"] != 100 || c.Location["Bandung"] != 1 || c.Status["Rusak"] != 1 {
		t.Errorf("Unexpected charts: %+v", c)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stats/warranty", nil))
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("Expected empty warranty list, got %d %s.", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("Unexpected dashboard response: %d %s", w.Code, w.Header().Get("Content-Type"))
	}
}
