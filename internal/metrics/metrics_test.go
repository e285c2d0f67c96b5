package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"weathercompare/internal/climate"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest("GET /api/v1/view", http.StatusOK, 12*time.Millisecond)
	m.ObserveRequest("GET /api/v1/view", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest("GET /api/v1/view", http.StatusBadRequest, time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal("GET /api/v1/view", http.StatusOK)); got != 2 {
		t.Errorf("requests{200} = %v; want 2", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal("GET /api/v1/view", http.StatusBadRequest)); got != 1 {
		t.Errorf("requests{400} = %v; want 1", got)
	}
}

func TestObserveRequest_emptyRoute(t *testing.T) {
	m := New()
	m.ObserveRequest("", http.StatusNotFound, time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal("unmatched", http.StatusNotFound)); got != 1 {
		t.Errorf("requests{unmatched} = %v; want 1", got)
	}
}

func TestViewDerived(t *testing.T) {
	m := New()
	m.ViewDerived(climate.PeriodNormal, climate.Fahrenheit)

	if got := testutil.ToFloat64(m.ViewsDerivedTotal(climate.PeriodNormal, climate.Fahrenheit)); got != 1 {
		t.Errorf("views{normal,fahrenheit} = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.ViewsDerivedTotal(climate.PeriodRecent, climate.Celsius)); got != 0 {
		t.Errorf("views{recent,celsius} = %v; want 0", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	// Must not panic.
	m.ObserveRequest("GET /", http.StatusOK, time.Millisecond)
	m.ViewDerived(climate.PeriodRecent, climate.Celsius)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ViewDerived(climate.PeriodRecent, climate.Celsius)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		"weathercompare_comparison_views_derived_total",
		`period="recent"`,
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}

func TestNew_isolatedRegistries(t *testing.T) {
	a, b := New(), New()
	a.ViewDerived(climate.PeriodRecent, climate.Celsius)

	if got := testutil.ToFloat64(b.ViewsDerivedTotal(climate.PeriodRecent, climate.Celsius)); got != 0 {
		t.Errorf("second registry saw %v derivations; want 0", got)
	}
}
