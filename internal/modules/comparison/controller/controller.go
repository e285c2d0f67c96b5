package controller

import (
	"net/http"

	"weathercompare/internal/climate"
	"weathercompare/internal/metrics"
	"weathercompare/internal/viewstate"
)

type ComparisonController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type comparisonControllerImpl struct {
	dataset *climate.Dataset
	metrics *metrics.Metrics
	baseURL string
}

// NewComparisonController serves views of dataset. baseURL is the public
// origin used in permalinks and share codes; m may be nil.
func NewComparisonController(dataset *climate.Dataset, m *metrics.Metrics, baseURL string) ComparisonController {
	return &comparisonControllerImpl{dataset: dataset, metrics: m, baseURL: baseURL}
}

func (c *comparisonControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleDashboard)
	mux.HandleFunc("GET /partials/comparison", c.handleComparisonPartial)
	mux.HandleFunc("GET /share.png", c.handleShare)
	mux.HandleFunc("GET /api/v1/cities", c.handleCities)
	mux.HandleFunc("GET /api/v1/cities/{id}/statistics", c.handleStatistics)
	mux.HandleFunc("GET /api/v1/chart", c.handleChart)
	mux.HandleFunc("GET /api/v1/range", c.handleRange)
	mux.HandleFunc("GET /api/v1/view", c.handleView)
	mux.HandleFunc("POST /api/v1/view/actions", c.handleAction)
}

// derive recomputes the view for s and counts it.
func (c *comparisonControllerImpl) derive(s viewstate.State) (viewstate.View, error) {
	v, err := viewstate.Derive(c.dataset, s)
	if err != nil {
		return viewstate.View{}, err
	}
	c.metrics.ViewDerived(s.Period, s.Unit)
	return v, nil
}
