package comparison

import (
	"net/http"

	"weathercompare/internal/climate"
	"weathercompare/internal/metrics"
	"weathercompare/internal/modules/comparison/controller"
)

func RegisterFeature(mux *http.ServeMux, dataset *climate.Dataset, m *metrics.Metrics, baseURL string) {
	comparisonController := controller.NewComparisonController(dataset, m, baseURL)
	comparisonController.RegisterRoutes(mux)
}
