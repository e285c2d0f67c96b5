package httpapi

import (
	"database/sql"
	"io/fs"
	"net/http"

	"weathercompare/internal/metrics"
)

// NewMux registers the routes shared by every feature: health, metrics and
// the static assets in static.
func NewMux(db *sql.DB, m *metrics.Metrics, static fs.FS) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, db)
	mux.Handle("GET /metrics", m.Handler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	return mux
}
