package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"

	"weathercompare/internal/config"
	"weathercompare/internal/metrics"
)

// slogRecoveryLogger adapts slog to handlers.RecoveryHandlerLogger.
type slogRecoveryLogger struct{}

func (slogRecoveryLogger) Println(v ...interface{}) {
	slog.Error("http handler panic", "panic", fmt.Sprint(v...))
}

// NewServer wraps mux as: request logging, then panic recovery, then gzip.
func NewServer(cfg config.Config, mux *http.ServeMux, m *metrics.Metrics) *http.Server {
	var h http.Handler = handlers.CompressHandler(mux)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(slogRecoveryLogger{}),
		handlers.PrintRecoveryStack(cfg.AppEnv == "dev"),
	)(h)
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           requestLogger(h, m),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
