package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"jindam_vocab/internal/config"
	"jindam_vocab/internal/model"
	"jindam_vocab/internal/webutil"
)

// Pinger はストレージの疎通確認
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping   Pinger
	now    func() time.Time
	logger *slog.Logger
}

func NewHealthHandler(ping Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{ping: ping, now: time.Now, logger: logger}
}

// GetHealth はクライアントが起動時に呼ぶ状態確認
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := model.HealthResponse{
		Status:    "ok",
		Message:   config.HealthMessage,
		Version:   config.AppVersion,
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		API:       config.APILabel,
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp, h.logger)
}

// GetLiveness はインフラ向けの確認。DB に接続できなければ 503
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
