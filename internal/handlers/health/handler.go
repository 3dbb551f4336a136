package health

import (
	"context"
	"net/http"
	"time"

	"kwagala/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageOK   = "OK"
	pingTimeout = 2 * time.Second
)

// Readiness is false once the server starts shutting down.
type Readiness interface {
	Ready() bool
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	readiness Readiness
	db        Pinger
}

func New(readiness Readiness, db Pinger) Handler {
	return Handler{
		readiness: readiness,
		db:        db,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/healthz", h.Health)
}

// Health reports whether the server should receive traffic.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /healthz [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.readiness.Ready() {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, messageOK)
}
