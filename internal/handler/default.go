package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/pagetracker/internal/response"
)

// Pinger is anything that can report whether it is reachable, such as the
// key/value store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves basic root and health endpoints.
type HomeHandler struct {
	store Pinger
}

// NewHomeHandler returns a new HomeHandler. store may be nil.
func NewHomeHandler(store Pinger) *HomeHandler { return &HomeHandler{store: store} }

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to pagetracker",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Reports whether the API and its key/value store are reachable.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	payload := response.HealthPayload{
		Status: "ok",
		Store:  "unknown",
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.store.Ping(ctx); err != nil {
			response.RespondError(w, http.StatusServiceUnavailable, "store unreachable: "+err.Error())
			return
		}
		payload.Store = "ok"
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
