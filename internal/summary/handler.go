package summary

import (
	"log/slog"
	"net/http"

	"github.com/minimart-systems/minimart/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("compute summary", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sum)
}
