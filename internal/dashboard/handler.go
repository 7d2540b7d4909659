package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/dome-hr/dome-backend/internal/transport"
	"github.com/dome-hr/dome-backend/pkg/logger"
)

type ServiceAPI interface {
	Summary() (*SummaryResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Summary()
	if err != nil {
		h.Logger.Error("Summary: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}
