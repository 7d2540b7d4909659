package unit

import (
	"log/slog"
	"net/http"

	"github.com/dome-hr/dome-backend/internal/transport"
	"github.com/dome-hr/dome-backend/pkg/logger"
)

type ServiceAPI interface {
	Dropdown() ([]UnitDropdown, error)
	ValidPair(unit, subUnit string) (bool, error)
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

func (h *Handler) Dropdown(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.Dropdown()
	if err != nil {
		h.Logger.Error("Dropdown: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}
