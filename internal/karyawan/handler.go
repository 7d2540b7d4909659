package karyawan

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/transport"
	"github.com/dome-hr/dome-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(q ListQuery) (*ListResponse, error)
	GetByPerner(perner string) (*Karyawan, error)
	Update(actor *auth.User, perner string, dto UpdateKaryawanDTO) (*Karyawan, error)
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := ParseListQuery(
		query.Get("page"),
		query.Get("search"),
		query.Get("unit"),
		query.Get("sumber_anggaran"),
	)

	resp, err := h.Service.List(q)
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetByPerner(w http.ResponseWriter, r *http.Request) {
	perner := chi.URLParam(r, "perner")
	if perner == "" {
		h.WriteError(w, http.StatusBadRequest, "perner is required")
		return
	}

	k, err := h.Service.GetByPerner(perner)
	if err != nil {
		h.Logger.Error("GetByPerner: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, k)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")
	if perner == "" {
		h.WriteError(w, http.StatusBadRequest, "perner is required")
		return
	}

	var dto UpdateKaryawanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err, "perner", perner)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	k, err := h.Service.Update(user, perner, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Update: karyawan updated", "perner", perner)
	h.WriteJSON(w, http.StatusOK, k)
}
