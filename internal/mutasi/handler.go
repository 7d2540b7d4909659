package mutasi

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
	Create(actor *auth.User, dto CreateMutasiDTO) (*Mutasi, error)
	GetAll() ([]*Mutasi, error)
	GetByPerner(perner string) (*Mutasi, error)
	Update(actor *auth.User, perner string, dto UpdateMutasiDTO) (*Mutasi, error)
	Approve(actor *auth.User, perner string) (*Mutasi, error)
	Reject(actor *auth.User, perner string, dto RejectMutasiDTO) (*Mutasi, error)
	Delete(actor *auth.User, perner string) error
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateMutasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Create: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.Create(user, dto)
	if err != nil {
		h.Logger.Error("Create: service error", "error", err, "perner", dto.Perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Create: mutasi created", "mutasi_id", m.ID, "perner", m.Perner)
	h.WriteJSON(w, http.StatusCreated, m)
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetAll: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": list})
}

func (h *Handler) GetByPerner(w http.ResponseWriter, r *http.Request) {
	perner := chi.URLParam(r, "perner")

	m, err := h.Service.GetByPerner(perner)
	if err != nil {
		h.Logger.Error("GetByPerner: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	var dto UpdateMutasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Update: invalid request body", "error", err, "perner", perner)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.Update(user, perner, dto)
	if err != nil {
		h.Logger.Error("Update: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	m, err := h.Service.Approve(user, perner)
	if err != nil {
		h.Logger.Error("Approve: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Approve: mutasi approved", "mutasi_id", m.ID, "perner", perner)
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	var dto RejectMutasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Reject: invalid request body", "error", err, "perner", perner)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.Service.Reject(user, perner, dto)
	if err != nil {
		h.Logger.Error("Reject: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Reject: mutasi rejected", "mutasi_id", m.ID, "perner", perner)
	h.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	if err := h.Service.Delete(user, perner); err != nil {
		h.Logger.Error("Delete: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Delete: mutasi deleted", "perner", perner)
	w.WriteHeader(http.StatusNoContent)
}
