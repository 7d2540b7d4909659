package rating

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/core/common/validation"
	"github.com/dome-hr/dome-backend/internal/transport"
	"github.com/dome-hr/dome-backend/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(actor *auth.User, perner string, dto SubmitRatingDTO) (*SubmitRatingResponse, error)
	ListForPeriod(p Period) ([]KaryawanRating, error)
	ListRatedForPeriod(p Period) ([]KaryawanRating, error)
	GetLatestByPerner(actor *auth.User, perner string) (*Rating, error)
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

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	var dto SubmitRatingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Submit: invalid request body", "error", err, "perner", perner)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Submit(user, perner, dto)
	if err != nil {
		h.Logger.Error("Submit: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Submit: rating stored", "perner", perner, "total_score", resp.TotalScore)
	h.WriteJSON(w, http.StatusCreated, resp)
}

// List serves the assessment worklist for a period given as bulan=MM-YYYY.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	period, err := ParsePeriodParam(r.URL.Query().Get("bulan"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	rows, err := h.Service.ListForPeriod(period)
	if err != nil {
		h.Logger.Error("List: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": rows})
}

// Filter serves only the rated rows for a period given as separate
// bulan_pemberian and tahun_pemberian params.
func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	bulan := r.URL.Query().Get("bulan_pemberian")
	tahun, convErr := strconv.Atoi(r.URL.Query().Get("tahun_pemberian"))
	if convErr != nil {
		h.WriteError(w, http.StatusBadRequest, "tahun_pemberian must be a number")
		return
	}

	if err := validation.ValidatePeriod(bulan, tahun); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	rows, err := h.Service.ListRatedForPeriod(Period{Bulan: bulan, Tahun: tahun})
	if err != nil {
		h.Logger.Error("Filter: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": rows})
}

func (h *Handler) GetByPerner(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	perner := chi.URLParam(r, "perner")

	rating, err := h.Service.GetLatestByPerner(user, perner)
	if err != nil {
		h.Logger.Error("GetByPerner: service error", "error", err, "perner", perner)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, rating)
}
