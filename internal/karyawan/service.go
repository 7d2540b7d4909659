package karyawan

import (
	"log/slog"
	"strings"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
)

// Repository defines the data access methods for employees
type Repository interface {
	List(q ListQuery) ([]*Karyawan, error)
	Count(q ListQuery) (int64, error)
	GetByPerner(perner string) (*Karyawan, error)
	Update(k *Karyawan) error
}

// Service handles employee business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns one page of employees with the filters applied in the query,
// so the page numbering always matches what the filters select.
func (s *Service) List(q ListQuery) (*ListResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	total, err := s.repo.Count(q)
	if err != nil {
		s.logger.Error("failed to count karyawan", "error", err)
		return nil, err
	}

	totalPages := int((total + int64(q.PageSize) - 1) / int64(q.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	rows, err := s.repo.List(q)
	if err != nil {
		s.logger.Error("failed to list karyawan", "error", err, "page", q.Page)
		return nil, err
	}

	return &ListResponse{
		Data:        rows,
		CurrentPage: q.Page,
		TotalPages:  totalPages,
	}, nil
}

func (s *Service) GetByPerner(perner string) (*Karyawan, error) {
	return s.repo.GetByPerner(strings.TrimSpace(perner))
}

// Update applies a partial edit and returns the stored record. Saving with no
// fields present leaves the record unchanged apart from updated_at. Route
// middleware already gates by role; the service re-checks so the rule holds
// for callers that bypass HTTP.
func (s *Service) Update(actor *auth.User, perner string, dto UpdateKaryawanDTO) (*Karyawan, error) {
	if !actor.CanEditKaryawan() {
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("karyawan update validation failed", "error", err, "perner", perner)
		return nil, err
	}

	existing, err := s.repo.GetByPerner(strings.TrimSpace(perner))
	if err != nil {
		return nil, err
	}

	dto.ApplyTo(existing)

	if err := s.repo.Update(existing); err != nil {
		s.logger.Error("failed to update karyawan", "error", err, "perner", perner)
		return nil, err
	}

	s.logger.Info("karyawan updated", "perner", perner)

	return s.repo.GetByPerner(existing.Perner)
}
