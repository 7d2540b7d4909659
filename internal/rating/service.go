package rating

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/karyawan"
)

// Repository defines the data access methods for assessments
type Repository interface {
	Create(r *Rating) error
	GetByPernerAndPeriod(perner string, p Period) (*Rating, error)
	GetLatestByPerner(perner string) (*Rating, error)
	ListForPeriod(p Period) ([]KaryawanRating, error)
	ListRatedForPeriod(p Period) ([]KaryawanRating, error)
}

// KaryawanReader confirms the assessed employee exists
type KaryawanReader interface {
	GetByPerner(perner string) (*karyawan.Karyawan, error)
}

// Service handles assessment business logic. One assessment per employee per
// period; the database index backs this up, the service reports the conflict.
type Service struct {
	repo     Repository
	karyawan KaryawanReader
	logger   *slog.Logger
}

func NewService(repo Repository, karyawanReader KaryawanReader, logger *slog.Logger) *Service {
	return &Service{repo: repo, karyawan: karyawanReader, logger: logger}
}

// Submit stores a new assessment and returns the derived total.
func (s *Service) Submit(actor *auth.User, perner string, dto SubmitRatingDTO) (*SubmitRatingResponse, error) {
	if !actor.CanSubmitRating() {
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("rating validation failed", "error", err, "perner", perner)
		return nil, err
	}

	perner = strings.TrimSpace(perner)

	emp, err := s.karyawan.GetByPerner(perner)
	if err != nil {
		return nil, err
	}

	period := Period{Bulan: dto.BulanPemberian, Tahun: dto.TahunPemberian}
	existing, err := s.repo.GetByPernerAndPeriod(perner, period)
	if err != nil && !errors.Is(err, internal.ErrRatingNotFound) {
		s.logger.Error("failed to check for existing rating", "error", err, "perner", perner)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("rating already submitted",
			"perner", perner, "bulan", dto.BulanPemberian, "tahun", dto.TahunPemberian)
		return nil, internal.ErrRatingAlreadyExists
	}

	r := &Rating{
		Perner:                     emp.Perner,
		BulanPemberian:             dto.BulanPemberian,
		TahunPemberian:             dto.TahunPemberian,
		CustomerServiceOrientation: dto.CustomerServiceOrientation,
		AchievmentOrientation:      dto.AchievmentOrientation,
		TeamWork:                   dto.TeamWork,
		ProductKnowledge:           dto.ProductKnowledge,
		OrganizationCommitments:    dto.OrganizationCommitments,
		Performance:                dto.Performance,
		Initiative:                 dto.Initiative,
	}
	r.Recompute()

	if err := s.repo.Create(r); err != nil {
		s.logger.Error("failed to create rating", "error", err, "perner", perner)
		return nil, err
	}

	s.logger.Info("rating submitted",
		"perner", perner,
		"bulan", dto.BulanPemberian,
		"tahun", dto.TahunPemberian,
		"total_score", r.TotalScore)

	return &SubmitRatingResponse{TotalScore: r.TotalScore, Kategori: r.Kategori}, nil
}

// ListForPeriod returns every employee with the period's score joined in,
// rated or not, for the assessment worklist.
func (s *Service) ListForPeriod(p Period) ([]KaryawanRating, error) {
	return s.repo.ListForPeriod(p)
}

// ListRatedForPeriod returns only employees that already have a score for
// the period.
func (s *Service) ListRatedForPeriod(p Period) ([]KaryawanRating, error) {
	return s.repo.ListRatedForPeriod(p)
}

// GetLatestByPerner returns the employee's most recent assessment.
func (s *Service) GetLatestByPerner(actor *auth.User, perner string) (*Rating, error) {
	if !actor.CanViewRatingDetail() {
		return nil, internal.ErrRoleNotAllowed
	}
	return s.repo.GetLatestByPerner(strings.TrimSpace(perner))
}
