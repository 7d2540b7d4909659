package dashboard

import (
	"log/slog"
	"time"
)

// Repository defines the aggregate queries behind the dashboard
type Repository interface {
	CountKaryawan() (total int64, aktif int64, err error)
	CountByGender() ([]GenderCount, error)
	UnitJoinDates() ([]UnitJoinDate, error)
	BirthDates() ([]time.Time, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Summary assembles the headcount aggregates. Gender counts come straight
// from a GROUP BY; ages and the per-unit monthly series are folded here
// because the buckets are presentation rules, not data.
func (s *Service) Summary() (*SummaryResponse, error) {
	total, aktif, err := s.repo.CountKaryawan()
	if err != nil {
		s.logger.Error("failed to count karyawan", "error", err)
		return nil, err
	}

	byGender, err := s.repo.CountByGender()
	if err != nil {
		s.logger.Error("failed to count by gender", "error", err)
		return nil, err
	}

	joins, err := s.repo.UnitJoinDates()
	if err != nil {
		s.logger.Error("failed to load unit join dates", "error", err)
		return nil, err
	}

	births, err := s.repo.BirthDates()
	if err != nil {
		s.logger.Error("failed to load birth dates", "error", err)
		return nil, err
	}

	return &SummaryResponse{
		DashboardSummary: Summary{
			KaryawanAktif: aktif,
			TotalKaryawan: total,
			JumlahKaryawan: JumlahKaryawan{
				BerdasarkanJenisKelamin: byGender,
				BerdasarkanUsia:         BucketAges(births, time.Now()),
				BerdasarkanUnit:         BuildUnitMonthly(joins),
			},
		},
	}, nil
}
