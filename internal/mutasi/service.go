package mutasi

import (
	"log/slog"
	"strings"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/karyawan"
)

// Repository defines the data access methods for transfer requests
type Repository interface {
	Create(m *Mutasi) error
	GetAll() ([]*Mutasi, error)
	GetByPerner(perner string) (*Mutasi, error)
	GetActiveByPerner(perner string) (*Mutasi, error)
	Update(m *Mutasi) error
	Delete(id int64) error
}

// KaryawanReader provides the employee snapshot a new request is built from
type KaryawanReader interface {
	GetByPerner(perner string) (*karyawan.Karyawan, error)
}

// UnitChecker validates that a proposed unit/sub-unit pairing exists in the
// reference table
type UnitChecker interface {
	ValidPair(unit, subUnit string) (bool, error)
}

// Service handles the transfer request workflow. Route middleware already
// gates by role; the service re-checks so the rules hold even for callers
// that bypass HTTP.
type Service struct {
	repo     Repository
	karyawan KaryawanReader
	units    UnitChecker
	logger   *slog.Logger
}

func NewService(repo Repository, karyawanReader KaryawanReader, units UnitChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		karyawan: karyawanReader,
		units:    units,
		logger:   logger,
	}
}

// Create opens a transfer request, snapshotting the employee's current
// assignment. An employee can only have one undecided request at a time.
func (s *Service) Create(actor *auth.User, dto CreateMutasiDTO) (*Mutasi, error) {
	if !actor.CanCreateMutasi() {
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("mutasi create validation failed", "error", err)
		return nil, err
	}

	if err := s.checkPair(dto.UnitBaru, dto.SubUnitBaru); err != nil {
		return nil, err
	}

	perner := strings.TrimSpace(dto.Perner)

	emp, err := s.karyawan.GetByPerner(perner)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetActiveByPerner(perner)
	if err != nil {
		s.logger.Error("failed to check for pending mutasi", "error", err, "perner", perner)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("mutasi already pending", "perner", perner, "mutasi_id", existing.ID)
		return nil, internal.ErrMutasiAlreadyExists
	}

	m := &Mutasi{
		Perner:          emp.Perner,
		Nama:            emp.Nama,
		Unit:            emp.Unit,
		SubUnit:         emp.SubUnit,
		Kota:            emp.Kota,
		NIKAtasan:       emp.NIKAtasan,
		NamaAtasan:      emp.NamaAtasan,
		PosisiPekerjaan: emp.PosisiPekerjaan,
		UnitBaru:        dto.UnitBaru,
		SubUnitBaru:     dto.SubUnitBaru,
		KotaBaru:        dto.KotaBaru,
		PosisiBaru:      dto.PosisiBaru,
		StatusMutasi:    StatusDiproses,
	}

	if err := s.repo.Create(m); err != nil {
		s.logger.Error("failed to create mutasi", "error", err, "perner", perner)
		return nil, err
	}

	s.logger.Info("mutasi created",
		"mutasi_id", m.ID,
		"perner", perner,
		"unit_baru", dto.UnitBaru,
		"sub_unit_baru", dto.SubUnitBaru)

	return m, nil
}

func (s *Service) GetAll() ([]*Mutasi, error) {
	return s.repo.GetAll()
}

func (s *Service) GetByPerner(perner string) (*Mutasi, error) {
	return s.repo.GetByPerner(strings.TrimSpace(perner))
}

// Update edits the proposed assignment. Only undecided requests can change.
func (s *Service) Update(actor *auth.User, perner string, dto UpdateMutasiDTO) (*Mutasi, error) {
	if !actor.CanEditMutasi() {
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.GetByPerner(strings.TrimSpace(perner))
	if err != nil {
		return nil, err
	}

	if !m.CanBeEdited() {
		s.logger.Warn("mutasi not editable", "mutasi_id", m.ID, "status", m.StatusMutasi)
		return nil, internal.ErrInvalidMutasiStatus
	}

	dto.ApplyTo(m)

	if err := s.checkPair(m.UnitBaru, m.SubUnitBaru); err != nil {
		return nil, err
	}

	if err := s.repo.Update(m); err != nil {
		s.logger.Error("failed to update mutasi", "error", err, "mutasi_id", m.ID)
		return nil, err
	}

	return s.repo.GetByPerner(m.Perner)
}

// Approve settles a pending request in favor of the transfer and returns the
// stored record so callers see the authoritative state.
func (s *Service) Approve(actor *auth.User, perner string) (*Mutasi, error) {
	if !actor.CanDecideMutasi() {
		return nil, internal.ErrRoleNotAllowed
	}

	m, err := s.repo.GetByPerner(strings.TrimSpace(perner))
	if err != nil {
		return nil, err
	}

	if !m.CanBeApproved() {
		s.logger.Warn("mutasi cannot be approved", "mutasi_id", m.ID, "status", m.StatusMutasi)
		return nil, internal.ErrInvalidMutasiStatus
	}

	m.Approve()

	if err := s.repo.Update(m); err != nil {
		s.logger.Error("failed to approve mutasi", "error", err, "mutasi_id", m.ID)
		return nil, err
	}

	s.logger.Info("mutasi approved", "mutasi_id", m.ID, "perner", m.Perner, "approver_id", actor.ID)

	return s.repo.GetByPerner(m.Perner)
}

// Reject settles a pending request against the transfer. The reason is
// validated before the record is touched.
func (s *Service) Reject(actor *auth.User, perner string, dto RejectMutasiDTO) (*Mutasi, error) {
	if !actor.CanDecideMutasi() {
		return nil, internal.ErrRoleNotAllowed
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("mutasi reject validation failed", "error", err, "perner", perner)
		return nil, err
	}

	m, err := s.repo.GetByPerner(strings.TrimSpace(perner))
	if err != nil {
		return nil, err
	}

	if !m.CanBeRejected() {
		s.logger.Warn("mutasi cannot be rejected", "mutasi_id", m.ID, "status", m.StatusMutasi)
		return nil, internal.ErrInvalidMutasiStatus
	}

	m.Reject(dto.AlasanPenolakan)

	if err := s.repo.Update(m); err != nil {
		s.logger.Error("failed to reject mutasi", "error", err, "mutasi_id", m.ID)
		return nil, err
	}

	s.logger.Info("mutasi rejected", "mutasi_id", m.ID, "perner", m.Perner, "approver_id", actor.ID)

	return s.repo.GetByPerner(m.Perner)
}

// Delete removes a transfer request entirely.
func (s *Service) Delete(actor *auth.User, perner string) error {
	if !actor.CanDeleteMutasi() {
		return internal.ErrRoleNotAllowed
	}

	m, err := s.repo.GetByPerner(strings.TrimSpace(perner))
	if err != nil {
		return err
	}

	if err := s.repo.Delete(m.ID); err != nil {
		s.logger.Error("failed to delete mutasi", "error", err, "mutasi_id", m.ID)
		return err
	}

	s.logger.Info("mutasi deleted", "mutasi_id", m.ID, "perner", m.Perner)
	return nil
}

func (s *Service) checkPair(unitBaru, subUnitBaru string) error {
	ok, err := s.units.ValidPair(unitBaru, subUnitBaru)
	if err != nil {
		s.logger.Error("failed to check unit pairing", "error", err)
		return err
	}
	if !ok {
		return internal.NewValidationFieldError("sub_unit_baru",
			"sub unit does not belong to the selected unit", internal.ErrCodeInvalidSubUnit)
	}
	return nil
}
