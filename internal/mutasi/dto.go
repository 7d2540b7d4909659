package mutasi

import (
	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/core/common/validation"
)

// CreateMutasiDTO opens a transfer request for an employee. The current
// assignment is snapshotted from the employee record, not taken from the
// request.
type CreateMutasiDTO struct {
	Perner      string `json:"perner"`
	UnitBaru    string `json:"unit_baru"`
	SubUnitBaru string `json:"sub_unit_baru"`
	KotaBaru    string `json:"kota_baru"`
	PosisiBaru  string `json:"posisi_baru"`
}

func (dto CreateMutasiDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("perner", dto.Perner).Required().MaxLength(20)
	v.Field("unit_baru", dto.UnitBaru).Required()
	v.Field("sub_unit_baru", dto.SubUnitBaru).Required()
	v.Field("kota_baru", dto.KotaBaru).Required()
	v.Field("posisi_baru", dto.PosisiBaru).Required()
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// UpdateMutasiDTO edits the proposed assignment of a pending request.
// Absent fields keep their stored value.
type UpdateMutasiDTO struct {
	UnitBaru    *string `json:"unit_baru,omitempty"`
	SubUnitBaru *string `json:"sub_unit_baru,omitempty"`
	KotaBaru    *string `json:"kota_baru,omitempty"`
	PosisiBaru  *string `json:"posisi_baru,omitempty"`
}

func (dto UpdateMutasiDTO) Validate() error {
	if dto.UnitBaru != nil && *dto.UnitBaru == "" {
		return internal.NewValidationFieldError("unit_baru", "unit_baru must not be empty", internal.ErrCodeInvalidUnit)
	}
	if dto.SubUnitBaru != nil && *dto.SubUnitBaru == "" {
		return internal.NewValidationFieldError("sub_unit_baru", "sub_unit_baru must not be empty", internal.ErrCodeInvalidSubUnit)
	}
	return nil
}

func (dto UpdateMutasiDTO) ApplyTo(m *Mutasi) {
	if dto.UnitBaru != nil {
		m.UnitBaru = *dto.UnitBaru
	}
	if dto.SubUnitBaru != nil {
		m.SubUnitBaru = *dto.SubUnitBaru
	}
	if dto.KotaBaru != nil {
		m.KotaBaru = *dto.KotaBaru
	}
	if dto.PosisiBaru != nil {
		m.PosisiBaru = *dto.PosisiBaru
	}
}

// RejectMutasiDTO carries the mandatory rejection reason.
type RejectMutasiDTO struct {
	AlasanPenolakan string `json:"alasan_penolakan"`
}

func (dto RejectMutasiDTO) Validate() error {
	if dto.AlasanPenolakan == "" {
		return internal.NewValidationFieldError("alasan_penolakan", "rejection reason is required", internal.ErrCodeMissingReason)
	}
	return nil
}
