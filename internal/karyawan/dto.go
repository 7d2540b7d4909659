package karyawan

import (
	"strconv"
	"strings"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/core/common/validation"
)

const DefaultPageSize = 10

// ListQuery carries the list parameters. Search and the categorical filters
// are applied inside the database query so a page is always consistent with
// the active filters.
type ListQuery struct {
	Page           int
	PageSize       int
	Search         string
	Unit           string
	SumberAnggaran string
}

func ParseListQuery(pageStr, search, unit, sumberAnggaran string) ListQuery {
	page := 1
	if pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	return ListQuery{
		Page:           page,
		PageSize:       DefaultPageSize,
		Search:         strings.TrimSpace(search),
		Unit:           strings.TrimSpace(unit),
		SumberAnggaran: strings.TrimSpace(sumberAnggaran),
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// ListResponse is the paginated list envelope.
type ListResponse struct {
	Data        []*Karyawan `json:"data"`
	CurrentPage int         `json:"currentPage"`
	TotalPages  int         `json:"totalPages"`
}

// UpdateKaryawanDTO is the editable subset of the employee record. Fields are
// pointers so an absent field leaves the stored value untouched. Derived pay
// columns are recomputed server-side and are not accepted here.
type UpdateKaryawanDTO struct {
	Nama             *string  `json:"nama,omitempty"`
	StatusKaryawan   *string  `json:"status_karyawan,omitempty"`
	JenisKelamin     *string  `json:"jenis_kelamin,omitempty"`
	StatusPernikahan *string  `json:"status_pernikahan,omitempty"`
	JumlahAnak       *int     `json:"jumlah_anak,omitempty"`
	PosisiPekerjaan  *string  `json:"posisi_pekerjaan,omitempty"`
	KategoriPosisi   *string  `json:"kategori_posisi,omitempty"`
	Unit             *string  `json:"unit,omitempty"`
	SubUnit          *string  `json:"sub_unit,omitempty"`
	Kota             *string  `json:"kota,omitempty"`
	NIKAtasan        *string  `json:"nik_atasan,omitempty"`
	NamaAtasan       *string  `json:"nama_atasan,omitempty"`
	SumberAnggaran   *string  `json:"sumber_anggaran,omitempty"`
	SkemaUMK         *string  `json:"skema_umk,omitempty"`
	GajiPokok        *float64 `json:"gaji_pokok,omitempty"`
	TunjanganOps     *float64 `json:"tunjangan_operasional,omitempty"`
}

func (dto UpdateKaryawanDTO) Validate() error {
	v := validation.NewValidator()

	if dto.Nama != nil {
		v.Field("nama", *dto.Nama).Required().MaxLength(255)
	}
	if dto.StatusKaryawan != nil {
		v.Field("status_karyawan", *dto.StatusKaryawan).
			OneOf([]string{StatusAktif, StatusNonAktif}, internal.ErrCodeValidationFailed)
	}
	if dto.JumlahAnak != nil && *dto.JumlahAnak < 0 {
		return internal.NewValidationFieldError("jumlah_anak", "must not be negative", internal.ErrCodeValidationFailed)
	}
	if dto.GajiPokok != nil && *dto.GajiPokok < 0 {
		return internal.NewValidationFieldError("gaji_pokok", "must not be negative", internal.ErrCodeValidationFailed)
	}
	if dto.TunjanganOps != nil && *dto.TunjanganOps < 0 {
		return internal.NewValidationFieldError("tunjangan_operasional", "must not be negative", internal.ErrCodeValidationFailed)
	}

	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ApplyTo copies the present fields onto the record and refreshes the derived
// pay columns.
func (dto UpdateKaryawanDTO) ApplyTo(k *Karyawan) {
	if dto.Nama != nil {
		k.Nama = *dto.Nama
	}
	if dto.StatusKaryawan != nil {
		k.StatusKaryawan = *dto.StatusKaryawan
	}
	if dto.JenisKelamin != nil {
		k.JenisKelamin = *dto.JenisKelamin
	}
	if dto.StatusPernikahan != nil {
		k.StatusPernikahan = *dto.StatusPernikahan
	}
	if dto.JumlahAnak != nil {
		k.JumlahAnak = *dto.JumlahAnak
	}
	if dto.PosisiPekerjaan != nil {
		k.PosisiPekerjaan = *dto.PosisiPekerjaan
	}
	if dto.KategoriPosisi != nil {
		k.KategoriPosisi = *dto.KategoriPosisi
	}
	if dto.Unit != nil {
		k.Unit = *dto.Unit
	}
	if dto.SubUnit != nil {
		k.SubUnit = *dto.SubUnit
	}
	if dto.Kota != nil {
		k.Kota = *dto.Kota
	}
	if dto.NIKAtasan != nil {
		k.NIKAtasan = *dto.NIKAtasan
	}
	if dto.NamaAtasan != nil {
		k.NamaAtasan = *dto.NamaAtasan
	}
	if dto.SumberAnggaran != nil {
		k.SumberAnggaran = *dto.SumberAnggaran
	}
	if dto.SkemaUMK != nil {
		k.SkemaUMK = *dto.SkemaUMK
	}
	if dto.GajiPokok != nil {
		k.GajiPokok = *dto.GajiPokok
	}
	if dto.TunjanganOps != nil {
		k.TunjanganOps = *dto.TunjanganOps
	}
	k.RecomputeDerivedPay()
}
