package mutasi

import (
	"time"

	mutasiDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/mutasi"
)

// Mutasi is a transfer request: the employee's assignment at submission time
// plus the proposed new assignment. Once a supervisor decides it, the record
// is terminal.
type Mutasi struct {
	ID              int64      `json:"id"`
	Perner          string     `json:"perner"`
	Nama            string     `json:"nama"`
	Unit            string     `json:"unit"`
	SubUnit         string     `json:"sub_unit"`
	Kota            string     `json:"kota"`
	NIKAtasan       string     `json:"nik_atasan"`
	NamaAtasan      string     `json:"nama_atasan"`
	PosisiPekerjaan string     `json:"posisi_pekerjaan"`
	UnitBaru        string     `json:"unit_baru"`
	SubUnitBaru     string     `json:"sub_unit_baru"`
	KotaBaru        string     `json:"kota_baru"`
	PosisiBaru      string     `json:"posisi_baru"`
	StatusMutasi    string     `json:"status_mutasi"`
	AlasanPenolakan *string    `json:"alasan_penolakan,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

const (
	StatusDiproses  = "Diproses"
	StatusDisetujui = "Disetujui"
	StatusDitolak   = "Ditolak"
)

func (m *Mutasi) CanBeApproved() bool {
	return m.StatusMutasi == StatusDiproses
}

func (m *Mutasi) CanBeRejected() bool {
	return m.StatusMutasi == StatusDiproses
}

func (m *Mutasi) CanBeEdited() bool {
	return m.StatusMutasi == StatusDiproses
}

func (m *Mutasi) Approve() {
	m.StatusMutasi = StatusDisetujui
	now := time.Now()
	m.DecidedAt = &now
	m.UpdatedAt = now
}

func (m *Mutasi) Reject(reason string) {
	m.StatusMutasi = StatusDitolak
	m.AlasanPenolakan = &reason
	now := time.Now()
	m.DecidedAt = &now
	m.UpdatedAt = now
}

func ToDataModel(m *Mutasi) *mutasiDatamodel.Mutasi {
	return &mutasiDatamodel.Mutasi{
		ID:              m.ID,
		Perner:          m.Perner,
		Nama:            m.Nama,
		Unit:            m.Unit,
		SubUnit:         m.SubUnit,
		Kota:            m.Kota,
		NIKAtasan:       m.NIKAtasan,
		NamaAtasan:      m.NamaAtasan,
		PosisiPekerjaan: m.PosisiPekerjaan,
		UnitBaru:        m.UnitBaru,
		SubUnitBaru:     m.SubUnitBaru,
		KotaBaru:        m.KotaBaru,
		PosisiBaru:      m.PosisiBaru,
		StatusMutasi:    m.StatusMutasi,
		AlasanPenolakan: m.AlasanPenolakan,
		DecidedAt:       m.DecidedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromDataModel(m *mutasiDatamodel.Mutasi) *Mutasi {
	return &Mutasi{
		ID:              m.ID,
		Perner:          m.Perner,
		Nama:            m.Nama,
		Unit:            m.Unit,
		SubUnit:         m.SubUnit,
		Kota:            m.Kota,
		NIKAtasan:       m.NIKAtasan,
		NamaAtasan:      m.NamaAtasan,
		PosisiPekerjaan: m.PosisiPekerjaan,
		UnitBaru:        m.UnitBaru,
		SubUnitBaru:     m.SubUnitBaru,
		KotaBaru:        m.KotaBaru,
		PosisiBaru:      m.PosisiBaru,
		StatusMutasi:    m.StatusMutasi,
		AlasanPenolakan: m.AlasanPenolakan,
		DecidedAt:       m.DecidedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
