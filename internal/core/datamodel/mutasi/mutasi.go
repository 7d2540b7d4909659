package mutasi

import "time"

type Mutasi struct {
	ID              int64      `gorm:"primaryKey"`
	Perner          string     `gorm:"column:perner;not null;index"`
	Nama            string     `gorm:"column:nama;not null"`
	Unit            string     `gorm:"column:unit"`
	SubUnit         string     `gorm:"column:sub_unit"`
	Kota            string     `gorm:"column:kota"`
	NIKAtasan       string     `gorm:"column:nik_atasan"`
	NamaAtasan      string     `gorm:"column:nama_atasan"`
	PosisiPekerjaan string     `gorm:"column:posisi_pekerjaan"`
	UnitBaru        string     `gorm:"column:unit_baru"`
	SubUnitBaru     string     `gorm:"column:sub_unit_baru"`
	KotaBaru        string     `gorm:"column:kota_baru"`
	PosisiBaru      string     `gorm:"column:posisi_baru"`
	StatusMutasi    string     `gorm:"column:status_mutasi;default:Diproses"`
	AlasanPenolakan *string    `gorm:"column:alasan_penolakan"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Mutasi) TableName() string {
	return "mutasi"
}
