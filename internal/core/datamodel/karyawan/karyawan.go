package karyawan

import "time"

type Karyawan struct {
	Perner           string    `gorm:"primaryKey;column:perner"`
	Nama             string    `gorm:"column:nama;not null"`
	StatusKaryawan   string    `gorm:"column:status_karyawan;default:Aktif"`
	JenisKelamin     string    `gorm:"column:jenis_kelamin"`
	StatusPernikahan string    `gorm:"column:status_pernikahan"`
	JumlahAnak       int       `gorm:"column:jumlah_anak"`
	PosisiPekerjaan  string    `gorm:"column:posisi_pekerjaan"`
	KategoriPosisi   string    `gorm:"column:kategori_posisi"`
	Unit             string    `gorm:"column:unit"`
	SubUnit          string    `gorm:"column:sub_unit"`
	Kota             string    `gorm:"column:kota"`
	NIKAtasan        string    `gorm:"column:nik_atasan"`
	NamaAtasan       string    `gorm:"column:nama_atasan"`
	SumberAnggaran   string    `gorm:"column:sumber_anggaran"`
	SkemaUMK         string    `gorm:"column:skema_umk"`
	GajiPokok        float64   `gorm:"column:gaji_pokok"`
	TunjanganOps     float64   `gorm:"column:tunjangan_operasional"`
	THP              float64   `gorm:"column:take_home_pay"`
	GajiKotor        float64   `gorm:"column:gaji_kotor"`
	TanggalLahir     time.Time `gorm:"column:tanggal_lahir;type:date"`
	BergabungSejak   time.Time `gorm:"column:bergabung_sejak;type:date"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Karyawan) TableName() string {
	return "karyawan"
}
