package karyawan

import (
	"time"

	karyawanDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/karyawan"
)

// Karyawan is the employee master record. Perner is the personnel number
// assigned by payroll and never changes for the lifetime of the employee.
type Karyawan struct {
	Perner           string    `json:"perner"`
	Nama             string    `json:"nama"`
	StatusKaryawan   string    `json:"status_karyawan"`
	JenisKelamin     string    `json:"jenis_kelamin"`
	StatusPernikahan string    `json:"status_pernikahan"`
	JumlahAnak       int       `json:"jumlah_anak"`
	PosisiPekerjaan  string    `json:"posisi_pekerjaan"`
	KategoriPosisi   string    `json:"kategori_posisi"`
	Unit             string    `json:"unit"`
	SubUnit          string    `json:"sub_unit"`
	Kota             string    `json:"kota"`
	NIKAtasan        string    `json:"nik_atasan"`
	NamaAtasan       string    `json:"nama_atasan"`
	SumberAnggaran   string    `json:"sumber_anggaran"`
	SkemaUMK         string    `json:"skema_umk"`
	GajiPokok        float64   `json:"gaji_pokok"`
	TunjanganOps     float64   `json:"tunjangan_operasional"`
	TakeHomePay      float64   `json:"take_home_pay"`
	GajiKotor        float64   `json:"gaji_kotor"`
	TanggalLahir     time.Time `json:"tanggal_lahir"`
	BergabungSejak   time.Time `json:"bergabung_sejak"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

const (
	StatusAktif    = "Aktif"
	StatusNonAktif = "Non Aktif"
)

// RecomputeDerivedPay refreshes the pay fields that are derived from the base
// components. These columns are owned by the server: client input for them is
// always discarded.
func (k *Karyawan) RecomputeDerivedPay() {
	k.GajiKotor = k.GajiPokok + k.TunjanganOps
	k.TakeHomePay = k.GajiKotor
}

func ToDataModel(k *Karyawan) *karyawanDatamodel.Karyawan {
	return &karyawanDatamodel.Karyawan{
		Perner:           k.Perner,
		Nama:             k.Nama,
		StatusKaryawan:   k.StatusKaryawan,
		JenisKelamin:     k.JenisKelamin,
		StatusPernikahan: k.StatusPernikahan,
		JumlahAnak:       k.JumlahAnak,
		PosisiPekerjaan:  k.PosisiPekerjaan,
		KategoriPosisi:   k.KategoriPosisi,
		Unit:             k.Unit,
		SubUnit:          k.SubUnit,
		Kota:             k.Kota,
		NIKAtasan:        k.NIKAtasan,
		NamaAtasan:       k.NamaAtasan,
		SumberAnggaran:   k.SumberAnggaran,
		SkemaUMK:         k.SkemaUMK,
		GajiPokok:        k.GajiPokok,
		TunjanganOps:     k.TunjanganOps,
		THP:              k.TakeHomePay,
		GajiKotor:        k.GajiKotor,
		TanggalLahir:     k.TanggalLahir,
		BergabungSejak:   k.BergabungSejak,
		CreatedAt:        k.CreatedAt,
		UpdatedAt:        k.UpdatedAt,
	}
}

func FromDataModel(k *karyawanDatamodel.Karyawan) *Karyawan {
	return &Karyawan{
		Perner:           k.Perner,
		Nama:             k.Nama,
		StatusKaryawan:   k.StatusKaryawan,
		JenisKelamin:     k.JenisKelamin,
		StatusPernikahan: k.StatusPernikahan,
		JumlahAnak:       k.JumlahAnak,
		PosisiPekerjaan:  k.PosisiPekerjaan,
		KategoriPosisi:   k.KategoriPosisi,
		Unit:             k.Unit,
		SubUnit:          k.SubUnit,
		Kota:             k.Kota,
		NIKAtasan:        k.NIKAtasan,
		NamaAtasan:       k.NamaAtasan,
		SumberAnggaran:   k.SumberAnggaran,
		SkemaUMK:         k.SkemaUMK,
		GajiPokok:        k.GajiPokok,
		TunjanganOps:     k.TunjanganOps,
		TakeHomePay:      k.THP,
		GajiKotor:        k.GajiKotor,
		TanggalLahir:     k.TanggalLahir,
		BergabungSejak:   k.BergabungSejak,
		CreatedAt:        k.CreatedAt,
		UpdatedAt:        k.UpdatedAt,
	}
}
