package client

import "time"

// Karyawan mirrors the employee record on the wire.
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
}

// KaryawanPage is one page of the employee list.
type KaryawanPage struct {
	Data        []Karyawan `json:"data"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
}

// KaryawanUpdate is the editable subset; nil fields are left untouched.
type KaryawanUpdate struct {
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

// Mutasi mirrors a transfer request on the wire.
type Mutasi struct {
	ID              int64      `json:"id"`
	Perner          string     `json:"perner"`
	Nama            string     `json:"nama"`
	Unit            string     `json:"unit"`
	SubUnit         string     `json:"sub_unit"`
	Kota            string     `json:"kota"`
	PosisiPekerjaan string     `json:"posisi_pekerjaan"`
	UnitBaru        string     `json:"unit_baru"`
	SubUnitBaru     string     `json:"sub_unit_baru"`
	KotaBaru        string     `json:"kota_baru"`
	PosisiBaru      string     `json:"posisi_baru"`
	StatusMutasi    string     `json:"status_mutasi"`
	AlasanPenolakan *string    `json:"alasan_penolakan,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

// MutasiCreate opens a transfer request.
type MutasiCreate struct {
	Perner      string `json:"perner"`
	UnitBaru    string `json:"unit_baru"`
	SubUnitBaru string `json:"sub_unit_baru"`
	KotaBaru    string `json:"kota_baru"`
	PosisiBaru  string `json:"posisi_baru"`
}

// MutasiUpdate edits the proposed assignment of a pending request.
type MutasiUpdate struct {
	UnitBaru    *string `json:"unit_baru,omitempty"`
	SubUnitBaru *string `json:"sub_unit_baru,omitempty"`
	KotaBaru    *string `json:"kota_baru,omitempty"`
	PosisiBaru  *string `json:"posisi_baru,omitempty"`
}

// RatingSubmission carries the seven scores and the period.
type RatingSubmission struct {
	CustomerServiceOrientation int    `json:"customer_service_orientation"`
	AchievmentOrientation      int    `json:"achievment_orientation"`
	TeamWork                   int    `json:"team_work"`
	ProductKnowledge           int    `json:"product_knowledge"`
	OrganizationCommitments    int    `json:"organization_commitments"`
	Performance                int    `json:"performance"`
	Initiative                 int    `json:"initiative"`
	BulanPemberian             string `json:"bulan_pemberian"`
	TahunPemberian             int    `json:"tahun_pemberian"`
}

// RatingResult is the server's answer to a submission.
type RatingResult struct {
	TotalScore int    `json:"total_score"`
	Kategori   string `json:"kategori"`
}

// Rating mirrors a stored assessment.
type Rating struct {
	ID                         int64  `json:"id"`
	Perner                     string `json:"perner"`
	BulanPemberian             string `json:"bulan_pemberian"`
	TahunPemberian             int    `json:"tahun_pemberian"`
	CustomerServiceOrientation int    `json:"customer_service_orientation"`
	AchievmentOrientation      int    `json:"achievment_orientation"`
	TeamWork                   int    `json:"team_work"`
	ProductKnowledge           int    `json:"product_knowledge"`
	OrganizationCommitments    int    `json:"organization_commitments"`
	Performance                int    `json:"performance"`
	Initiative                 int    `json:"initiative"`
	TotalScore                 int    `json:"total_score"`
	Kategori                   string `json:"kategori"`
}

// KaryawanRating is one assessment list row.
type KaryawanRating struct {
	Perner          string  `json:"perner"`
	Nama            string  `json:"nama"`
	Unit            string  `json:"unit"`
	SubUnit         string  `json:"sub_unit"`
	PosisiPekerjaan string  `json:"posisi_pekerjaan"`
	TotalScore      *int    `json:"total_score,omitempty"`
	Kategori        *string `json:"kategori,omitempty"`
}

// UnitDropdown is one unit with its sub-units.
type UnitDropdown struct {
	UnitBaru    string   `json:"unit_baru"`
	SubUnitBaru []string `json:"sub_unit_baru"`
}

// DashboardSummary is the landing page aggregate.
type DashboardSummary struct {
	KaryawanAktif  int64 `json:"karyawan_aktif"`
	TotalKaryawan  int64 `json:"total_karyawan"`
	JumlahKaryawan struct {
		BerdasarkanJenisKelamin []struct {
			JenisKelamin string `json:"jenis_kelamin"`
			Jumlah       int64  `json:"jumlah"`
		} `json:"berdasarkan_jenis_kelamin"`
		BerdasarkanUsia []struct {
			RentangUsia string `json:"rentang_usia"`
			Jumlah      int64  `json:"jumlah"`
		} `json:"berdasarkan_usia"`
		BerdasarkanUnit []struct {
			NamaUnit    string `json:"nama_unit"`
			DataBulanan []struct {
				Bulan  string `json:"bulan"`
				Jumlah int64  `json:"jumlah"`
			} `json:"data_bulanan"`
		} `json:"berdasarkan_unit"`
	} `json:"jumlah_karyawan"`
}
