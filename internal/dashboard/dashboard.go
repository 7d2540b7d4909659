package dashboard

import (
	"time"

	"github.com/dome-hr/dome-backend/internal/core/common/validation"
)

// Summary is the landing page aggregate: headcounts overall and broken down
// by gender, age range, and unit per joining month.
type Summary struct {
	KaryawanAktif  int64          `json:"karyawan_aktif"`
	TotalKaryawan  int64          `json:"total_karyawan"`
	JumlahKaryawan JumlahKaryawan `json:"jumlah_karyawan"`
}

type JumlahKaryawan struct {
	BerdasarkanJenisKelamin []GenderCount `json:"berdasarkan_jenis_kelamin"`
	BerdasarkanUsia         []AgeCount    `json:"berdasarkan_usia"`
	BerdasarkanUnit         []UnitMonthly `json:"berdasarkan_unit"`
}

type GenderCount struct {
	JenisKelamin string `json:"jenis_kelamin"`
	Jumlah       int64  `json:"jumlah"`
}

type AgeCount struct {
	RentangUsia string `json:"rentang_usia"`
	Jumlah      int64  `json:"jumlah"`
}

// UnitMonthly is one unit's joining headcount per calendar month, the series
// behind the per-unit bar chart.
type UnitMonthly struct {
	NamaUnit    string       `json:"nama_unit"`
	DataBulanan []MonthCount `json:"data_bulanan"`
}

type MonthCount struct {
	Bulan  string `json:"bulan"`
	Jumlah int64  `json:"jumlah"`
}

// UnitJoinDate is the raw row the monthly series is folded from.
type UnitJoinDate struct {
	Unit           string
	BergabungSejak time.Time
}

// SummaryResponse wraps the aggregate under the key the dashboard reads.
type SummaryResponse struct {
	DashboardSummary Summary `json:"dashboardSummary"`
}

// ageRanges are the buckets the dashboard charts. The last bucket is
// open-ended.
var ageRanges = []struct {
	Label string
	Min   int
	Max   int
}{
	{"<25", 0, 24},
	{"25-34", 25, 34},
	{"35-44", 35, 44},
	{"45-54", 45, 54},
	{">=55", 55, 200},
}

// AgeAt returns completed years between birth date and now.
func AgeAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}

// BucketAges folds birth dates into the dashboard's fixed age ranges,
// keeping every range present even when empty.
func BucketAges(births []time.Time, now time.Time) []AgeCount {
	counts := make([]AgeCount, len(ageRanges))
	for i, r := range ageRanges {
		counts[i] = AgeCount{RentangUsia: r.Label}
	}
	for _, b := range births {
		if b.IsZero() {
			continue
		}
		age := AgeAt(b, now)
		for i, r := range ageRanges {
			if age >= r.Min && age <= r.Max {
				counts[i].Jumlah++
				break
			}
		}
	}
	return counts
}

// BuildUnitMonthly folds (unit, joining date) rows into one series per unit,
// units ordered as given, every month present. Zero joining dates keep the
// unit in the result but count toward no month.
func BuildUnitMonthly(rows []UnitJoinDate) []UnitMonthly {
	var units []UnitMonthly
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Unit]
		if !ok {
			months := make([]MonthCount, len(validation.Bulan))
			for m, name := range validation.Bulan {
				months[m] = MonthCount{Bulan: name}
			}
			i = len(units)
			index[row.Unit] = i
			units = append(units, UnitMonthly{NamaUnit: row.Unit, DataBulanan: months})
		}
		if row.BergabungSejak.IsZero() {
			continue
		}
		units[i].DataBulanan[int(row.BergabungSejak.Month())-1].Jumlah++
	}
	return units
}
