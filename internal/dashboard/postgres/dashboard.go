package postgres

import (
	"time"

	karyawanDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/karyawan"
	"github.com/dome-hr/dome-backend/internal/dashboard"
	"github.com/dome-hr/dome-backend/internal/karyawan"
	"gorm.io/gorm"
)

// DashboardRepository implements dashboard.Repository using GORM
type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) CountKaryawan() (total int64, aktif int64, err error) {
	if err = r.db.Model(&karyawanDatamodel.Karyawan{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err = r.db.Model(&karyawanDatamodel.Karyawan{}).
		Where("status_karyawan = ?", karyawan.StatusAktif).
		Count(&aktif).Error
	return total, aktif, err
}

func (r *DashboardRepository) CountByGender() ([]dashboard.GenderCount, error) {
	var rows []dashboard.GenderCount
	err := r.db.Model(&karyawanDatamodel.Karyawan{}).
		Select("jenis_kelamin, COUNT(*) AS jumlah").
		Group("jenis_kelamin").
		Order("jenis_kelamin ASC").
		Scan(&rows).Error
	return rows, err
}

// UnitJoinDates returns raw (unit, joining date) rows; the monthly folding
// happens in the service so the month table is not baked into SQL.
func (r *DashboardRepository) UnitJoinDates() ([]dashboard.UnitJoinDate, error) {
	var rows []dashboard.UnitJoinDate
	err := r.db.Model(&karyawanDatamodel.Karyawan{}).
		Select("unit, bergabung_sejak").
		Order("unit ASC").
		Scan(&rows).Error
	return rows, err
}

// BirthDates returns raw birth dates; age bucketing happens in the service
// so the ranges are not baked into SQL.
func (r *DashboardRepository) BirthDates() ([]time.Time, error) {
	var rows []time.Time
	err := r.db.Model(&karyawanDatamodel.Karyawan{}).
		Pluck("tanggal_lahir", &rows).Error
	return rows, err
}
