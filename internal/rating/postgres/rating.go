package postgres

import (
	"errors"

	apperrors "github.com/dome-hr/dome-backend/internal"
	ratingDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/rating"
	"github.com/dome-hr/dome-backend/internal/rating"
	"gorm.io/gorm"
)

// RatingRepository implements rating.Repository using GORM
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) rating.Repository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(rt *rating.Rating) error {
	row := rating.ToDataModel(rt)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	rt.ID = row.ID
	rt.CreatedAt = row.CreatedAt
	rt.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *RatingRepository) GetByPernerAndPeriod(perner string, p rating.Period) (*rating.Rating, error) {
	var row ratingDatamodel.Rating
	err := r.db.Where("perner = ? AND bulan_pemberian = ? AND tahun_pemberian = ?",
		perner, p.Bulan, p.Tahun).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, err
	}
	return rating.FromDataModel(&row), nil
}

func (r *RatingRepository) GetLatestByPerner(perner string) (*rating.Rating, error) {
	var row ratingDatamodel.Rating
	err := r.db.Where("perner = ?", perner).
		Order("tahun_pemberian DESC, created_at DESC, id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, err
	}
	return rating.FromDataModel(&row), nil
}

// ListForPeriod joins every employee against the period's scores, leaving
// the score columns null where no assessment was submitted.
func (r *RatingRepository) ListForPeriod(p rating.Period) ([]rating.KaryawanRating, error) {
	var rows []rating.KaryawanRating
	err := r.db.
		Table("karyawan").
		Select(`karyawan.perner, karyawan.nama, karyawan.unit, karyawan.sub_unit,
			karyawan.posisi_pekerjaan, rating.total_score, rating.kategori`).
		Joins(`LEFT JOIN rating ON rating.perner = karyawan.perner
			AND rating.bulan_pemberian = ? AND rating.tahun_pemberian = ?`, p.Bulan, p.Tahun).
		Order("karyawan.perner ASC").
		Scan(&rows).Error
	return rows, err
}

// ListRatedForPeriod returns only employees with a submitted score.
func (r *RatingRepository) ListRatedForPeriod(p rating.Period) ([]rating.KaryawanRating, error) {
	var rows []rating.KaryawanRating
	err := r.db.
		Table("karyawan").
		Select(`karyawan.perner, karyawan.nama, karyawan.unit, karyawan.sub_unit,
			karyawan.posisi_pekerjaan, rating.total_score, rating.kategori`).
		Joins(`INNER JOIN rating ON rating.perner = karyawan.perner
			AND rating.bulan_pemberian = ? AND rating.tahun_pemberian = ?`, p.Bulan, p.Tahun).
		Order("karyawan.perner ASC").
		Scan(&rows).Error
	return rows, err
}
