package postgres

import (
	"errors"
	"strings"

	apperrors "github.com/dome-hr/dome-backend/internal"
	karyawanDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/karyawan"
	"github.com/dome-hr/dome-backend/internal/karyawan"
	"gorm.io/gorm"
)

// KaryawanRepository implements karyawan.Repository using GORM
type KaryawanRepository struct {
	db *gorm.DB
}

func NewKaryawanRepository(db *gorm.DB) karyawan.Repository {
	return &KaryawanRepository{db: db}
}

func (r *KaryawanRepository) applyFilters(tx *gorm.DB, q karyawan.ListQuery) *gorm.DB {
	if q.Search != "" {
		tx = tx.Where("LOWER(nama) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}
	if q.Unit != "" {
		tx = tx.Where("unit = ?", q.Unit)
	}
	if q.SumberAnggaran != "" {
		tx = tx.Where("sumber_anggaran = ?", q.SumberAnggaran)
	}
	return tx
}

func (r *KaryawanRepository) List(q karyawan.ListQuery) ([]*karyawan.Karyawan, error) {
	var rows []*karyawanDatamodel.Karyawan
	err := r.applyFilters(r.db.Model(&karyawanDatamodel.Karyawan{}), q).
		Order("perner ASC").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*karyawan.Karyawan, 0, len(rows))
	for _, row := range rows {
		result = append(result, karyawan.FromDataModel(row))
	}
	return result, nil
}

func (r *KaryawanRepository) Count(q karyawan.ListQuery) (int64, error) {
	var total int64
	err := r.applyFilters(r.db.Model(&karyawanDatamodel.Karyawan{}), q).Count(&total).Error
	return total, err
}

func (r *KaryawanRepository) GetByPerner(perner string) (*karyawan.Karyawan, error) {
	var row karyawanDatamodel.Karyawan
	err := r.db.Where("perner = ?", perner).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKaryawanNotFound
		}
		return nil, err
	}
	return karyawan.FromDataModel(&row), nil
}

func (r *KaryawanRepository) Update(k *karyawan.Karyawan) error {
	return r.db.Save(karyawan.ToDataModel(k)).Error
}
