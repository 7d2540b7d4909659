package postgres

import (
	"errors"

	apperrors "github.com/dome-hr/dome-backend/internal"
	mutasiDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/mutasi"
	"github.com/dome-hr/dome-backend/internal/mutasi"
	"gorm.io/gorm"
)

// MutasiRepository implements mutasi.Repository using GORM
type MutasiRepository struct {
	db *gorm.DB
}

func NewMutasiRepository(db *gorm.DB) mutasi.Repository {
	return &MutasiRepository{db: db}
}

func (r *MutasiRepository) Create(m *mutasi.Mutasi) error {
	row := mutasi.ToDataModel(m)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	m.ID = row.ID
	m.CreatedAt = row.CreatedAt
	m.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *MutasiRepository) GetAll() ([]*mutasi.Mutasi, error) {
	var rows []*mutasiDatamodel.Mutasi
	if err := r.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]*mutasi.Mutasi, 0, len(rows))
	for _, row := range rows {
		result = append(result, mutasi.FromDataModel(row))
	}
	return result, nil
}

// GetByPerner returns the employee's most recent request, which is the one
// the detail and decision endpoints operate on.
func (r *MutasiRepository) GetByPerner(perner string) (*mutasi.Mutasi, error) {
	var row mutasiDatamodel.Mutasi
	err := r.db.Where("perner = ?", perner).Order("created_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMutasiNotFound
		}
		return nil, err
	}
	return mutasi.FromDataModel(&row), nil
}

// GetActiveByPerner returns the employee's undecided request, or nil when
// there is none.
func (r *MutasiRepository) GetActiveByPerner(perner string) (*mutasi.Mutasi, error) {
	var row mutasiDatamodel.Mutasi
	err := r.db.Where("perner = ? AND status_mutasi = ?", perner, mutasi.StatusDiproses).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mutasi.FromDataModel(&row), nil
}

func (r *MutasiRepository) Update(m *mutasi.Mutasi) error {
	return r.db.Save(mutasi.ToDataModel(m)).Error
}

func (r *MutasiRepository) Delete(id int64) error {
	return r.db.Delete(&mutasiDatamodel.Mutasi{}, id).Error
}
