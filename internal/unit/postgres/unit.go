package postgres

import (
	unitDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/unit"
	"github.com/dome-hr/dome-backend/internal/unit"
	"gorm.io/gorm"
)

// UnitRepository implements unit.Repository using GORM
type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) unit.Repository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) ListPairs() ([]unit.Pair, error) {
	var rows []unitDatamodel.UnitSubUnit
	if err := r.db.Order("unit ASC, sub_unit ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	pairs := make([]unit.Pair, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, unit.Pair{Unit: row.Unit, SubUnit: row.SubUnit})
	}
	return pairs, nil
}

func (r *UnitRepository) PairExists(u, subUnit string) (bool, error) {
	var count int64
	err := r.db.Model(&unitDatamodel.UnitSubUnit{}).
		Where("unit = ? AND sub_unit = ?", u, subUnit).
		Count(&count).Error
	return count > 0, err
}
