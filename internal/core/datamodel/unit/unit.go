package unit

import "time"

type UnitSubUnit struct {
	ID        int64     `gorm:"primaryKey"`
	Unit      string    `gorm:"column:unit;not null;uniqueIndex:idx_unit_sub_unit,priority:1"`
	SubUnit   string    `gorm:"column:sub_unit;not null;uniqueIndex:idx_unit_sub_unit,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UnitSubUnit) TableName() string {
	return "unit_sub_unit"
}
