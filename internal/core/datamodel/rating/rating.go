package rating

import "time"

type Rating struct {
	ID                         int64     `gorm:"primaryKey"`
	Perner                     string    `gorm:"column:perner;not null;uniqueIndex:idx_rating_period,priority:1"`
	BulanPemberian             string    `gorm:"column:bulan_pemberian;not null;uniqueIndex:idx_rating_period,priority:2"`
	TahunPemberian             int       `gorm:"column:tahun_pemberian;not null;uniqueIndex:idx_rating_period,priority:3"`
	CustomerServiceOrientation int       `gorm:"column:customer_service_orientation;not null"`
	AchievmentOrientation      int       `gorm:"column:achievment_orientation;not null"`
	TeamWork                   int       `gorm:"column:team_work;not null"`
	ProductKnowledge           int       `gorm:"column:product_knowledge;not null"`
	OrganizationCommitments    int       `gorm:"column:organization_commitments;not null"`
	Performance                int       `gorm:"column:performance;not null"`
	Initiative                 int       `gorm:"column:initiative;not null"`
	TotalScore                 int       `gorm:"column:total_score;not null"`
	Kategori                   string    `gorm:"column:kategori"`
	CreatedAt                  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Rating) TableName() string {
	return "rating"
}
