package rating

import (
	"math"
	"time"

	ratingDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/rating"
)

// Rating is one period's performance assessment for an outsourced employee:
// seven category scores, each 1 to 5, and the derived percentage total.
type Rating struct {
	ID                         int64     `json:"id"`
	Perner                     string    `json:"perner"`
	BulanPemberian             string    `json:"bulan_pemberian"`
	TahunPemberian             int       `json:"tahun_pemberian"`
	CustomerServiceOrientation int       `json:"customer_service_orientation"`
	AchievmentOrientation      int       `json:"achievment_orientation"`
	TeamWork                   int       `json:"team_work"`
	ProductKnowledge           int       `json:"product_knowledge"`
	OrganizationCommitments    int       `json:"organization_commitments"`
	Performance                int       `json:"performance"`
	Initiative                 int       `json:"initiative"`
	TotalScore                 int       `json:"total_score"`
	Kategori                   string    `json:"kategori"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

const (
	KategoriKurang     = "Kurang"
	KategoriCukup      = "Cukup"
	KategoriBaik       = "Baik"
	KategoriSangatBaik = "Sangat Baik"

	maxRawScore = 35
)

// ComputeTotalScore maps the seven raw scores onto a 1..100 percentage.
// The minimum raw sum is 7, so the result never reaches 0.
func ComputeTotalScore(scores ...int) int {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / maxRawScore * 100))
}

// KategoriFor labels a total score.
func KategoriFor(total int) string {
	switch {
	case total >= 90:
		return KategoriSangatBaik
	case total >= 75:
		return KategoriBaik
	case total >= 50:
		return KategoriCukup
	default:
		return KategoriKurang
	}
}

// Recompute refreshes the derived total and label from the raw scores.
func (r *Rating) Recompute() {
	r.TotalScore = ComputeTotalScore(
		r.CustomerServiceOrientation,
		r.AchievmentOrientation,
		r.TeamWork,
		r.ProductKnowledge,
		r.OrganizationCommitments,
		r.Performance,
		r.Initiative,
	)
	r.Kategori = KategoriFor(r.TotalScore)
}

func ToDataModel(r *Rating) *ratingDatamodel.Rating {
	return &ratingDatamodel.Rating{
		ID:                         r.ID,
		Perner:                     r.Perner,
		BulanPemberian:             r.BulanPemberian,
		TahunPemberian:             r.TahunPemberian,
		CustomerServiceOrientation: r.CustomerServiceOrientation,
		AchievmentOrientation:      r.AchievmentOrientation,
		TeamWork:                   r.TeamWork,
		ProductKnowledge:           r.ProductKnowledge,
		OrganizationCommitments:    r.OrganizationCommitments,
		Performance:                r.Performance,
		Initiative:                 r.Initiative,
		TotalScore:                 r.TotalScore,
		Kategori:                   r.Kategori,
		CreatedAt:                  r.CreatedAt,
		UpdatedAt:                  r.UpdatedAt,
	}
}

func FromDataModel(r *ratingDatamodel.Rating) *Rating {
	return &Rating{
		ID:                         r.ID,
		Perner:                     r.Perner,
		BulanPemberian:             r.BulanPemberian,
		TahunPemberian:             r.TahunPemberian,
		CustomerServiceOrientation: r.CustomerServiceOrientation,
		AchievmentOrientation:      r.AchievmentOrientation,
		TeamWork:                   r.TeamWork,
		ProductKnowledge:           r.ProductKnowledge,
		OrganizationCommitments:    r.OrganizationCommitments,
		Performance:                r.Performance,
		Initiative:                 r.Initiative,
		TotalScore:                 r.TotalScore,
		Kategori:                   r.Kategori,
		CreatedAt:                  r.CreatedAt,
		UpdatedAt:                  r.UpdatedAt,
	}
}
