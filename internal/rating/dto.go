package rating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/core/common/validation"
)

// SubmitRatingDTO carries the seven raw scores and the assessment period.
// Scores are typed integers so inputs like "04" cannot reach the service.
type SubmitRatingDTO struct {
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

func (dto SubmitRatingDTO) Validate() error {
	scores := map[string]int{
		"customer_service_orientation": dto.CustomerServiceOrientation,
		"achievment_orientation":       dto.AchievmentOrientation,
		"team_work":                    dto.TeamWork,
		"product_knowledge":            dto.ProductKnowledge,
		"organization_commitments":     dto.OrganizationCommitments,
		"performance":                  dto.Performance,
		"initiative":                   dto.Initiative,
	}
	for field, score := range scores {
		if err := validation.ValidateScore(field, score); err != nil {
			return err
		}
	}
	if err := validation.ValidatePeriod(dto.BulanPemberian, dto.TahunPemberian); err != nil {
		return err
	}
	return nil
}

// SubmitRatingResponse returns the derived total to the submitter.
type SubmitRatingResponse struct {
	TotalScore int    `json:"total_score"`
	Kategori   string `json:"kategori"`
}

// Period identifies one assessment month.
type Period struct {
	Bulan string
	Tahun int
}

// ParsePeriodParam parses the list endpoint's "MM-YYYY" query value into the
// stored month-name and year pair.
func ParsePeriodParam(v string) (Period, error) {
	parts := strings.SplitN(strings.TrimSpace(v), "-", 2)
	if len(parts) != 2 {
		return Period{}, internal.NewValidationFieldError("bulan",
			fmt.Sprintf("invalid period %q, expected MM-YYYY", v), internal.ErrCodeInvalidPeriod)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Period{}, internal.NewValidationFieldError("bulan",
			fmt.Sprintf("invalid month in period %q", v), internal.ErrCodeInvalidPeriod)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 2000 || year > 2100 {
		return Period{}, internal.NewValidationFieldError("bulan",
			fmt.Sprintf("invalid year in period %q", v), internal.ErrCodeInvalidPeriod)
	}

	return Period{Bulan: validation.Bulan[month-1], Tahun: year}, nil
}

// KaryawanRating is one row of the assessment list: the employee joined with
// the period's score, when one was submitted.
type KaryawanRating struct {
	Perner          string  `json:"perner"`
	Nama            string  `json:"nama"`
	Unit            string  `json:"unit"`
	SubUnit         string  `json:"sub_unit"`
	PosisiPekerjaan string  `json:"posisi_pekerjaan"`
	TotalScore      *int    `json:"total_score,omitempty"`
	Kategori        *string `json:"kategori,omitempty"`
}
