package rating_test

import (
	"errors"
	"log/slog"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/karyawan"
	"github.com/dome-hr/dome-backend/internal/rating"
)

type ratedKey struct {
	perner string
	bulan  string
	tahun  int
}

type mockRatingRepository struct {
	ratings     map[ratedKey]*rating.Rating
	nextID      int64
	lookupError error
}

func newMockRatingRepository() *mockRatingRepository {
	return &mockRatingRepository{ratings: make(map[ratedKey]*rating.Rating), nextID: 1}
}

func (m *mockRatingRepository) Create(r *rating.Rating) error {
	r.ID = m.nextID
	m.nextID++
	m.ratings[ratedKey{r.Perner, r.BulanPemberian, r.TahunPemberian}] = r
	return nil
}

func (m *mockRatingRepository) GetByPernerAndPeriod(perner string, p rating.Period) (*rating.Rating, error) {
	if m.lookupError != nil {
		return nil, m.lookupError
	}
	r, ok := m.ratings[ratedKey{perner, p.Bulan, p.Tahun}]
	if !ok {
		return nil, apperrors.ErrRatingNotFound
	}
	return r, nil
}

func (m *mockRatingRepository) GetLatestByPerner(perner string) (*rating.Rating, error) {
	var latest *rating.Rating
	for key, r := range m.ratings {
		if key.perner != perner {
			continue
		}
		if latest == nil || r.ID > latest.ID {
			latest = r
		}
	}
	if latest == nil {
		return nil, apperrors.ErrRatingNotFound
	}
	return latest, nil
}

func (m *mockRatingRepository) ListForPeriod(p rating.Period) ([]rating.KaryawanRating, error) {
	return nil, nil
}

func (m *mockRatingRepository) ListRatedForPeriod(p rating.Period) ([]rating.KaryawanRating, error) {
	var rows []rating.KaryawanRating
	for key, r := range m.ratings {
		if key.bulan == p.Bulan && key.tahun == p.Tahun {
			total := r.TotalScore
			kategori := r.Kategori
			rows = append(rows, rating.KaryawanRating{
				Perner:     key.perner,
				TotalScore: &total,
				Kategori:   &kategori,
			})
		}
	}
	return rows, nil
}

type mockEmployeeReader struct {
	employees map[string]*karyawan.Karyawan
}

func (m *mockEmployeeReader) GetByPerner(perner string) (*karyawan.Karyawan, error) {
	k, ok := m.employees[perner]
	if !ok {
		return nil, apperrors.ErrKaryawanNotFound
	}
	return k, nil
}

var _ = Describe("RatingService", func() {
	var (
		service  *rating.Service
		repo     *mockRatingRepository
		reader   *mockEmployeeReader
		ishAdmin *auth.User
		superv   *auth.User
	)

	BeforeEach(func() {
		repo = newMockRatingRepository()
		reader = &mockEmployeeReader{employees: map[string]*karyawan.Karyawan{
			"10000001": {Perner: "10000001", Nama: "Budi Santoso"},
		}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = rating.NewService(repo, reader, logger)

		ishAdmin = &auth.User{ID: 2, IDRoles: auth.RoleISH}
		superv = &auth.User{ID: 4, IDRoles: auth.RoleSupervisor}
	})

	validSubmission := func() rating.SubmitRatingDTO {
		return rating.SubmitRatingDTO{
			CustomerServiceOrientation: 4,
			AchievmentOrientation:      4,
			TeamWork:                   5,
			ProductKnowledge:           3,
			OrganizationCommitments:    4,
			Performance:                4,
			Initiative:                 3,
			BulanPemberian:             "April",
			TahunPemberian:             2025,
		}
	}

	Describe("Submit", func() {
		It("computes and persists the derived total", func() {
			resp, err := service.Submit(ishAdmin, "10000001", validSubmission())

			Expect(err).ToNot(HaveOccurred())
			// raw sum 27 -> 27/35*100 = 77.14 -> 77
			Expect(resp.TotalScore).To(Equal(77))
			Expect(resp.Kategori).To(Equal(rating.KategoriBaik))

			stored, err := repo.GetByPernerAndPeriod("10000001", rating.Period{Bulan: "April", Tahun: 2025})
			Expect(err).ToNot(HaveOccurred())
			Expect(stored.TotalScore).To(Equal(77))
		})

		It("rejects a second submission for the same period", func() {
			_, err := service.Submit(ishAdmin, "10000001", validSubmission())
			Expect(err).ToNot(HaveOccurred())

			_, err = service.Submit(ishAdmin, "10000001", validSubmission())
			Expect(err).To(Equal(apperrors.ErrRatingAlreadyExists))
		})

		It("does not persist when the duplicate check itself fails", func() {
			repo.lookupError = errors.New("db: connection reset")

			_, err := service.Submit(ishAdmin, "10000001", validSubmission())
			Expect(err).To(MatchError("db: connection reset"))
			Expect(repo.ratings).To(BeEmpty())
		})

		It("allows the same employee in a different period", func() {
			_, err := service.Submit(ishAdmin, "10000001", validSubmission())
			Expect(err).ToNot(HaveOccurred())

			dto := validSubmission()
			dto.BulanPemberian = "Mei"
			_, err = service.Submit(ishAdmin, "10000001", dto)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects scores outside 1..5", func() {
			dto := validSubmission()
			dto.TeamWork = 6
			_, err := service.Submit(ishAdmin, "10000001", dto)
			Expect(err).To(HaveOccurred())

			dto = validSubmission()
			dto.Initiative = 0
			_, err = service.Submit(ishAdmin, "10000001", dto)
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown month name", func() {
			dto := validSubmission()
			dto.BulanPemberian = "Avril"
			_, err := service.Submit(ishAdmin, "10000001", dto)
			Expect(err).To(HaveOccurred())
		})

		It("only role 2 can submit", func() {
			_, err := service.Submit(superv, "10000001", validSubmission())
			Expect(err).To(Equal(apperrors.ErrRoleNotAllowed))
		})

		It("fails for an unknown employee", func() {
			_, err := service.Submit(ishAdmin, "99999999", validSubmission())
			Expect(err).To(Equal(apperrors.ErrKaryawanNotFound))
		})
	})

	Describe("GetLatestByPerner", func() {
		It("returns the most recent assessment", func() {
			_, err := service.Submit(ishAdmin, "10000001", validSubmission())
			Expect(err).ToNot(HaveOccurred())

			dto := validSubmission()
			dto.BulanPemberian = "Mei"
			dto.Performance = 5
			_, err = service.Submit(ishAdmin, "10000001", dto)
			Expect(err).ToNot(HaveOccurred())

			latest, err := service.GetLatestByPerner(superv, "10000001")
			Expect(err).ToNot(HaveOccurred())
			Expect(latest.BulanPemberian).To(Equal("Mei"))
		})

		It("rejects callers without the detail capability", func() {
			hcAdmin := &auth.User{ID: 1, IDRoles: auth.RoleHCTreg}
			_, err := service.GetLatestByPerner(hcAdmin, "10000001")
			Expect(err).To(Equal(apperrors.ErrRoleNotAllowed))
		})
	})
})
