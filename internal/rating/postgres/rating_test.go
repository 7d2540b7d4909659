package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "github.com/dome-hr/dome-backend/internal"
	karyawanDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/karyawan"
	ratingDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/rating"
	"github.com/dome-hr/dome-backend/internal/rating"
)

func TestRatingRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RatingRepository Suite")
}

var _ = Describe("RatingRepository", func() {
	var (
		db   *gorm.DB
		repo rating.Repository
	)

	april := rating.Period{Bulan: "April", Tahun: 2025}

	seedEmployee := func(perner, nama string) {
		Expect(db.Create(&karyawanDatamodel.Karyawan{
			Perner: perner,
			Nama:   nama,
			Unit:   "WITEL JAKARTA",
		}).Error).NotTo(HaveOccurred())
	}

	newRating := func(perner string, p rating.Period) *rating.Rating {
		r := &rating.Rating{
			Perner:                     perner,
			BulanPemberian:             p.Bulan,
			TahunPemberian:             p.Tahun,
			CustomerServiceOrientation: 4,
			AchievmentOrientation:      4,
			TeamWork:                   5,
			ProductKnowledge:           3,
			OrganizationCommitments:    4,
			Performance:                4,
			Initiative:                 3,
		}
		r.Recompute()
		return r
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&karyawanDatamodel.Karyawan{}, &ratingDatamodel.Rating{})).NotTo(HaveOccurred())

		repo = NewRatingRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("stores the assessment with its derived total", func() {
			seedEmployee("10000001", "Budi Santoso")

			r := newRating("10000001", april)
			Expect(repo.Create(r)).NotTo(HaveOccurred())
			Expect(r.ID).To(BeNumerically(">", 0))

			stored, err := repo.GetByPernerAndPeriod("10000001", april)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.TotalScore).To(Equal(77))
			Expect(stored.Kategori).To(Equal(rating.KategoriBaik))
		})

		It("the unique period index rejects a duplicate", func() {
			seedEmployee("10000001", "Budi Santoso")

			Expect(repo.Create(newRating("10000001", april))).NotTo(HaveOccurred())
			Expect(repo.Create(newRating("10000001", april))).To(HaveOccurred())
		})
	})

	Describe("GetByPernerAndPeriod", func() {
		It("returns the domain not-found error", func() {
			_, err := repo.GetByPernerAndPeriod("10000001", april)
			Expect(err).To(Equal(apperrors.ErrRatingNotFound))
		})
	})

	Describe("ListForPeriod", func() {
		It("joins every employee with the period's score when present", func() {
			seedEmployee("10000001", "Budi Santoso")
			seedEmployee("10000002", "Siti Rahayu")
			Expect(repo.Create(newRating("10000001", april))).NotTo(HaveOccurred())

			rows, err := repo.ListForPeriod(april)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))

			Expect(rows[0].Perner).To(Equal("10000001"))
			Expect(rows[0].TotalScore).NotTo(BeNil())
			Expect(*rows[0].TotalScore).To(Equal(77))

			Expect(rows[1].Perner).To(Equal("10000002"))
			Expect(rows[1].TotalScore).To(BeNil())
		})

		It("does not leak scores from another period", func() {
			seedEmployee("10000001", "Budi Santoso")
			Expect(repo.Create(newRating("10000001", rating.Period{Bulan: "Mei", Tahun: 2025}))).NotTo(HaveOccurred())

			rows, err := repo.ListForPeriod(april)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].TotalScore).To(BeNil())
		})
	})

	Describe("ListRatedForPeriod", func() {
		It("returns only rated employees", func() {
			seedEmployee("10000001", "Budi Santoso")
			seedEmployee("10000002", "Siti Rahayu")
			Expect(repo.Create(newRating("10000002", april))).NotTo(HaveOccurred())

			rows, err := repo.ListRatedForPeriod(april)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Perner).To(Equal("10000002"))
		})
	})

	Describe("GetLatestByPerner", func() {
		It("prefers the most recent assessment", func() {
			seedEmployee("10000001", "Budi Santoso")
			Expect(repo.Create(newRating("10000001", april))).NotTo(HaveOccurred())
			Expect(repo.Create(newRating("10000001", rating.Period{Bulan: "Mei", Tahun: 2025}))).NotTo(HaveOccurred())

			latest, err := repo.GetLatestByPerner("10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(latest.BulanPemberian).To(Equal("Mei"))
		})
	})
})
