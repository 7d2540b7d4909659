package postgres

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "github.com/dome-hr/dome-backend/internal"
	mutasiDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/mutasi"
	"github.com/dome-hr/dome-backend/internal/mutasi"
)

func TestMutasiRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MutasiRepository Suite")
}

var _ = Describe("MutasiRepository", func() {
	var (
		db   *gorm.DB
		repo mutasi.Repository
	)

	newRequest := func(perner string) *mutasi.Mutasi {
		return &mutasi.Mutasi{
			Perner:       perner,
			Nama:         "Budi Santoso",
			Unit:         "WITEL JAKARTA",
			SubUnit:      "JAKARTA PUSAT",
			UnitBaru:     "WITEL BANDUNG",
			SubUnitBaru:  "BANDUNG KOTA",
			KotaBaru:     "Bandung",
			PosisiBaru:   "Teknisi Senior",
			StatusMutasi: mutasi.StatusDiproses,
		}
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		Expect(db.AutoMigrate(&mutasiDatamodel.Mutasi{})).NotTo(HaveOccurred())

		repo = NewMutasiRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).NotTo(HaveOccurred())
	})

	Describe("Create", func() {
		It("assigns an id and timestamps", func() {
			m := newRequest("10000001")
			Expect(repo.Create(m)).NotTo(HaveOccurred())
			Expect(m.ID).To(BeNumerically(">", 0))
			Expect(m.CreatedAt).NotTo(BeZero())
		})
	})

	Describe("GetByPerner", func() {
		It("returns the stored request", func() {
			Expect(repo.Create(newRequest("10000001"))).NotTo(HaveOccurred())

			m, err := repo.GetByPerner("10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.UnitBaru).To(Equal("WITEL BANDUNG"))
			Expect(m.StatusMutasi).To(Equal(mutasi.StatusDiproses))
		})

		It("returns the domain not-found error", func() {
			_, err := repo.GetByPerner("missing")
			Expect(err).To(Equal(apperrors.ErrMutasiNotFound))
		})
	})

	Describe("GetActiveByPerner", func() {
		It("ignores decided requests", func() {
			m := newRequest("10000001")
			Expect(repo.Create(m)).NotTo(HaveOccurred())

			m.Approve()
			Expect(repo.Update(m)).NotTo(HaveOccurred())

			active, err := repo.GetActiveByPerner("10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(BeNil())
		})

		It("finds the pending request", func() {
			Expect(repo.Create(newRequest("10000001"))).NotTo(HaveOccurred())

			active, err := repo.GetActiveByPerner("10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(active).NotTo(BeNil())
		})
	})

	Describe("Update", func() {
		It("persists a decision with reason", func() {
			m := newRequest("10000001")
			Expect(repo.Create(m)).NotTo(HaveOccurred())

			m.Reject("posisi belum tersedia")
			Expect(repo.Update(m)).NotTo(HaveOccurred())

			stored, err := repo.GetByPerner("10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.StatusMutasi).To(Equal(mutasi.StatusDitolak))
			Expect(stored.AlasanPenolakan).NotTo(BeNil())
			Expect(*stored.AlasanPenolakan).To(Equal("posisi belum tersedia"))
			Expect(stored.DecidedAt).NotTo(BeNil())
		})
	})

	Describe("Delete", func() {
		It("removes the request", func() {
			m := newRequest("10000001")
			Expect(repo.Create(m)).NotTo(HaveOccurred())

			Expect(repo.Delete(m.ID)).NotTo(HaveOccurred())

			_, err := repo.GetByPerner("10000001")
			Expect(err).To(Equal(apperrors.ErrMutasiNotFound))
		})
	})

	Describe("GetAll", func() {
		It("lists every request", func() {
			Expect(repo.Create(newRequest("10000001"))).NotTo(HaveOccurred())
			Expect(repo.Create(newRequest("10000002"))).NotTo(HaveOccurred())

			all, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})
})
