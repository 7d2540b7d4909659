package main_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dome-hr/dome-backend/internal/auth"
	authPostgres "github.com/dome-hr/dome-backend/internal/auth/postgres"
	karyawanDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/karyawan"
	mutasiDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/mutasi"
	ratingDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/rating"
	unitDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/unit"
	userDatamodel "github.com/dome-hr/dome-backend/internal/core/datamodel/user"
	"github.com/dome-hr/dome-backend/internal/dashboard"
	dashboardPostgres "github.com/dome-hr/dome-backend/internal/dashboard/postgres"
	"github.com/dome-hr/dome-backend/internal/karyawan"
	karyawanPostgres "github.com/dome-hr/dome-backend/internal/karyawan/postgres"
	"github.com/dome-hr/dome-backend/internal/mutasi"
	mutasiPostgres "github.com/dome-hr/dome-backend/internal/mutasi/postgres"
	"github.com/dome-hr/dome-backend/internal/rating"
	ratingPostgres "github.com/dome-hr/dome-backend/internal/rating/postgres"
	"github.com/dome-hr/dome-backend/internal/transport/rest"
	"github.com/dome-hr/dome-backend/internal/unit"
	unitPostgres "github.com/dome-hr/dome-backend/internal/unit/postgres"
	"github.com/dome-hr/dome-backend/pkg/client"
)

// startServer boots the full route table over an in-memory database, seeded
// with one user per role, the unit reference rows, and a few employees.
func startServer() *httptest.Server {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	Expect(err).NotTo(HaveOccurred())

	Expect(db.AutoMigrate(
		&userDatamodel.User{},
		&karyawanDatamodel.Karyawan{},
		&mutasiDatamodel.Mutasi{},
		&ratingDatamodel.Rating{},
		&unitDatamodel.UnitSubUnit{},
	)).NotTo(HaveOccurred())

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())

	users := []userDatamodel.User{
		{Username: "hc.treg", Name: "HC TREG", PasswordHash: string(hash), IDRoles: auth.RoleHCTreg, IsActive: true},
		{Username: "ish.admin", Name: "ISH Admin", PasswordHash: string(hash), IDRoles: auth.RoleISH, IsActive: true},
		{Username: "witel.admin", Name: "Witel Admin", PasswordHash: string(hash), IDRoles: auth.RoleWitel, IsActive: true},
		{Username: "supervisor", Name: "Supervisor", PasswordHash: string(hash), IDRoles: auth.RoleSupervisor, IsActive: true},
	}
	Expect(db.Create(&users).Error).NotTo(HaveOccurred())

	pairs := []unitDatamodel.UnitSubUnit{
		{Unit: "WITEL JAKARTA", SubUnit: "JAKARTA PUSAT"},
		{Unit: "WITEL JAKARTA", SubUnit: "JAKARTA SELATAN"},
		{Unit: "WITEL BANDUNG", SubUnit: "BANDUNG KOTA"},
	}
	Expect(db.Create(&pairs).Error).NotTo(HaveOccurred())

	employees := []karyawanDatamodel.Karyawan{
		{
			Perner: "10000001", Nama: "Budi Santoso", StatusKaryawan: "Aktif",
			JenisKelamin: "Laki-laki", Unit: "WITEL JAKARTA", SubUnit: "JAKARTA PUSAT",
			Kota: "Jakarta", PosisiPekerjaan: "Teknisi", SumberAnggaran: "OPEX",
			GajiPokok: 5000000, TunjanganOps: 500000, GajiKotor: 5500000, THP: 5500000,
			TanggalLahir:   time.Date(1995, 3, 12, 0, 0, 0, 0, time.UTC),
			BergabungSejak: time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Perner: "10000002", Nama: "Siti Rahayu", StatusKaryawan: "Aktif",
			JenisKelamin: "Perempuan", Unit: "WITEL BANDUNG", SubUnit: "BANDUNG KOTA",
			Kota: "Bandung", PosisiPekerjaan: "Admin", SumberAnggaran: "CAPEX",
			GajiPokok: 4500000, TunjanganOps: 400000, GajiKotor: 4900000, THP: 4900000,
			TanggalLahir:   time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC),
			BergabungSejak: time.Date(2019, 11, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	Expect(db.Create(&employees).Error).NotTo(HaveOccurred())

	lg := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenGen := auth.NewJWTTokenGenerator("integration-test-secret-0123456789abcdef", time.Hour)
	authService := auth.NewService(authPostgres.NewRepository(db), tokenGen, bcrypt.MinCost, lg)
	karyawanService := karyawan.NewService(karyawanPostgres.NewKaryawanRepository(db), lg)
	unitService := unit.NewService(unitPostgres.NewUnitRepository(db), lg)
	mutasiService := mutasi.NewService(mutasiPostgres.NewMutasiRepository(db), karyawanService, unitService, lg)
	ratingService := rating.NewService(ratingPostgres.NewRatingRepository(db), karyawanService, lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(db), lg)

	handlers := rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Karyawan:  karyawan.NewHandler(karyawanService),
		Mutasi:    mutasi.NewHandler(mutasiService),
		Rating:    rating.NewHandler(ratingService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Unit:      unit.NewHandler(unitService),
	}

	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, sqlDB, handlers, lg)

	return httptest.NewServer(router)
}

var _ = Describe("HTTP API", func() {
	var (
		ctx    context.Context
		server *httptest.Server
	)

	loginAs := func(username string) *client.Client {
		c := client.New(server.URL, client.WithHTTPClient(server.Client()))
		_, err := c.Login(ctx, username, "password")
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		server = startServer()
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("login", func() {
		It("carries the user's role", func() {
			c := loginAs("supervisor")
			Expect(c.Session().Role()).To(Equal(auth.RoleSupervisor))
		})

		It("rejects a bad password", func() {
			c := client.New(server.URL, client.WithHTTPClient(server.Client()))
			_, err := c.Login(ctx, "ish.admin", "wrong")
			Expect(err).To(HaveOccurred())
			Expect(c.Session()).To(BeNil())
		})
	})

	Describe("karyawan", func() {
		It("lists and reads employees", func() {
			c := loginAs("witel.admin")

			page, err := c.ListKaryawan(ctx, 1, client.KaryawanFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Data).To(HaveLen(2))
			Expect(page.CurrentPage).To(Equal(1))
			Expect(page.TotalPages).To(Equal(1))

			k, err := c.GetKaryawan(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(k.Nama).To(Equal("Budi Santoso"))
			Expect(k.TakeHomePay).To(Equal(5500000.0))
		})

		It("a save without edits leaves the record unchanged", func() {
			c := loginAs("hc.treg")

			before, err := c.GetKaryawan(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())

			after, err := c.UpdateKaryawan(ctx, "10000001", client.KaryawanUpdate{})
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Nama).To(Equal(before.Nama))
			Expect(after.GajiKotor).To(Equal(before.GajiKotor))
			Expect(after.TakeHomePay).To(Equal(before.TakeHomePay))
		})

		It("recomputes derived pay on a salary edit", func() {
			c := loginAs("ish.admin")

			gaji := 6000000.0
			after, err := c.UpdateKaryawan(ctx, "10000001", client.KaryawanUpdate{GajiPokok: &gaji})
			Expect(err).NotTo(HaveOccurred())
			Expect(after.GajiKotor).To(Equal(6500000.0))
			Expect(after.TakeHomePay).To(Equal(6500000.0))
		})

		It("refuses edits from a view-only role", func() {
			c := loginAs("witel.admin")

			nama := "Someone Else"
			_, err := c.UpdateKaryawan(ctx, "10000001", client.KaryawanUpdate{Nama: &nama})

			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*client.APIError).StatusCode).To(Equal(http.StatusForbidden))
		})
	})

	Describe("mutasi workflow", func() {
		create := client.MutasiCreate{
			Perner:      "10000001",
			UnitBaru:    "WITEL BANDUNG",
			SubUnitBaru: "BANDUNG KOTA",
			KotaBaru:    "Bandung",
			PosisiBaru:  "Teknisi Senior",
		}

		It("creates, lists, and approves a request", func() {
			ish := loginAs("ish.admin")

			m, err := ish.CreateMutasi(ctx, create)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.StatusMutasi).To(Equal("Diproses"))
			Expect(m.Nama).To(Equal("Budi Santoso"))
			Expect(m.Unit).To(Equal("WITEL JAKARTA"))

			all, err := ish.ListMutasi(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))

			supervisor := loginAs("supervisor")
			decided, err := supervisor.ApproveMutasi(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(decided.StatusMutasi).To(Equal("Disetujui"))
			Expect(decided.DecidedAt).NotTo(BeNil())
		})

		It("rejects with a mandatory reason", func() {
			ish := loginAs("ish.admin")
			_, err := ish.CreateMutasi(ctx, create)
			Expect(err).NotTo(HaveOccurred())

			supervisor := loginAs("supervisor")
			_, err = supervisor.RejectMutasi(ctx, "10000001", "")
			Expect(err).To(HaveOccurred())

			m, err := ish.GetMutasi(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.StatusMutasi).To(Equal("Diproses"))

			decided, err := supervisor.RejectMutasi(ctx, "10000001", "Formasi tujuan penuh")
			Expect(err).NotTo(HaveOccurred())
			Expect(decided.StatusMutasi).To(Equal("Ditolak"))
			Expect(decided.AlasanPenolakan).NotTo(BeNil())
			Expect(*decided.AlasanPenolakan).To(Equal("Formasi tujuan penuh"))
		})

		It("decided requests are terminal", func() {
			ish := loginAs("ish.admin")
			_, err := ish.CreateMutasi(ctx, create)
			Expect(err).NotTo(HaveOccurred())

			supervisor := loginAs("supervisor")
			_, err = supervisor.ApproveMutasi(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())

			_, err = supervisor.ApproveMutasi(ctx, "10000001")
			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*client.APIError).StatusCode).To(Equal(http.StatusBadRequest))

			kota := "Semarang"
			_, err = ish.UpdateMutasi(ctx, "10000001", client.MutasiUpdate{KotaBaru: &kota})
			Expect(err).To(HaveOccurred())
		})

		It("only the supervisor decides", func() {
			ish := loginAs("ish.admin")
			_, err := ish.CreateMutasi(ctx, create)
			Expect(err).NotTo(HaveOccurred())

			_, err = ish.ApproveMutasi(ctx, "10000001")
			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*client.APIError).StatusCode).To(Equal(http.StatusForbidden))
		})

		It("rejects an unknown unit pairing", func() {
			ish := loginAs("ish.admin")

			bad := create
			bad.SubUnitBaru = "JAKARTA PUSAT"
			_, err := ish.CreateMutasi(ctx, bad)

			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*client.APIError).StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("rating", func() {
		submission := client.RatingSubmission{
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

		It("computes and stores the score once per period", func() {
			ish := loginAs("ish.admin")

			result, err := ish.SubmitRating(ctx, "10000001", submission)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.TotalScore).To(Equal(77))
			Expect(result.Kategori).To(Equal("Baik"))

			_, err = ish.SubmitRating(ctx, "10000001", submission)
			var apiErr *client.APIError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*client.APIError).StatusCode).To(Equal(http.StatusConflict))
		})

		It("the worklist shows scored and unscored employees", func() {
			ish := loginAs("ish.admin")

			_, err := ish.SubmitRating(ctx, "10000001", submission)
			Expect(err).NotTo(HaveOccurred())

			rows, err := ish.ListRating(ctx, 4, 2025)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].TotalScore).NotTo(BeNil())
			Expect(rows[1].TotalScore).To(BeNil())

			rated, err := ish.FilterRating(ctx, "April", 2025)
			Expect(err).NotTo(HaveOccurred())
			Expect(rated).To(HaveLen(1))
		})

		It("the supervisor reads the detail", func() {
			ish := loginAs("ish.admin")
			_, err := ish.SubmitRating(ctx, "10000001", submission)
			Expect(err).NotTo(HaveOccurred())

			supervisor := loginAs("supervisor")
			r, err := supervisor.GetRating(ctx, "10000001")
			Expect(err).NotTo(HaveOccurred())
			Expect(r.TotalScore).To(Equal(77))
			Expect(r.BulanPemberian).To(Equal("April"))
		})
	})

	Describe("dashboard", func() {
		It("aggregates headcount", func() {
			c := loginAs("witel.admin")

			summary, err := c.Dashboard(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalKaryawan).To(Equal(int64(2)))
			Expect(summary.KaryawanAktif).To(Equal(int64(2)))
			Expect(summary.JumlahKaryawan.BerdasarkanJenisKelamin).To(HaveLen(2))
			Expect(summary.JumlahKaryawan.BerdasarkanUsia).To(HaveLen(5))

			units := summary.JumlahKaryawan.BerdasarkanUnit
			Expect(units).To(HaveLen(2))
			Expect(units[0].NamaUnit).To(Equal("WITEL BANDUNG"))
			Expect(units[0].DataBulanan).To(HaveLen(12))
			Expect(units[0].DataBulanan[10].Bulan).To(Equal("November"))
			Expect(units[0].DataBulanan[10].Jumlah).To(Equal(int64(1)))
			Expect(units[1].NamaUnit).To(Equal("WITEL JAKARTA"))
			Expect(units[1].DataBulanan[3].Jumlah).To(Equal(int64(1)))
		})
	})

	Describe("unit dropdown", func() {
		It("is readable without a session", func() {
			c := client.New(server.URL, client.WithHTTPClient(server.Client()))

			units, err := c.UnitDropdown(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(units).To(HaveLen(2))
			Expect(units[0].UnitBaru).To(Equal("WITEL BANDUNG"))
			Expect(units[0].SubUnitBaru).To(Equal([]string{"BANDUNG KOTA"}))
		})
	})
})
