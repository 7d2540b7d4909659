package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dome-hr/dome-backend/internal/auth"
	"github.com/dome-hr/dome-backend/internal/dashboard"
	"github.com/dome-hr/dome-backend/internal/karyawan"
	"github.com/dome-hr/dome-backend/internal/mutasi"
	"github.com/dome-hr/dome-backend/internal/rating"
	"github.com/dome-hr/dome-backend/internal/transport/middleware"
	"github.com/dome-hr/dome-backend/internal/transport/swagger"
	"github.com/dome-hr/dome-backend/internal/unit"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth      *auth.Handler
	Karyawan  *karyawan.Handler
	Mutasi    *mutasi.Handler
	Rating    *rating.Handler
	Dashboard *dashboard.Handler
	Unit      *unit.Handler
}

// RegisterAllRoutes wires the route table. Role gating follows the
// capability matrix: roles 1-2 edit employees, role 2 opens and removes
// transfer requests and submits assessments, role 4 decides transfers and
// reads assessment detail, role 3 only views.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	rbac := auth.NewRBACAuthorization(logger)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Post("/login", h.Auth.Login)
	router.Get("/unit-dropdown", h.Unit.Dropdown)

	// Everything below requires a valid session.
	router.Group(func(pr chi.Router) {
		pr.Use(h.Auth.AuthMiddleware)

		pr.Get("/me", h.Auth.Me)
		pr.Post("/logout", h.Auth.Logout)

		pr.Get("/dashboard", h.Dashboard.Summary)

		pr.Route("/karyawan", func(kr chi.Router) {
			kr.Get("/", h.Karyawan.List)
			kr.Get("/{perner}", h.Karyawan.GetByPerner)

			kr.Group(func(er chi.Router) {
				er.Use(rbac.RequireRoles(auth.RoleHCTreg, auth.RoleISH))
				er.Put("/update/{perner}", h.Karyawan.Update)
			})
		})

		pr.Route("/mutasi", func(mr chi.Router) {
			mr.Get("/", h.Mutasi.GetAll)
			mr.Get("/{perner}", h.Mutasi.GetByPerner)

			mr.Group(func(cr chi.Router) {
				cr.Use(rbac.RequireRoles(auth.RoleISH))
				cr.Post("/", h.Mutasi.Create)
				cr.Delete("/{perner}", h.Mutasi.Delete)
			})

			mr.Group(func(er chi.Router) {
				er.Use(rbac.RequireRoles(auth.RoleHCTreg, auth.RoleISH))
				er.Put("/update/{perner}", h.Mutasi.Update)
			})

			mr.Group(func(dr chi.Router) {
				dr.Use(rbac.RequireRoles(auth.RoleSupervisor))
				dr.Post("/{perner}/persetujuan", h.Mutasi.Approve)
				dr.Post("/{perner}/penolakan", h.Mutasi.Reject)
			})
		})

		pr.Route("/rating", func(rr chi.Router) {
			rr.Group(func(lr chi.Router) {
				lr.Use(rbac.RequireRoles(auth.RoleISH))
				lr.Get("/", h.Rating.List)
				lr.Get("/filter", h.Rating.Filter)
			})

			rr.Group(func(sr chi.Router) {
				sr.Use(rbac.RequireRoles(auth.RoleISH))
				sr.Post("/{perner}", h.Rating.Submit)
			})

			rr.Group(func(vr chi.Router) {
				vr.Use(rbac.RequireRoles(auth.RoleISH, auth.RoleSupervisor))
				vr.Get("/{perner}", h.Rating.GetByPerner)
			})
		})
	})
}
