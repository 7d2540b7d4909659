package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dome-hr/dome-backend/internal"
	"github.com/dome-hr/dome-backend/internal/auth"
	authPostgres "github.com/dome-hr/dome-backend/internal/auth/postgres"
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
	"github.com/dome-hr/dome-backend/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	GormDB   *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.L()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	handlers := buildHandlers(config, gormDB, lg)

	return &Dependencies{
		Config:   config,
		Logger:   lg,
		DB:       db,
		GormDB:   gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
	}, nil
}

// buildHandlers wires repositories, services, and handlers for every feature.
func buildHandlers(config *internal.Config, gormDB *gorm.DB, lg *slog.Logger) rest.Handlers {
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenTTL)
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)

	karyawanService := karyawan.NewService(karyawanPostgres.NewKaryawanRepository(gormDB), lg)
	unitService := unit.NewService(unitPostgres.NewUnitRepository(gormDB), lg)
	mutasiService := mutasi.NewService(
		mutasiPostgres.NewMutasiRepository(gormDB),
		karyawanService,
		unitService,
		lg,
	)
	ratingService := rating.NewService(ratingPostgres.NewRatingRepository(gormDB), karyawanService, lg)
	dashboardService := dashboard.NewService(dashboardPostgres.NewDashboardRepository(gormDB), lg)

	return rest.Handlers{
		Auth:      auth.NewHandler(authService),
		Karyawan:  karyawan.NewHandler(karyawanService),
		Mutasi:    mutasi.NewHandler(mutasiService),
		Rating:    rating.NewHandler(ratingService),
		Dashboard: dashboard.NewHandler(dashboardService),
		Unit:      unit.NewHandler(unitService),
	}
}

// initDB opens the pgx connection pool shared by health checks and the ORM.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pool so both share one set
// of connections.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}
