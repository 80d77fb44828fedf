package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/splitta/splitta/docs"
	"github.com/splitta/splitta/internal/config"
	"github.com/splitta/splitta/internal/database"
	"github.com/splitta/splitta/internal/expense"
	"github.com/splitta/splitta/internal/group"
	"github.com/splitta/splitta/internal/ledger/split"
	"github.com/splitta/splitta/internal/notification"
	"github.com/splitta/splitta/internal/settlement"
	"github.com/splitta/splitta/internal/summary"
	"github.com/splitta/splitta/internal/user"
	"github.com/splitta/splitta/pkg/logging"
	mw "github.com/splitta/splitta/pkg/middleware"
)

// @title           Splitta API
// @version         1.0
// @description     Group expense splitting with balances, netted debts and settlements.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	registry := split.NewRegistry()

	// Notification feature, injected into expense and settlement below
	notificationRepo := notification.NewRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	// Expense feature (with split registry injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, registry, notificationService)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementRepo := settlement.NewRepository(db)
	settlementService := settlement.NewService(settlementRepo, notificationService)
	settlementHandler := settlement.NewHandler(settlementService)

	// Group feature reads expenses and settlements to derive balances
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo, expenseRepo, settlementRepo)
	groupHandler := group.NewHandler(groupService, expenseHandler.ListByGroup, settlementHandler.ListByGroup)

	// Summary feature
	summaryRepo := summary.NewRepository(db)
	summaryService := summary.NewService(summaryRepo)
	summaryHandler := summary.NewHandler(summaryService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(mw.Auth(cfg.JWTSecret))

		r.Mount("/users", userHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/notifications", notificationHandler.Routes())
		r.Mount("/summary", summaryHandler.Routes())
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
