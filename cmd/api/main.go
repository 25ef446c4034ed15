package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/amehta/splitledger/docs"
	"github.com/amehta/splitledger/internal/config"
	"github.com/amehta/splitledger/internal/database"
	"github.com/amehta/splitledger/internal/engine"
	enginesplit "github.com/amehta/splitledger/internal/engine/split"
	"github.com/amehta/splitledger/internal/expense"
	"github.com/amehta/splitledger/internal/settlement"
	"github.com/amehta/splitledger/pkg/logging"
)

// @title        Splitledger API
// @version      1.0
// @description  Expense splitting and debt-settlement service
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		slog.Error("Failed to bootstrap schema", "error", err)
		os.Exit(1)
	}

	slog.Info("Connected to database")

	// Split Strategy Factory (Factory Pattern)
	splitFactory := enginesplit.NewFactory()

	// Settlement feature owns the engine's persistence contract
	settlementRepo := settlement.NewRepository(db)
	eng := engine.New(settlementRepo)
	settlementService := settlement.NewService(eng, settlementRepo)
	settlementHandler := settlement.NewHandler(settlementService)

	// Expense feature (split factory and engine injected)
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, splitFactory, eng)
	expenseHandler := expense.NewHandler(expenseService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/groups", settlementHandler.Routes())
	})

	slog.Info("Server starting", "addr", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
