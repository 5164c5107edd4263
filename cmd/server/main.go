package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"parlad-backend/internal/archive"
	"parlad-backend/internal/auth"
	"parlad-backend/internal/cache"
	"parlad-backend/internal/config"
	"parlad-backend/internal/database"
	"parlad-backend/internal/db"
	"parlad-backend/internal/handlers"
	"parlad-backend/internal/health"
	h "parlad-backend/internal/http"
	"parlad-backend/internal/mail"
	"parlad-backend/internal/middleware"
	"parlad-backend/internal/repositories"
	"parlad-backend/internal/services"
	"parlad-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations from the embedded filesystem
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	resetRepo := repositories.NewPasswordResetRepository(pool)
	factoryRepo := repositories.NewFactoryRepository(pool)
	productionRepo := repositories.NewProductionRepository(pool)
	ledgerRepo := repositories.NewLedgerRepository(pool)
	transactionRepo := repositories.NewTransactionRepository(pool)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Mail goes through SMTP when configured, the log otherwise
	mailer := mail.NewProvider(cfg)

	// Report archiving is optional; nil means disabled
	archiver := archive.New(cfg)
	if archiver != nil {
		log.Println("[Archive] Report archiving enabled")
	}

	// Initialize services
	userService := services.NewUserService(userRepo, resetRepo, jwtManager, mailer)
	factoryService := services.NewFactoryService(factoryRepo)
	productionService := services.NewProductionService(productionRepo, factoryRepo)
	ledgerService := services.NewLedgerService(ledgerRepo, transactionRepo)
	reportService := services.NewReportService(ledgerService, archiver)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	factoryHandler := handlers.NewFactoryHandler(factoryService)
	productionHandler := handlers.NewProductionHandler(productionService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		factoryHandler,
		productionHandler,
		ledgerHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	// Wrap with panic recovery, metrics, request logging and CORS
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
