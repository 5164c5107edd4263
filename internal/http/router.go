package http

import (
	"net/http"

	"parlad-backend/internal/handlers"
	"parlad-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	factoryHandler *handlers.FactoryHandler,
	productionHandler *handlers.ProductionHandler,
	ledgerHandler *handlers.LedgerHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/signin", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	r.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods("POST")

	// Signout needs the token it is revoking
	signoutAPI := r.PathPrefix("/auth/signout").Subrouter()
	signoutAPI.Use(authMiddleware.Authenticate)
	signoutAPI.HandleFunc("", authHandler.Logout).Methods("POST")

	// Protected API routes - Profile
	profileAPI := r.PathPrefix("/api/profile").Subrouter()
	profileAPI.Use(authMiddleware.Authenticate)
	profileAPI.HandleFunc("", userHandler.GetProfile).Methods("GET")
	profileAPI.HandleFunc("", userHandler.UpdateProfile).Methods("PUT")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireAdmin)
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}/role", userHandler.UpdateRole).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	// Protected API routes - Factories (managers and admins mutate)
	factoriesAPI := r.PathPrefix("/api/factories").Subrouter()
	factoriesAPI.Use(authMiddleware.Authenticate)
	factoriesAPI.HandleFunc("", factoryHandler.ListFactories).Methods("GET")
	factoriesAPI.HandleFunc("", authMiddleware.RequireRole("manager", "admin")(http.HandlerFunc(factoryHandler.CreateFactory)).ServeHTTP).Methods("POST")
	factoriesAPI.HandleFunc("/{id}", factoryHandler.GetFactory).Methods("GET")
	factoriesAPI.HandleFunc("/{id}", authMiddleware.RequireRole("manager", "admin")(http.HandlerFunc(factoryHandler.UpdateFactory)).ServeHTTP).Methods("PUT")
	factoriesAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(factoryHandler.DeleteFactory)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Production records
	productionAPI := r.PathPrefix("/api/production").Subrouter()
	productionAPI.Use(authMiddleware.Authenticate)
	productionAPI.HandleFunc("", productionHandler.ListRecords).Methods("GET")
	productionAPI.HandleFunc("", productionHandler.CreateRecord).Methods("POST")
	productionAPI.HandleFunc("/{id}", productionHandler.GetRecord).Methods("GET")
	productionAPI.HandleFunc("/{id}", productionHandler.UpdateRecord).Methods("PUT")
	productionAPI.HandleFunc("/{id}", authMiddleware.RequireRole("manager", "admin")(http.HandlerFunc(productionHandler.DeleteRecord)).ServeHTTP).Methods("DELETE")

	// Protected API routes - Ledgers and their transactions
	ledgersAPI := r.PathPrefix("/api/ledgers").Subrouter()
	ledgersAPI.Use(authMiddleware.Authenticate)
	ledgersAPI.HandleFunc("", ledgerHandler.ListLedgers).Methods("GET")
	ledgersAPI.HandleFunc("", ledgerHandler.CreateLedger).Methods("POST")
	ledgersAPI.HandleFunc("/{id}", ledgerHandler.GetLedger).Methods("GET")
	ledgersAPI.HandleFunc("/{id}", ledgerHandler.UpdateLedger).Methods("PUT")
	ledgersAPI.HandleFunc("/{id}", ledgerHandler.DeleteLedger).Methods("DELETE")
	ledgersAPI.HandleFunc("/{id}/transactions", ledgerHandler.ListTransactions).Methods("GET")
	ledgersAPI.HandleFunc("/{id}/transactions", ledgerHandler.AddTransaction).Methods("POST")
	ledgersAPI.HandleFunc("/{id}/transactions/{txn_id}", ledgerHandler.DeleteTransaction).Methods("DELETE")
	ledgersAPI.HandleFunc("/{id}/summary", ledgerHandler.GetSummary).Methods("GET")
	ledgersAPI.HandleFunc("/{id}/report", reportHandler.ExportTransactions).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/system", healthHandler.SystemHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
