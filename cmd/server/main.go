package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"jobboard/internal/api"
	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/export"
	"jobboard/internal/ingestion"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup database connection
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer conn.Close()

	// Run migrations
	if err := db.RunMigrations(cfg.Database, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Create repositories
	jobRepo := repository.NewJobRepository(conn.Pool)
	companyRepo := repository.NewCompanyRepository(conn.Pool)

	// Create handlers
	jobsHandler := api.NewJobsHandler(jobRepo, companyRepo)
	companiesHandler := api.NewCompaniesHandler(companyRepo)
	exportHandler := export.NewHTTPHandler(export.NewService(jobRepo), api.JobFilterBag)
	importHandler := ingestion.NewHTTPHandler(ingestion.NewService(jobRepo, companyRepo))

	verifier := auth.NewVerifier(cfg.JWTSecret)

	mux := http.NewServeMux()

	// Listing and reads are open to anonymous callers
	mux.HandleFunc("GET /jobs", jobsHandler.List)
	mux.Handle("GET /jobs/export", exportHandler)
	mux.HandleFunc("GET /jobs/{id}", jobsHandler.Get)
	mux.HandleFunc("GET /companies", companiesHandler.List)
	mux.HandleFunc("GET /companies/{handle}", companiesHandler.Get)

	// Mutations require an admin token
	mux.Handle("POST /jobs", middleware.RequireAdmin(http.HandlerFunc(jobsHandler.Create)))
	mux.Handle("POST /jobs/import", middleware.RequireAdmin(importHandler))
	mux.Handle("PATCH /jobs/{id}", middleware.RequireAdmin(http.HandlerFunc(jobsHandler.Update)))
	mux.Handle("DELETE /jobs/{id}", middleware.RequireAdmin(http.HandlerFunc(jobsHandler.Delete)))
	mux.Handle("POST /companies", middleware.RequireAdmin(http.HandlerFunc(companiesHandler.Create)))
	mux.Handle("PATCH /companies/{handle}", middleware.RequireAdmin(http.HandlerFunc(companiesHandler.Update)))
	mux.Handle("DELETE /companies/{handle}", middleware.RequireAdmin(http.HandlerFunc(companiesHandler.Delete)))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	handler := middleware.LoggingMiddleware(
		middleware.Authenticate(verifier)(
			corsHandler.Handler(mux),
		),
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("starting job board server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
