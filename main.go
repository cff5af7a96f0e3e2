// Package main is the entry point for the LMS admin API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"lmsadmin/src/app/server"
	"lmsadmin/src/infra/authclient"
	"lmsadmin/src/infra/config"
	"lmsadmin/src/infra/db"
	"lmsadmin/src/infra/logger"
	"lmsadmin/src/infra/metrics"
	"lmsadmin/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize persistence gateways
	tenants := repo.NewTenantRepository(pg, logger.WithComponent(log, "tenant_repo"))
	courses := repo.NewCourseStore(cfg.Storage, logger.WithComponent(log, "course_store"))

	// External auth service client
	auth := authclient.New(cfg.Auth, logger.WithComponent(log, "authclient"))

	// Create and run HTTP server
	srv := server.New(cfg, log, server.Deps{
		Tenants: tenants,
		Courses: courses,
		Auth:    auth,
		Metrics: metrics.New(),
	})

	// Run blocks until shutdown signal is received
	return srv.Run()
}
