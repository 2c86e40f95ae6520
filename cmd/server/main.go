package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/ksolovey/notes-api/infrastructure/tracing"
	"github.com/ksolovey/notes-api/internal/app/server"
	"github.com/ksolovey/notes-api/internal/config"
	"github.com/ksolovey/notes-api/internal/metrics"
	notes_repo "github.com/ksolovey/notes-api/internal/repository/notes"
	auth_serv "github.com/ksolovey/notes-api/internal/service/auth"
	notes_serv "github.com/ksolovey/notes-api/internal/service/notes"
	"github.com/ksolovey/notes-api/internal/service/password"
	"github.com/ksolovey/notes-api/internal/service/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init()
	metrics.StartMetricsServer(":" + cfg.ServerConfig.MetricsPort)

	connStr := cfg.PostgresConfig.DSN()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalln(err)
	}

	if err = runMigrations(connStr); err != nil {
		log.Fatalln("migration error:", err)
	}

	_, cleanup, err := tracing.InitTracing(cfg.TracingConfig.Endpoint)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	repo := notes_repo.NewDefaultRepository(db)
	tokens := token.NewDefaultManager(cfg.AuthConfig.JWTSecret)
	authServ := auth_serv.NewDefaultService(repo, password.NewBcryptHasher(), tokens)
	notesServ := notes_serv.NewDefaultService(repo)

	srv := server.New(authServ, notesServ, tokens)
	if err = srv.Run(cfg.ServerConfig.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func runMigrations(dbURL string) error {
	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
