package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"sport-predict/internal/auth"
	"sport-predict/internal/config"
	"sport-predict/internal/database"
)

func main() {
	reset := flag.Bool("reset", false, "clear and re-seed the mock data after migrating")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Database.Driver != "postgres" {
		log.Fatalf("cmd/migrate applies the PostgreSQL schema; DB_DRIVER is %q", cfg.Database.Driver)
	}

	// Connect to database
	conn, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database successfully")

	migrations, err := database.Migrations()
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}

	for _, m := range migrations {
		log.Printf("Applying migration: %s", m.Name)
		if _, err := conn.Exec(m.SQL); err != nil {
			log.Fatalf("Failed to apply migration %s: %v", m.Name, err)
		}
	}
	log.Printf("Applied %d migration(s)", len(migrations))

	if !*reset {
		return
	}

	db, err := database.Open(cfg.Database, cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	hasher := auth.NewPasswordHasher(cfg.IsProduction())
	if err := database.ResetMockData(context.Background(), db, hasher); err != nil {
		log.Fatalf("Failed to reset mock data: %v", err)
	}
	log.Println("Mock data reset successfully")
}
