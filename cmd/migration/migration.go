package main

import (
	"infomed-service/internal/app/config"
	"infomed-service/internal/app/drivers/database"
	"log"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	direction := migrate.Up
	if len(os.Args) > 1 && os.Args[1] == "down" {
		direction = migrate.Down
	}

	n, err := migrate.Exec(db, "postgres", migrations, direction)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}
