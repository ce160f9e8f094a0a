package main

import (
	"log"
	"os"

	"github.com/Deymos01/pr-reviewer-service/internal/config"
	"github.com/Deymos01/pr-reviewer-service/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Please provide a migration direction: 'up' or 'down'")
	}

	direction := os.Args[1]
	cfg := config.MustLoad()
	dsn := cfg.PostgresConfig.DSN()

	switch direction {
	case "up":
		if err := postgres.MigrateUp(cfg.MigrationsPath, dsn); err != nil {
			log.Fatal(err)
		}
		log.Println("Migrations applied successfully.")
	case "down":
		if err := postgres.MigrateDown(cfg.MigrationsPath, dsn); err != nil {
			log.Fatal(err)
		}
		log.Println("Migrations rolled back successfully.")
	default:
		log.Fatal("Invalid direction. Use 'up' or 'down'.")
	}
}
