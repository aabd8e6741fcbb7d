package main

import (
	"log"

	"github.com/placementhub/placement-mentor-hub/internal/bootstrap"
	"github.com/placementhub/placement-mentor-hub/internal/server"
)

func main() {
	app, err := bootstrap.NewApp("")
	if err != nil {
		log.Fatalf("failed to bootstrap application: %v", err)
	}

	// An explicit seed request must fail loudly when data already
	// exists; the development auto-seed only fills an empty database.
	if app.Config.SeedDemoData {
		if err := bootstrap.SeedDemoData(app.DB); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	} else if app.Config.AppEnv == "development" {
		if err := bootstrap.SeedDemoDataIfEmpty(app.DB); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	srv := server.NewServer(app.DB, app.RedisClient, app.Config)
	if err := srv.Run(":" + app.Config.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
