package main

import (
	"context"
	"log"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/bootstrap"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/config"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/server"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/tracer"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Crisis Alert Consumer...")
		if err := container.CrisisAlertService.Consume(context.Background()); err != nil {
			log.Printf("Background Crisis Alert Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
