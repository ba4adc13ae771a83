package main

import (
	"flag"
	"log"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/config"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/database"
	"github.com/Nishitha-lab/StudyStreak-AI/internal/logger"

	"go.uber.org/zap"
)

func main() {
	migrationsDir := flag.String("dir", "database/migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	l := logger.Get()
	defer logger.Sync()

	if err := database.RunMigrations(cfg.DB.Path, *migrationsDir); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations completed successfully", zap.String("db", cfg.DB.Path))
}
