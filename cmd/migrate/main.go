package main

import (
	"log"

	"techstore-ai-be/internal/config"
	"techstore-ai-be/internal/model"
	"techstore-ai-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	color.Cyan("Running migrations...")

	err = gormDB.AutoMigrate(
		&model.Product{},
		&model.User{},
		&model.Sale{},
		&model.TechModel{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	color.Green("✅ Migrations completed")
}
