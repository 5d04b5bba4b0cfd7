package main

import (
	"flag"
	"log"

	"github.com/pageza/mixmaster/backend/config"
	"github.com/pageza/mixmaster/backend/internal/database"
	"github.com/pageza/mixmaster/backend/internal/logger"
)

func main() {
	driver := flag.String("driver", "", "Store driver to migrate (sqlite or postgres); defaults to STORE_DRIVER")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *driver != "" {
		cfg.StoreDriver = *driver
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.StoreDriver != config.DriverSQLite && cfg.StoreDriver != config.DriverPostgres {
		appLog.Info("nothing to migrate", "driver", cfg.StoreDriver)
		return
	}

	db, err := database.Open(cfg, appLog)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.RunMigrations(db, appLog); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	appLog.Info("migrations complete", "driver", cfg.StoreDriver)
}
