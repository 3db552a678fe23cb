package postgres

import (
	"log"

	"github.com/LavaJover/petpooja-sync-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func MustInitDB(cfg *config.SyncConfig) *gorm.DB {
	dsn := cfg.SyncDB.Dsn
	gormConfig := &gorm.Config{}
	if cfg.Env != "local" {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	return db
}
