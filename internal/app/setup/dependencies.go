package setup

import (
	"fmt"
	"log/slog"

	"github.com/LavaJover/petpooja-sync-service/internal/config"
	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	publisher "github.com/LavaJover/petpooja-sync-service/internal/infrastructure/kafka"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/metrics"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/migrate"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.SyncConfig
	DB           *gorm.DB
	Registry     *prometheus.Registry
	Metrics      *metrics.SyncMetrics
	Kafka        *publisher.DefaultKafkaPublisher
	Events       domain.SyncEventPublisher
	Repositories *Repositories
}

type Repositories struct {
	CatalogRepo    domain.CatalogRepository
	RestaurantRepo domain.RestaurantRepository
	OrderRepo      domain.OrderRepository
	SyncLogRepo    domain.SyncLogRepository
}

func InitializeDependencies(cfg *config.SyncConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := &Dependencies{
		Config:   cfg,
		DB:       db,
		Registry: registry,
		Metrics:  metrics.NewSyncMetrics(registry),
		Events:   publisher.NopSyncEventPublisher{},
		Repositories: &Repositories{
			CatalogRepo:    repository.NewDefaultCatalogRepository(db),
			RestaurantRepo: repository.NewDefaultRestaurantRepository(db),
			OrderRepo:      repository.NewDefaultOrderRepository(db),
			SyncLogRepo:    repository.NewDefaultSyncLogRepository(db),
		},
	}

	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		deps.Kafka = publisher.NewDefaultKafkaPublisher(brokers)
		deps.Events = publisher.NewSyncEventPublisher(deps.Kafka, cfg.KafkaService.Topic)
		slog.Info("sync events enabled", "brokers", brokers, "topic", cfg.KafkaService.Topic)
	}

	return deps, nil
}

// Close releases what InitializeDependencies opened.
func (d *Dependencies) Close() {
	if d.Kafka != nil {
		if err := d.Kafka.Close(); err != nil {
			slog.Error("failed to close kafka writer", "error", err.Error())
		}
	}
	if sqlDB, err := d.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
